package application

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/gudimart-store/internal/domain/entity"
	repo "github.com/oksasatya/gudimart-store/internal/domain/repository"
	"github.com/oksasatya/gudimart-store/pkg/notify"
)

// ContentService manages content posts, their approvals and the event
// calendar. Post status changes and new approvals are announced through
// Publisher when one is set.
type ContentService struct {
	Posts     repo.ContentPostRepository
	Approvals repo.ContentApprovalRepository
	Calendar  repo.CalendarRepository
	Platforms repo.SocialPlatformRepository
	Publisher Publisher
	Logger    *logrus.Logger
	Now       func() time.Time
}

func NewContentService(posts repo.ContentPostRepository, approvals repo.ContentApprovalRepository, calendar repo.CalendarRepository, platforms repo.SocialPlatformRepository, pub Publisher, logger *logrus.Logger) *ContentService {
	return &ContentService{
		Posts:     posts,
		Approvals: approvals,
		Calendar:  calendar,
		Platforms: platforms,
		Publisher: pub,
		Logger:    logger,
		Now:       time.Now,
	}
}

func (s *ContentService) ListPosts(f entity.ContentPostFilter) []entity.ContentPostView {
	posts := s.Posts.List(f)
	out := make([]entity.ContentPostView, 0, len(posts))
	for _, p := range posts {
		out = append(out, postView(p, s.Platforms.Get))
	}
	return out
}

func (s *ContentService) GetPost(id int64) (entity.ContentPostView, error) {
	p, ok := s.Posts.Get(id)
	if !ok {
		return entity.ContentPostView{}, ErrPostNotFound
	}
	return postView(p, s.Platforms.Get), nil
}

func (s *ContentService) CreatePost(in entity.ContentPostInput) entity.ContentPostView {
	p := s.Posts.Create(in)
	return postView(p, s.Platforms.Get)
}

// UpdatePost merges patch into the post. When the status moves, a
// PostStatusChanged notification goes out.
func (s *ContentService) UpdatePost(id int64, patch entity.ContentPostPatch) (entity.ContentPostView, error) {
	p, prev, ok := s.Posts.Update(id, patch)
	if !ok {
		return entity.ContentPostView{}, ErrPostNotFound
	}
	if p.Status != prev {
		publish(s.Publisher, s.Logger, notify.Message{
			Kind:       notify.PostStatusChanged,
			EventID:    p.EventID,
			PostID:     p.ID,
			ActorID:    p.CreatorID,
			Status:     string(p.Status),
			PrevStatus: string(prev),
			Title:      p.Title,
			At:         s.Now(),
		})
	}
	return postView(p, s.Platforms.Get), nil
}

func (s *ContentService) DeletePost(id int64) error {
	if !s.Posts.Delete(id) {
		return ErrPostNotFound
	}
	return nil
}

func (s *ContentService) ListApprovals(postID int64) []entity.ContentApproval {
	return s.Approvals.ListByPost(postID)
}

func (s *ContentService) GetApproval(id int64) (entity.ContentApproval, error) {
	a, ok := s.Approvals.Get(id)
	if !ok {
		return entity.ContentApproval{}, ErrApprovalNotFound
	}
	return a, nil
}

// RecordApproval appends a review decision and announces it.
func (s *ContentService) RecordApproval(in entity.ContentApprovalInput) entity.ContentApproval {
	a := s.Approvals.Create(in)
	msg := notify.Message{
		Kind:       notify.ApprovalRecorded,
		PostID:     a.PostID,
		ApprovalID: a.ID,
		ActorID:    a.ApproverID,
		Status:     string(a.Status),
		At:         a.CreatedAt,
	}
	if p, ok := s.Posts.Get(a.PostID); ok {
		msg.EventID = p.EventID
		msg.Title = p.Title
	}
	publish(s.Publisher, s.Logger, msg)
	return a
}

// ListCalendar returns the event's calendar by date. A non-nil month keeps
// only the entries that fall inside it.
func (s *ContentService) ListCalendar(eventID int64, month *entity.CalendarMonth) []entity.CalendarEntryView {
	return AttachPostTitles(s.Calendar.ListByEvent(eventID, month), s.Posts.Get)
}

func (s *ContentService) CreateCalendarEntry(in entity.CalendarEntryInput) entity.CalendarEntryView {
	return entryView(s.Calendar.Create(in), s.Posts.Get)
}

func (s *ContentService) UpdateCalendarEntry(id int64, patch entity.CalendarEntryPatch) (entity.CalendarEntryView, error) {
	e, ok := s.Calendar.Update(id, patch)
	if !ok {
		return entity.CalendarEntryView{}, ErrCalendarEntryNotFound
	}
	return entryView(e, s.Posts.Get), nil
}

func (s *ContentService) DeleteCalendarEntry(id int64) error {
	if !s.Calendar.Delete(id) {
		return ErrCalendarEntryNotFound
	}
	return nil
}
