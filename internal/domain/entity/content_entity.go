package entity

import (
	"maps"
	"time"

	"github.com/oksasatya/gudimart-store/pkg/nullable"
)

type PostStatus string

const (
	PostDraft     PostStatus = "draft"
	PostScheduled PostStatus = "scheduled"
	PostPublished PostStatus = "published"
	PostFailed    PostStatus = "failed"
)

func (s PostStatus) Valid() bool {
	switch s {
	case PostDraft, PostScheduled, PostPublished, PostFailed:
		return true
	}
	return false
}

// ContentPost is a piece of social content planned for an event. Platforms
// holds social platform ids; UpdatedAt moves on every patch.
type ContentPost struct {
	ID           int64              `json:"id"`
	EventID      int64              `json:"eventId"`
	CreatorID    int64              `json:"creatorId"`
	Title        string             `json:"title"`
	Content      string             `json:"content"`
	MediaURLs    []string           `json:"mediaUrls"`
	Status       PostStatus         `json:"status"`
	ScheduledFor *time.Time         `json:"scheduledFor"`
	PublishedAt  *time.Time         `json:"publishedAt"`
	Platforms    []int64            `json:"platforms"`
	Tags         []string           `json:"tags"`
	Metrics      map[string]float64 `json:"metrics"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// ContentPostInput is the insert shape for posts. An empty Status means draft.
type ContentPostInput struct {
	EventID      int64
	CreatorID    int64
	Title        string
	Content      string
	MediaURLs    []string
	Status       PostStatus
	ScheduledFor *time.Time
	PublishedAt  *time.Time
	Platforms    []int64
	Tags         []string
	Metrics      map[string]float64
}

func (in ContentPostInput) Build(id int64, now time.Time) ContentPost {
	status := in.Status
	if status == "" {
		status = PostDraft
	}
	return ContentPost{
		ID:           id,
		EventID:      in.EventID,
		CreatorID:    in.CreatorID,
		Title:        in.Title,
		Content:      in.Content,
		MediaURLs:    cloneSlice(in.MediaURLs),
		Status:       status,
		ScheduledFor: cloneTime(in.ScheduledFor),
		PublishedAt:  cloneTime(in.PublishedAt),
		Platforms:    cloneSlice(in.Platforms),
		Tags:         cloneSlice(in.Tags),
		Metrics:      cloneMap(in.Metrics),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ContentPostPatch merges into a post. Non-nil slices and maps replace the
// stored value wholesale; a null ScheduledFor or PublishedAt clears it.
type ContentPostPatch struct {
	EventID      *int64
	CreatorID    *int64
	Title        *string
	Content      *string
	MediaURLs    []string
	Status       *PostStatus
	ScheduledFor nullable.Field[time.Time]
	PublishedAt  nullable.Field[time.Time]
	Platforms    []int64
	Tags         []string
	Metrics      map[string]float64
}

func (p ContentPostPatch) Apply(post *ContentPost) {
	if p.EventID != nil {
		post.EventID = *p.EventID
	}
	if p.CreatorID != nil {
		post.CreatorID = *p.CreatorID
	}
	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Content != nil {
		post.Content = *p.Content
	}
	if p.MediaURLs != nil {
		post.MediaURLs = cloneSlice(p.MediaURLs)
	}
	if p.Status != nil {
		post.Status = *p.Status
	}
	p.ScheduledFor.ApplyTo(&post.ScheduledFor)
	p.PublishedAt.ApplyTo(&post.PublishedAt)
	if p.Platforms != nil {
		post.Platforms = cloneSlice(p.Platforms)
	}
	if p.Tags != nil {
		post.Tags = cloneSlice(p.Tags)
	}
	if p.Metrics != nil {
		post.Metrics = maps.Clone(p.Metrics)
	}
}

func (p ContentPost) Clone() ContentPost {
	p.MediaURLs = cloneSlice(p.MediaURLs)
	p.ScheduledFor = cloneTime(p.ScheduledFor)
	p.PublishedAt = cloneTime(p.PublishedAt)
	p.Platforms = cloneSlice(p.Platforms)
	p.Tags = cloneSlice(p.Tags)
	p.Metrics = cloneMap(p.Metrics)
	return p
}

// ContentPostView is a post with its platform ids resolved to names. Ids of
// platforms that no longer exist are dropped.
type ContentPostView struct {
	ContentPost
	PlatformNames []string `json:"platformNames"`
}

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

func (s ApprovalStatus) Valid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

// ContentApproval is an immutable review decision on a post.
type ContentApproval struct {
	ID         int64          `json:"id"`
	PostID     int64          `json:"postId"`
	ApproverID int64          `json:"approverId"`
	Status     ApprovalStatus `json:"status"`
	Comments   *string        `json:"comments,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

type ContentApprovalInput struct {
	PostID     int64
	ApproverID int64
	Status     ApprovalStatus
	Comments   *string
}

func (in ContentApprovalInput) Build(id int64, now time.Time) ContentApproval {
	return ContentApproval{
		ID:         id,
		PostID:     in.PostID,
		ApproverID: in.ApproverID,
		Status:     in.Status,
		Comments:   cloneString(in.Comments),
		CreatedAt:  now,
	}
}

func (a ContentApproval) Clone() ContentApproval {
	a.Comments = cloneString(a.Comments)
	return a
}
