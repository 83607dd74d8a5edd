package memory

import (
	"slices"
	"time"

	"github.com/oksasatya/gudimart-store/internal/domain/entity"
)

type EventRepository struct {
	t   *Table[entity.Event]
	now func() time.Time
}

func (r *EventRepository) List(organizerID *int64) []entity.Event {
	out := r.t.Filter(func(e entity.Event) bool {
		return organizerID == nil || e.OrganizerID == *organizerID
	})
	slices.SortStableFunc(out, func(a, b entity.Event) int { return b.StartDate.Compare(a.StartDate) })
	return out
}

func (r *EventRepository) Get(id int64) (entity.Event, bool) {
	return r.t.Get(id)
}

func (r *EventRepository) Create(in entity.EventInput) entity.Event {
	return r.t.Insert(func(id int64) entity.Event { return in.Build(id, r.now()) })
}

func (r *EventRepository) Update(id int64, p entity.EventPatch) (entity.Event, bool) {
	return r.t.Update(id, p.Apply)
}

// Delete removes the event only. Rows that reference it stay behind.
func (r *EventRepository) Delete(id int64) bool {
	return r.t.Delete(id)
}

type TeamMemberRepository struct {
	t   *Table[entity.TeamMember]
	now func() time.Time
}

func (r *TeamMemberRepository) ListByEvent(eventID int64) []entity.TeamMember {
	return r.t.Filter(func(m entity.TeamMember) bool { return m.EventID == eventID })
}

func (r *TeamMemberRepository) ListByUser(userID int64) []entity.TeamMember {
	return r.t.Filter(func(m entity.TeamMember) bool { return m.UserID == userID })
}

func (r *TeamMemberRepository) Get(id int64) (entity.TeamMember, bool) {
	return r.t.Get(id)
}

func (r *TeamMemberRepository) Create(in entity.TeamMemberInput) entity.TeamMember {
	return r.t.Insert(func(id int64) entity.TeamMember { return in.Build(id, r.now()) })
}

func (r *TeamMemberRepository) Update(id int64, p entity.TeamMemberPatch) (entity.TeamMember, bool) {
	return r.t.Update(id, p.Apply)
}

func (r *TeamMemberRepository) Delete(id int64) bool {
	return r.t.Delete(id)
}
