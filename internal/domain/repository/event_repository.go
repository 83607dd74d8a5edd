package repository

import "github.com/oksasatya/gudimart-store/internal/domain/entity"

type EventRepository interface {
	// List returns events by start date, latest first. A non-nil
	// organizerID keeps only that organizer's events.
	List(organizerID *int64) []entity.Event
	Get(id int64) (entity.Event, bool)
	Create(in entity.EventInput) entity.Event
	Update(id int64, p entity.EventPatch) (entity.Event, bool)
	Delete(id int64) bool
}

type TeamMemberRepository interface {
	ListByEvent(eventID int64) []entity.TeamMember
	ListByUser(userID int64) []entity.TeamMember
	Get(id int64) (entity.TeamMember, bool)
	Create(in entity.TeamMemberInput) entity.TeamMember
	Update(id int64, p entity.TeamMemberPatch) (entity.TeamMember, bool)
	Delete(id int64) bool
}
