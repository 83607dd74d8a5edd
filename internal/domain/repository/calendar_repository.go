package repository

import "github.com/oksasatya/gudimart-store/internal/domain/entity"

type CalendarRepository interface {
	// ListByEvent returns the event's entries by date, earliest first,
	// restricted to one month when month is non-nil.
	ListByEvent(eventID int64, month *entity.CalendarMonth) []entity.CalendarEntry
	Get(id int64) (entity.CalendarEntry, bool)
	Create(in entity.CalendarEntryInput) entity.CalendarEntry
	Update(id int64, p entity.CalendarEntryPatch) (entity.CalendarEntry, bool)
	Delete(id int64) bool
}
