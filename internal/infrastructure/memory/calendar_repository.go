package memory

import (
	"slices"
	"time"

	"cloud.google.com/go/civil"

	"github.com/oksasatya/gudimart-store/internal/domain/entity"
)

type CalendarRepository struct {
	t   *Table[entity.CalendarEntry]
	now func() time.Time
}

func (r *CalendarRepository) ListByEvent(eventID int64, month *entity.CalendarMonth) []entity.CalendarEntry {
	out := r.t.Filter(func(e entity.CalendarEntry) bool {
		return e.EventID == eventID && (month == nil || month.Contains(e.Date))
	})
	slices.SortStableFunc(out, func(a, b entity.CalendarEntry) int { return compareDates(a.Date, b.Date) })
	return out
}

func (r *CalendarRepository) Get(id int64) (entity.CalendarEntry, bool) {
	return r.t.Get(id)
}

func (r *CalendarRepository) Create(in entity.CalendarEntryInput) entity.CalendarEntry {
	return r.t.Insert(func(id int64) entity.CalendarEntry { return in.Build(id, r.now()) })
}

func (r *CalendarRepository) Update(id int64, p entity.CalendarEntryPatch) (entity.CalendarEntry, bool) {
	return r.t.Update(id, p.Apply)
}

func (r *CalendarRepository) Delete(id int64) bool {
	return r.t.Delete(id)
}

func compareDates(a, b civil.Date) int {
	switch {
	case a.Before(b):
		return -1
	case b.Before(a):
		return 1
	}
	return 0
}
