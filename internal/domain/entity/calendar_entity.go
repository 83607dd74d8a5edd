package entity

import (
	"time"

	"cloud.google.com/go/civil"

	"github.com/oksasatya/gudimart-store/pkg/nullable"
)

type EntryType string

const (
	EntryPost      EntryType = "post"
	EntryMilestone EntryType = "milestone"
	EntryReminder  EntryType = "reminder"
)

func (t EntryType) Valid() bool {
	switch t {
	case EntryPost, EntryMilestone, EntryReminder:
		return true
	}
	return false
}

// CalendarEntry is a dated item on an event's content calendar. Date carries
// no time zone; Time is an optional "HH:MM" wall clock.
type CalendarEntry struct {
	ID          int64      `json:"id"`
	EventID     int64      `json:"eventId"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Type        EntryType  `json:"type"`
	Date        civil.Date `json:"date"`
	Time        *string    `json:"time,omitempty"`
	PostID      *int64     `json:"postId,omitempty"`
	Color       *string    `json:"color,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type CalendarEntryInput struct {
	EventID     int64
	Title       string
	Description *string
	Type        EntryType
	Date        civil.Date
	Time        *string
	PostID      *int64
	Color       *string
}

func (in CalendarEntryInput) Build(id int64, now time.Time) CalendarEntry {
	return CalendarEntry{
		ID:          id,
		EventID:     in.EventID,
		Title:       in.Title,
		Description: cloneString(in.Description),
		Type:        in.Type,
		Date:        in.Date,
		Time:        cloneString(in.Time),
		PostID:      cloneInt64(in.PostID),
		Color:       cloneString(in.Color),
		CreatedAt:   now,
	}
}

// CalendarEntryPatch merges into an entry. The nullable fields clear the
// stored value on an explicit null, so an entry can drop its post link.
type CalendarEntryPatch struct {
	EventID     *int64
	Title       *string
	Description nullable.Field[string]
	Type        *EntryType
	Date        *civil.Date
	Time        nullable.Field[string]
	PostID      nullable.Field[int64]
	Color       nullable.Field[string]
}

func (p CalendarEntryPatch) Apply(e *CalendarEntry) {
	if p.EventID != nil {
		e.EventID = *p.EventID
	}
	if p.Title != nil {
		e.Title = *p.Title
	}
	p.Description.ApplyTo(&e.Description)
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	p.Time.ApplyTo(&e.Time)
	p.PostID.ApplyTo(&e.PostID)
	p.Color.ApplyTo(&e.Color)
}

func (e CalendarEntry) Clone() CalendarEntry {
	e.Description = cloneString(e.Description)
	e.Time = cloneString(e.Time)
	e.PostID = cloneInt64(e.PostID)
	e.Color = cloneString(e.Color)
	return e
}

// CalendarEntryView carries the title of the referenced post when the entry
// points at a post that still exists.
type CalendarEntryView struct {
	CalendarEntry
	PostTitle *string `json:"postTitle,omitempty"`
}
