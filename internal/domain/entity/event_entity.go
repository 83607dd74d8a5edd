package entity

import "time"

// Event owns team members, social accounts, posts and calendar entries by
// foreign key only. Deleting an event leaves those rows in place.
type Event struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	OrganizerID int64     `json:"organizerId"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Location    *string   `json:"location,omitempty"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type EventInput struct {
	Name        string
	Description *string
	OrganizerID int64
	StartDate   time.Time
	EndDate     time.Time
	Location    *string
	ImageURL    *string
}

func (in EventInput) Build(id int64, now time.Time) Event {
	return Event{
		ID:          id,
		Name:        in.Name,
		Description: cloneString(in.Description),
		OrganizerID: in.OrganizerID,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Location:    cloneString(in.Location),
		ImageURL:    cloneString(in.ImageURL),
		CreatedAt:   now,
	}
}

type EventPatch struct {
	Name        *string
	Description *string
	OrganizerID *int64
	StartDate   *time.Time
	EndDate     *time.Time
	Location    *string
	ImageURL    *string
}

func (p EventPatch) Apply(e *Event) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Description != nil {
		e.Description = cloneString(p.Description)
	}
	if p.OrganizerID != nil {
		e.OrganizerID = *p.OrganizerID
	}
	if p.StartDate != nil {
		e.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		e.EndDate = *p.EndDate
	}
	if p.Location != nil {
		e.Location = cloneString(p.Location)
	}
	if p.ImageURL != nil {
		e.ImageURL = cloneString(p.ImageURL)
	}
}

func (e Event) Clone() Event {
	e.Description = cloneString(e.Description)
	e.Location = cloneString(e.Location)
	e.ImageURL = cloneString(e.ImageURL)
	return e
}

// TeamMember links a user to an event with a role. The same (user, event)
// pair may appear more than once.
type TeamMember struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	EventID     int64     `json:"eventId"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"createdAt"`
}

type TeamMemberInput struct {
	UserID      int64
	EventID     int64
	Role        string
	Permissions []string
}

func (in TeamMemberInput) Build(id int64, now time.Time) TeamMember {
	perms := cloneSlice(in.Permissions)
	if perms == nil {
		perms = []string{}
	}
	return TeamMember{
		ID:          id,
		UserID:      in.UserID,
		EventID:     in.EventID,
		Role:        in.Role,
		Permissions: perms,
		CreatedAt:   now,
	}
}

// TeamMemberPatch replaces Permissions wholesale when it is non-nil.
type TeamMemberPatch struct {
	UserID      *int64
	EventID     *int64
	Role        *string
	Permissions []string
}

func (p TeamMemberPatch) Apply(m *TeamMember) {
	if p.UserID != nil {
		m.UserID = *p.UserID
	}
	if p.EventID != nil {
		m.EventID = *p.EventID
	}
	if p.Role != nil {
		m.Role = *p.Role
	}
	if p.Permissions != nil {
		m.Permissions = cloneSlice(p.Permissions)
	}
}

func (m TeamMember) Clone() TeamMember {
	m.Permissions = cloneSlice(m.Permissions)
	return m
}
