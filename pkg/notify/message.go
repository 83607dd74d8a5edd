package notify

import "time"

type Kind string

const (
	PostStatusChanged Kind = "post_status_changed"
	ApprovalRecorded  Kind = "approval_recorded"
)

// Message is the JSON payload put on the notification queue when something
// on an event's content plan changes.
type Message struct {
	Kind       Kind      `json:"kind"`
	EventID    int64     `json:"event_id"`
	PostID     int64     `json:"post_id"`
	ApprovalID int64     `json:"approval_id,omitempty"`
	ActorID    int64     `json:"actor_id,omitempty"`
	Status     string    `json:"status"`
	PrevStatus string    `json:"prev_status,omitempty"`
	Title      string    `json:"title,omitempty"`
	At         time.Time `json:"at"`
}
