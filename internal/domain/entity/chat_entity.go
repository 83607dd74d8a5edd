package entity

import "time"

// ChatMessage is one turn of a user's conversation with the shopping
// assistant. Messages are immutable once stored.
type ChatMessage struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	IsBot     bool      `json:"isBot"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatMessageInput struct {
	UserID  int64
	IsBot   bool
	Message string
}

func (in ChatMessageInput) Build(id int64, now time.Time) ChatMessage {
	return ChatMessage{ID: id, UserID: in.UserID, IsBot: in.IsBot, Message: in.Message, Timestamp: now}
}

func (m ChatMessage) Clone() ChatMessage { return m }
