package repository

import "github.com/oksasatya/gudimart-store/internal/domain/entity"

type ChatRepository interface {
	// ListByUser returns the conversation oldest first.
	ListByUser(userID int64) []entity.ChatMessage
	Append(in entity.ChatMessageInput) entity.ChatMessage
}
