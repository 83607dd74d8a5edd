package memory

import (
	"slices"
	"time"

	"github.com/oksasatya/gudimart-store/internal/domain/entity"
)

type ChatRepository struct {
	t   *Table[entity.ChatMessage]
	now func() time.Time
}

func (r *ChatRepository) ListByUser(userID int64) []entity.ChatMessage {
	out := r.t.Filter(func(m entity.ChatMessage) bool { return m.UserID == userID })
	slices.SortStableFunc(out, func(a, b entity.ChatMessage) int { return a.Timestamp.Compare(b.Timestamp) })
	return out
}

func (r *ChatRepository) Append(in entity.ChatMessageInput) entity.ChatMessage {
	return r.t.Insert(func(id int64) entity.ChatMessage { return in.Build(id, r.now()) })
}
