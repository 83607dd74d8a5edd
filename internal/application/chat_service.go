package application

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/gudimart-store/internal/domain/entity"
	repo "github.com/oksasatya/gudimart-store/internal/domain/repository"
)

const (
	ChatSystemPrompt = "You are a helpful shopping assistant for GudiMart.com, an e-commerce platform. " +
		"Help users find products, provide information about shipping, returns, and answer general questions " +
		"about shopping on our platform. Keep responses concise and friendly."

	// ChatFallbackReply is stored as the assistant's answer when the
	// completion backend fails or returns nothing.
	ChatFallbackReply = "Sorry, I'm having trouble answering right now. Please try again in a moment."

	DefaultChatMaxTokens = 250
)

type ChatService struct {
	Messages  repo.ChatRepository
	AI        Completer
	Logger    *logrus.Logger
	MaxTokens int
	Timeout   time.Duration
}

func NewChatService(messages repo.ChatRepository, ai Completer, logger *logrus.Logger, maxTokens int, timeout time.Duration) *ChatService {
	if maxTokens <= 0 {
		maxTokens = DefaultChatMaxTokens
	}
	return &ChatService{Messages: messages, AI: ai, Logger: logger, MaxTokens: maxTokens, Timeout: timeout}
}

// History returns the user's conversation, oldest first.
func (s *ChatService) History(userID int64) []entity.ChatMessage {
	return s.Messages.ListByUser(userID)
}

// Send stores the user's message, asks the assistant for a reply with the
// whole conversation as context and stores that reply. A failed completion
// is answered with ChatFallbackReply; Send itself does not fail.
func (s *ChatService) Send(ctx context.Context, userID int64, message string) entity.ChatMessage {
	s.Messages.Append(entity.ChatMessageInput{UserID: userID, Message: message})
	history := s.Messages.ListByUser(userID)

	reply, err := s.complete(ctx, toTurns(history))
	if err != nil || strings.TrimSpace(reply) == "" {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("chat completion failed, sending fallback reply")
		}
		reply = ChatFallbackReply
	}
	return s.Messages.Append(entity.ChatMessageInput{UserID: userID, IsBot: true, Message: reply})
}

func (s *ChatService) complete(ctx context.Context, turns []Turn) (string, error) {
	if s.AI == nil {
		return "", ErrCompleterUnavailable
	}
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}
	return s.AI.Complete(ctx, ChatSystemPrompt, turns, s.MaxTokens)
}

func toTurns(history []entity.ChatMessage) []Turn {
	turns := make([]Turn, 0, len(history))
	for _, m := range history {
		role := RoleUser
		if m.IsBot {
			role = RoleAssistant
		}
		turns = append(turns, Turn{Role: role, Text: m.Message})
	}
	return turns
}
