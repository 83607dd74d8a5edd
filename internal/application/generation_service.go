package application

import (
	"context"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/gudimart-store/internal/domain/entity"
	repo "github.com/oksasatya/gudimart-store/internal/domain/repository"
)

const (
	DefaultContentMaxTokens = 500
	GenericPlatform         = "Generic"
)

// GeneratedContent is a drafted post body together with the names of the
// event and platform it was written for.
type GeneratedContent struct {
	Content  string `json:"content"`
	Event    string `json:"event"`
	Platform string `json:"platform"`
}

type GenerationService struct {
	Events    repo.EventRepository
	Platforms repo.SocialPlatformRepository
	AI        Completer
	Logger    *logrus.Logger
	MaxTokens int
	Timeout   time.Duration
}

func NewGenerationService(events repo.EventRepository, platforms repo.SocialPlatformRepository, ai Completer, logger *logrus.Logger, maxTokens int, timeout time.Duration) *GenerationService {
	if maxTokens <= 0 {
		maxTokens = DefaultContentMaxTokens
	}
	return &GenerationService{Events: events, Platforms: platforms, AI: ai, Logger: logger, MaxTokens: maxTokens, Timeout: timeout}
}

// Generate drafts social content for an event from the user's prompt. An
// unknown or absent platform falls back to generic copy.
func (s *GenerationService) Generate(ctx context.Context, prompt string, eventID int64, platformID *int64) (GeneratedContent, error) {
	event, ok := s.Events.Get(eventID)
	if !ok {
		return GeneratedContent{}, ErrEventNotFound
	}
	var platform *entity.SocialPlatform
	if platformID != nil {
		if p, ok := s.Platforms.Get(*platformID); ok {
			platform = &p
		}
	}
	if s.AI == nil {
		return GeneratedContent{}, pkgerrors.WithMessage(ErrGenerationFailed, ErrCompleterUnavailable.Error())
	}
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	text, err := s.AI.Complete(ctx, generationPrompt(event, platform), []Turn{{Role: RoleUser, Text: prompt}}, s.MaxTokens)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("event_id", eventID).Error("content generation failed")
		}
		return GeneratedContent{}, pkgerrors.WithMessage(ErrGenerationFailed, err.Error())
	}

	out := GeneratedContent{Content: text, Event: event.Name, Platform: GenericPlatform}
	if platform != nil {
		out.Platform = platform.Name
	}
	return out, nil
}

func generationPrompt(event entity.Event, platform *entity.SocialPlatform) string {
	desc := "No description available"
	if event.Description != nil && *event.Description != "" {
		desc = *event.Description
	}
	var b strings.Builder
	b.WriteString(`You are a social media content creator for an event named "` + event.Name + `". `)
	b.WriteString(`The event is described as: "` + desc + `". `)
	if platform != nil {
		b.WriteString("Create engaging content specifically for " + platform.Name + ". ")
	} else {
		b.WriteString("Create engaging social media content. ")
	}
	b.WriteString("Your job is to craft compelling, concise content that will engage the target audience.")
	return b.String()
}
