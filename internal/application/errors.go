package application

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by every "x not found" error below, so callers can
// test for absence without knowing the entity kind.
var ErrNotFound = errors.New("not found")

var (
	ErrUserNotFound          = fmt.Errorf("user %w", ErrNotFound)
	ErrCategoryNotFound      = fmt.Errorf("category %w", ErrNotFound)
	ErrProductNotFound       = fmt.Errorf("product %w", ErrNotFound)
	ErrCartItemNotFound      = fmt.Errorf("cart item %w", ErrNotFound)
	ErrEventNotFound         = fmt.Errorf("event %w", ErrNotFound)
	ErrTeamMemberNotFound    = fmt.Errorf("team member %w", ErrNotFound)
	ErrPlatformNotFound      = fmt.Errorf("social platform %w", ErrNotFound)
	ErrSocialAccountNotFound = fmt.Errorf("social account %w", ErrNotFound)
	ErrPostNotFound          = fmt.Errorf("content post %w", ErrNotFound)
	ErrApprovalNotFound      = fmt.Errorf("content approval %w", ErrNotFound)
	ErrCalendarEntryNotFound = fmt.Errorf("calendar entry %w", ErrNotFound)
)

// ErrGenerationFailed wraps failures of the text-completion backend during
// content generation.
var ErrGenerationFailed = errors.New("content generation failed")

// ErrCompleterUnavailable is reported when no completion backend is
// configured.
var ErrCompleterUnavailable = errors.New("text completion is not configured")
