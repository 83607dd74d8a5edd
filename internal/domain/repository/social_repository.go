package repository

import "github.com/oksasatya/gudimart-store/internal/domain/entity"

// SocialPlatformRepository holds the platform catalog. Names are unique.
type SocialPlatformRepository interface {
	// ListActive returns active platforms ordered by name.
	ListActive() []entity.SocialPlatform
	Get(id int64) (entity.SocialPlatform, bool)
	Create(in entity.SocialPlatformInput) (entity.SocialPlatform, error)
	Update(id int64, p entity.SocialPlatformPatch) (entity.SocialPlatform, bool, error)
}

type SocialAccountRepository interface {
	ListByEvent(eventID int64) []entity.SocialAccount
	Get(id int64) (entity.SocialAccount, bool)
	Create(in entity.SocialAccountInput) entity.SocialAccount
	Update(id int64, p entity.SocialAccountPatch) (entity.SocialAccount, bool)
	Delete(id int64) bool
}
