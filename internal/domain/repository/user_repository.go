package repository

import "github.com/oksasatya/gudimart-store/internal/domain/entity"

// UserRepository stores accounts. Username and email are unique.
type UserRepository interface {
	Create(in entity.UserInput) (entity.User, error)
	Get(id int64) (entity.User, bool)
	GetByUsername(username string) (entity.User, bool)
	GetByEmail(email string) (entity.User, bool)
	Update(id int64, p entity.UserPatch) (entity.User, bool, error)
}
