package application

import (
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/gudimart-store/internal/domain/entity"
	repo "github.com/oksasatya/gudimart-store/internal/domain/repository"
	"github.com/oksasatya/gudimart-store/pkg/helpers"
)

type UserService struct {
	Repo   repo.UserRepository
	Teams  repo.TeamMemberRepository
	Logger *logrus.Logger
}

func NewUserService(users repo.UserRepository, teams repo.TeamMemberRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: users, Teams: teams, Logger: logger}
}

// Register stores a new account. The plain password in in.Password is
// replaced by its bcrypt hash before anything is written.
func (s *UserService) Register(in entity.UserInput) (entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return entity.User{}, pkgerrors.Wrap(err, "hash password")
	}
	in.Password = hash
	u, err := s.Repo.Create(in)
	if err != nil {
		return entity.User{}, err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", u.ID).Info("user registered")
	}
	return u, nil
}

func (s *UserService) Get(id int64) (entity.User, error) {
	u, ok := s.Repo.Get(id)
	if !ok {
		return entity.User{}, ErrUserNotFound
	}
	return u, nil
}

// Update merges patch into the user, hashing a new password if one is set.
func (s *UserService) Update(id int64, patch entity.UserPatch) (entity.User, error) {
	if patch.Password != nil {
		hash, err := helpers.HashPassword(*patch.Password)
		if err != nil {
			return entity.User{}, pkgerrors.Wrap(err, "hash password")
		}
		patch.Password = &hash
	}
	u, ok, err := s.Repo.Update(id, patch)
	if err != nil {
		return entity.User{}, err
	}
	if !ok {
		return entity.User{}, ErrUserNotFound
	}
	return u, nil
}

// Memberships lists the event memberships of a user.
func (s *UserService) Memberships(userID int64) []entity.TeamMember {
	return s.Teams.ListByUser(userID)
}
