package application

import (
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/gudimart-store/internal/domain/entity"
	repo "github.com/oksasatya/gudimart-store/internal/domain/repository"
)

// EventService manages events and the rows hanging off them: team members,
// social accounts and the platform catalog those accounts point at.
type EventService struct {
	Events    repo.EventRepository
	Team      repo.TeamMemberRepository
	Platforms repo.SocialPlatformRepository
	Accounts  repo.SocialAccountRepository
	Logger    *logrus.Logger
}

func NewEventService(events repo.EventRepository, team repo.TeamMemberRepository, platforms repo.SocialPlatformRepository, accounts repo.SocialAccountRepository, logger *logrus.Logger) *EventService {
	return &EventService{Events: events, Team: team, Platforms: platforms, Accounts: accounts, Logger: logger}
}

func (s *EventService) ListEvents(organizerID *int64) []entity.Event {
	return s.Events.List(organizerID)
}

func (s *EventService) GetEvent(id int64) (entity.Event, error) {
	e, ok := s.Events.Get(id)
	if !ok {
		return entity.Event{}, ErrEventNotFound
	}
	return e, nil
}

func (s *EventService) CreateEvent(in entity.EventInput) entity.Event {
	e := s.Events.Create(in)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"event_id": e.ID, "organizer_id": e.OrganizerID}).Info("event created")
	}
	return e
}

func (s *EventService) UpdateEvent(id int64, patch entity.EventPatch) (entity.Event, error) {
	e, ok := s.Events.Update(id, patch)
	if !ok {
		return entity.Event{}, ErrEventNotFound
	}
	return e, nil
}

// DeleteEvent removes only the event row. Team members, accounts, posts and
// calendar entries that reference it stay in place.
func (s *EventService) DeleteEvent(id int64) error {
	if !s.Events.Delete(id) {
		return ErrEventNotFound
	}
	return nil
}

func (s *EventService) ListTeam(eventID int64) []entity.TeamMember {
	return s.Team.ListByEvent(eventID)
}

func (s *EventService) AddTeamMember(in entity.TeamMemberInput) entity.TeamMember {
	return s.Team.Create(in)
}

func (s *EventService) UpdateTeamMember(id int64, patch entity.TeamMemberPatch) (entity.TeamMember, error) {
	m, ok := s.Team.Update(id, patch)
	if !ok {
		return entity.TeamMember{}, ErrTeamMemberNotFound
	}
	return m, nil
}

func (s *EventService) RemoveTeamMember(id int64) error {
	if !s.Team.Delete(id) {
		return ErrTeamMemberNotFound
	}
	return nil
}

func (s *EventService) ListPlatforms() []entity.SocialPlatform {
	return s.Platforms.ListActive()
}

func (s *EventService) GetPlatform(id int64) (entity.SocialPlatform, error) {
	p, ok := s.Platforms.Get(id)
	if !ok {
		return entity.SocialPlatform{}, ErrPlatformNotFound
	}
	return p, nil
}

func (s *EventService) CreatePlatform(in entity.SocialPlatformInput) (entity.SocialPlatform, error) {
	return s.Platforms.Create(in)
}

func (s *EventService) UpdatePlatform(id int64, patch entity.SocialPlatformPatch) (entity.SocialPlatform, error) {
	p, ok, err := s.Platforms.Update(id, patch)
	if err != nil {
		return entity.SocialPlatform{}, err
	}
	if !ok {
		return entity.SocialPlatform{}, ErrPlatformNotFound
	}
	return p, nil
}

func (s *EventService) ListAccounts(eventID int64) []entity.SocialAccount {
	return s.Accounts.ListByEvent(eventID)
}

func (s *EventService) CreateAccount(in entity.SocialAccountInput) entity.SocialAccount {
	return s.Accounts.Create(in)
}

func (s *EventService) UpdateAccount(id int64, patch entity.SocialAccountPatch) (entity.SocialAccount, error) {
	a, ok := s.Accounts.Update(id, patch)
	if !ok {
		return entity.SocialAccount{}, ErrSocialAccountNotFound
	}
	return a, nil
}

func (s *EventService) DeleteAccount(id int64) error {
	if !s.Accounts.Delete(id) {
		return ErrSocialAccountNotFound
	}
	return nil
}
