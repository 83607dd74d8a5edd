// Package memory implements the repository contracts on process-local
// tables. Nothing survives a restart.
package memory

import (
	"time"

	"github.com/oksasatya/gudimart-store/internal/domain/entity"
	"github.com/oksasatya/gudimart-store/internal/domain/repository"
)

var (
	_ repository.UserRepository            = (*UserRepository)(nil)
	_ repository.CategoryRepository        = (*CategoryRepository)(nil)
	_ repository.ProductRepository         = (*ProductRepository)(nil)
	_ repository.CartRepository            = (*CartRepository)(nil)
	_ repository.ChatRepository            = (*ChatRepository)(nil)
	_ repository.EventRepository           = (*EventRepository)(nil)
	_ repository.TeamMemberRepository      = (*TeamMemberRepository)(nil)
	_ repository.SocialPlatformRepository  = (*SocialPlatformRepository)(nil)
	_ repository.SocialAccountRepository   = (*SocialAccountRepository)(nil)
	_ repository.ContentPostRepository     = (*ContentPostRepository)(nil)
	_ repository.ContentApprovalRepository = (*ContentApprovalRepository)(nil)
	_ repository.CalendarRepository        = (*CalendarRepository)(nil)
)

// Store groups one repository per entity kind. Build it once at startup and
// hand it to whatever needs it; tests build their own.
type Store struct {
	Users            *UserRepository
	Categories       *CategoryRepository
	Products         *ProductRepository
	Cart             *CartRepository
	Chat             *ChatRepository
	Events           *EventRepository
	TeamMembers      *TeamMemberRepository
	SocialPlatforms  *SocialPlatformRepository
	SocialAccounts   *SocialAccountRepository
	ContentPosts     *ContentPostRepository
	ContentApprovals *ContentApprovalRepository
	Calendar         *CalendarRepository

	now func() time.Time
}

type Option func(*Store)

// WithClock replaces time.Now as the source of created/updated timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	clock := s.now
	s.Users = &UserRepository{t: NewTable[entity.User](), now: clock}
	s.Categories = &CategoryRepository{t: NewTable[entity.Category]()}
	s.Products = &ProductRepository{t: NewTable[entity.Product](), now: clock}
	s.Cart = &CartRepository{t: NewTable[entity.CartItem]()}
	s.Chat = &ChatRepository{t: NewTable[entity.ChatMessage](), now: clock}
	s.Events = &EventRepository{t: NewTable[entity.Event](), now: clock}
	s.TeamMembers = &TeamMemberRepository{t: NewTable[entity.TeamMember](), now: clock}
	s.SocialPlatforms = &SocialPlatformRepository{t: NewTable[entity.SocialPlatform]()}
	s.SocialAccounts = &SocialAccountRepository{t: NewTable[entity.SocialAccount](), now: clock}
	s.ContentPosts = &ContentPostRepository{t: NewTable[entity.ContentPost](), now: clock}
	s.ContentApprovals = &ContentApprovalRepository{t: NewTable[entity.ContentApproval](), now: clock}
	s.Calendar = &CalendarRepository{t: NewTable[entity.CalendarEntry](), now: clock}
	return s
}

// Counts reports the row count of every table, keyed by table name.
func (s *Store) Counts() map[string]int {
	return map[string]int{
		"users":             s.Users.t.Len(),
		"categories":        s.Categories.t.Len(),
		"products":          s.Products.t.Len(),
		"cart_items":        s.Cart.t.Len(),
		"chat_messages":     s.Chat.t.Len(),
		"events":            s.Events.t.Len(),
		"team_members":      s.TeamMembers.t.Len(),
		"social_platforms":  s.SocialPlatforms.t.Len(),
		"social_accounts":   s.SocialAccounts.t.Len(),
		"content_posts":     s.ContentPosts.t.Len(),
		"content_approvals": s.ContentApprovals.t.Len(),
		"calendar_entries":  s.Calendar.t.Len(),
	}
}
