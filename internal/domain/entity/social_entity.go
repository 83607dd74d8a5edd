package entity

import "time"

// SocialPlatform is an entry of the global platform catalog. Names are unique.
type SocialPlatform struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Icon        *string `json:"icon,omitempty"`
	APIEndpoint *string `json:"apiEndpoint,omitempty"`
	Active      bool    `json:"active"`
}

type SocialPlatformInput struct {
	Name        string
	Icon        *string
	APIEndpoint *string
	Active      *bool // nil means active
}

func (in SocialPlatformInput) Build(id int64) SocialPlatform {
	p := SocialPlatform{
		ID:          id,
		Name:        in.Name,
		Icon:        cloneString(in.Icon),
		APIEndpoint: cloneString(in.APIEndpoint),
		Active:      true,
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
	return p
}

type SocialPlatformPatch struct {
	Name        *string
	Icon        *string
	APIEndpoint *string
	Active      *bool
}

func (pp SocialPlatformPatch) Apply(p *SocialPlatform) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Icon != nil {
		p.Icon = cloneString(pp.Icon)
	}
	if pp.APIEndpoint != nil {
		p.APIEndpoint = cloneString(pp.APIEndpoint)
	}
	if pp.Active != nil {
		p.Active = *pp.Active
	}
}

func (p SocialPlatform) Clone() SocialPlatform {
	p.Icon = cloneString(p.Icon)
	p.APIEndpoint = cloneString(p.APIEndpoint)
	return p
}

// SocialAccount is an event's handle on one platform. Tokens are accepted on
// write and never rendered.
type SocialAccount struct {
	ID            int64      `json:"id"`
	EventID       int64      `json:"eventId"`
	PlatformID    int64      `json:"platformId"`
	AccountName   string     `json:"accountName"`
	AccountHandle string     `json:"accountHandle"`
	AccessToken   *string    `json:"-"`
	RefreshToken  *string    `json:"-"`
	TokenExpiry   *time.Time `json:"tokenExpiry,omitempty"`
	Active        bool       `json:"active"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type SocialAccountInput struct {
	EventID       int64
	PlatformID    int64
	AccountName   string
	AccountHandle string
	AccessToken   *string
	RefreshToken  *string
	TokenExpiry   *time.Time
	Active        *bool
}

func (in SocialAccountInput) Build(id int64, now time.Time) SocialAccount {
	a := SocialAccount{
		ID:            id,
		EventID:       in.EventID,
		PlatformID:    in.PlatformID,
		AccountName:   in.AccountName,
		AccountHandle: in.AccountHandle,
		AccessToken:   cloneString(in.AccessToken),
		RefreshToken:  cloneString(in.RefreshToken),
		TokenExpiry:   cloneTime(in.TokenExpiry),
		Active:        true,
		CreatedAt:     now,
	}
	if in.Active != nil {
		a.Active = *in.Active
	}
	return a
}

type SocialAccountPatch struct {
	EventID       *int64
	PlatformID    *int64
	AccountName   *string
	AccountHandle *string
	AccessToken   *string
	RefreshToken  *string
	TokenExpiry   *time.Time
	Active        *bool
}

func (p SocialAccountPatch) Apply(a *SocialAccount) {
	if p.EventID != nil {
		a.EventID = *p.EventID
	}
	if p.PlatformID != nil {
		a.PlatformID = *p.PlatformID
	}
	if p.AccountName != nil {
		a.AccountName = *p.AccountName
	}
	if p.AccountHandle != nil {
		a.AccountHandle = *p.AccountHandle
	}
	if p.AccessToken != nil {
		a.AccessToken = cloneString(p.AccessToken)
	}
	if p.RefreshToken != nil {
		a.RefreshToken = cloneString(p.RefreshToken)
	}
	if p.TokenExpiry != nil {
		a.TokenExpiry = cloneTime(p.TokenExpiry)
	}
	if p.Active != nil {
		a.Active = *p.Active
	}
}

func (a SocialAccount) Clone() SocialAccount {
	a.AccessToken = cloneString(a.AccessToken)
	a.RefreshToken = cloneString(a.RefreshToken)
	a.TokenExpiry = cloneTime(a.TokenExpiry)
	return a
}
