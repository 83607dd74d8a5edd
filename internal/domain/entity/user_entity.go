package entity

import "time"

// User is the account that owns carts, chat history, events and posts.
// Passwords are stored as bcrypt hashes and never serialized.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Address   *string   `json:"address,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

const DefaultUserRole = "user"

// UserInput is the insert shape for users. Password must already be hashed.
type UserInput struct {
	Username string
	Password string
	Email    string
	Name     string
	Address  *string
	Phone    *string
	Role     string
}

func (in UserInput) Build(id int64, now time.Time) User {
	role := in.Role
	if role == "" {
		role = DefaultUserRole
	}
	return User{
		ID:        id,
		Username:  in.Username,
		Password:  in.Password,
		Email:     in.Email,
		Name:      in.Name,
		Address:   cloneString(in.Address),
		Phone:     cloneString(in.Phone),
		Role:      role,
		CreatedAt: now,
	}
}

// UserPatch carries the fields to change on a user; nil means untouched.
type UserPatch struct {
	Username *string
	Password *string
	Email    *string
	Name     *string
	Address  *string
	Phone    *string
	Role     *string
}

func (p UserPatch) Apply(u *User) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Address != nil {
		u.Address = cloneString(p.Address)
	}
	if p.Phone != nil {
		u.Phone = cloneString(p.Phone)
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
}

// Clone returns a copy that shares no pointers with u.
func (u User) Clone() User {
	u.Address = cloneString(u.Address)
	u.Phone = cloneString(u.Phone)
	return u
}
