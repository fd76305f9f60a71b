package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Email suffixes decide the role at registration time and never afterwards.
// Matching is case-sensitive, exactly as stored.
const (
	MemberEmailSuffix = "@gmail.com"
	AdminEmailSuffix  = "@admin.com"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrInvalidAdminEmail  = errors.New("invalid admin email format")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotLoggedIn        = errors.New("login required")
	ErrAdminRequired      = errors.New("admin privileges required")
	ErrNoRegisteredUsers  = errors.New("no registered users yet")
)

// User models an account in the rental system. The email is the unique key.
// LoggedIn is flipped by a successful login and is never cleared; the
// system has no logout operation.
type User struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	LoggedIn     bool      `json:"logged_in"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
