package ports

import "context"

// RegisterResult is returned after a successful registration.
type RegisterResult struct {
	Email   string
	Role    string
	Message string
}

// LoginResult carries the signed token and welcome text for a successful login.
type LoginResult struct {
	Token   string
	Role    string
	Message string
}

// UserSummary is the public view of an account. It deliberately carries no
// password hash.
type UserSummary struct {
	Email    string
	Role     string
	LoggedIn bool
}

// AuthService defines account registration, login and listing.
type AuthService interface {
	RegisterUser(ctx context.Context, email, password string) (*RegisterResult, error)
	RegisterAdmin(ctx context.Context, email, password string) (*RegisterResult, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	ListUsers(ctx context.Context, caller Caller) ([]UserSummary, error)
}

// PasswordHasher abstracts the one-way password transformation so the
// concrete algorithm is swappable without touching service logic.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches digest.
	Verify(password, digest string) bool
}

// SessionStore records successful logins so operators can inspect active
// sessions. It is advisory: authorization reads the persisted logged-in
// flag, not this store.
type SessionStore interface {
	MarkLoggedIn(ctx context.Context, email, role string) error
	IsLoggedIn(ctx context.Context, email string) (bool, error)
}

// Caller is the authenticated identity extracted from the request token.
// Every gated operation receives it explicitly; the service re-reads the
// caller's stored record before trusting it.
type Caller struct {
	Email string
	Role  string
}

// Anonymous reports whether no identity was presented.
func (c Caller) Anonymous() bool {
	return c.Email == ""
}
