package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/moviehub/rental-system/internal/core/domain"
	"github.com/moviehub/rental-system/internal/core/ports"
)

// AuthService implements registration, login and account listing.
type AuthService struct {
	users     ports.UserRepository
	hasher    ports.PasswordHasher
	sessions  ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	sessions ports.SessionStore,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		hasher:    hasher,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// RegisterUser creates a member account. The email must end with the member
// suffix and must not be taken.
func (s *AuthService) RegisterUser(ctx context.Context, email, password string) (*ports.RegisterResult, error) {
	if err := s.register(ctx, email, password, domain.RoleMember); err != nil {
		return nil, err
	}
	return &ports.RegisterResult{
		Email:   email,
		Role:    domain.RoleMember,
		Message: "User registration successful.",
	}, nil
}

// RegisterAdmin creates an admin account. The email must end with the admin
// suffix and must not be taken.
func (s *AuthService) RegisterAdmin(ctx context.Context, email, password string) (*ports.RegisterResult, error) {
	if err := s.register(ctx, email, password, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return &ports.RegisterResult{
		Email:   email,
		Role:    domain.RoleAdmin,
		Message: "Admin registration successful.",
	}, nil
}

// register performs the shared account creation path. The duplicate check
// runs before the suffix check; emails are matched case-sensitively,
// exactly as stored.
func (s *AuthService) register(ctx context.Context, email, password, role string) error {
	if email == "" || password == "" {
		return domain.ErrInvalidCredentials
	}

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	switch role {
	case domain.RoleAdmin:
		if !strings.HasSuffix(email, domain.AdminEmailSuffix) {
			return domain.ErrInvalidAdminEmail
		}
	default:
		if !strings.HasSuffix(email, domain.MemberEmailSuffix) {
			return domain.ErrInvalidEmailFormat
		}
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		LoggedIn:     false,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return err
	}

	s.log.Info().Str("email", email).Str("role", role).Msg("account registered")
	return nil
}

// Login verifies the credentials, marks the account logged in, and issues a
// token carrying the caller identity. Lookup and verification failures are
// reported uniformly as invalid credentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.users.SetLoggedIn(ctx, user.Email, true); err != nil {
		return nil, err
	}

	if s.sessions != nil {
		if err := s.sessions.MarkLoggedIn(ctx, user.Email, user.Role); err != nil {
			s.log.Warn().Err(err).Str("email", user.Email).Msg("failed to record session")
		}
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	welcome := "Login successful. Welcome, Member."
	if user.IsAdmin() {
		welcome = "Login successful. Welcome, Admin."
	}

	s.log.Info().Str("email", user.Email).Str("role", user.Role).Msg("login successful")

	return &ports.LoginResult{
		Token:   token,
		Role:    user.Role,
		Message: welcome,
	}, nil
}

// ListUsers returns all registered accounts without password hashes.
// Only a logged-in admin may call it.
func (s *AuthService) ListUsers(ctx context.Context, caller ports.Caller) ([]ports.UserSummary, error) {
	if caller.Anonymous() {
		return nil, domain.ErrNotLoggedIn
	}
	actor, err := s.users.FindByEmail(ctx, caller.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrNotLoggedIn
		}
		return nil, err
	}
	if !actor.LoggedIn {
		return nil, domain.ErrNotLoggedIn
	}
	if !actor.IsAdmin() {
		return nil, domain.ErrAdminRequired
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrNoRegisteredUsers
	}

	out := make([]ports.UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, ports.UserSummary{
			Email:    u.Email,
			Role:     u.Role,
			LoggedIn: u.LoggedIn,
		})
	}
	return out, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
