package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/moviehub/rental-system/internal/core/domain"
	"github.com/moviehub/rental-system/internal/core/ports"
	"github.com/moviehub/rental-system/internal/infrastructure/db/memory"
	"github.com/moviehub/rental-system/internal/pkg/password"
)

type recordingSessions struct {
	marked map[string]string
}

func newRecordingSessions() *recordingSessions {
	return &recordingSessions{marked: make(map[string]string)}
}

func (s *recordingSessions) MarkLoggedIn(_ context.Context, email, role string) error {
	s.marked[email] = role
	return nil
}

func (s *recordingSessions) IsLoggedIn(_ context.Context, email string) (bool, error) {
	_, ok := s.marked[email]
	return ok, nil
}

func newAuthService(users ports.UserRepository, sessions ports.SessionStore) *AuthService {
	hasher := password.NewBcryptHasher(bcrypt.MinCost)
	return NewAuthService(users, hasher, sessions, "secret", time.Hour, zerolog.Nop())
}

func TestAuthService_RegisterUser_Success(t *testing.T) {
	users := memory.NewUserRepository()
	svc := newAuthService(users, nil)

	result, err := svc.RegisterUser(context.Background(), "alice@gmail.com", "pass123")
	if err != nil {
		t.Fatalf("RegisterUser returned error: %v", err)
	}
	if result.Role != domain.RoleMember {
		t.Fatalf("unexpected role: %s", result.Role)
	}

	stored, err := users.FindByEmail(context.Background(), "alice@gmail.com")
	if err != nil {
		t.Fatalf("stored user not found: %v", err)
	}
	if stored.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if stored.LoggedIn {
		t.Fatalf("new account must not be logged in")
	}
}

func TestAuthService_RegisterUser_InvalidSuffix(t *testing.T) {
	svc := newAuthService(memory.NewUserRepository(), nil)

	if _, err := svc.RegisterUser(context.Background(), "alice@yahoo.com", "pass"); err != domain.ErrInvalidEmailFormat {
		t.Fatalf("expected ErrInvalidEmailFormat, got %v", err)
	}
	// admin suffix does not satisfy the member rule either
	if _, err := svc.RegisterUser(context.Background(), "alice@admin.com", "pass"); err != domain.ErrInvalidEmailFormat {
		t.Fatalf("expected ErrInvalidEmailFormat, got %v", err)
	}
}

func TestAuthService_RegisterAdmin_InvalidSuffix(t *testing.T) {
	svc := newAuthService(memory.NewUserRepository(), nil)

	if _, err := svc.RegisterAdmin(context.Background(), "boss@gmail.com", "pass"); err != domain.ErrInvalidAdminEmail {
		t.Fatalf("expected ErrInvalidAdminEmail, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newAuthService(memory.NewUserRepository(), nil)

	if _, err := svc.RegisterUser(context.Background(), "bob@gmail.com", "pass"); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := svc.RegisterUser(context.Background(), "bob@gmail.com", "other"); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Register_DuplicateBeforeSuffixCheck(t *testing.T) {
	// The duplicate check runs first: re-registering a member email through
	// the admin path reports the duplicate, not the suffix mismatch.
	svc := newAuthService(memory.NewUserRepository(), nil)

	if _, err := svc.RegisterUser(context.Background(), "bob@gmail.com", "pass"); err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	if _, err := svc.RegisterAdmin(context.Background(), "bob@gmail.com", "pass"); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Register_CaseSensitiveEmails(t *testing.T) {
	svc := newAuthService(memory.NewUserRepository(), nil)

	if _, err := svc.RegisterUser(context.Background(), "carol@gmail.com", "pass"); err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	// no normalization: a different casing is a different account
	if _, err := svc.RegisterUser(context.Background(), "Carol@gmail.com", "pass"); err != nil {
		t.Fatalf("expected distinct account, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	users := memory.NewUserRepository()
	sessions := newRecordingSessions()
	svc := newAuthService(users, sessions)

	if _, err := svc.RegisterAdmin(context.Background(), "carol@admin.com", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "carol@admin.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.Message != "Login successful. Welcome, Admin." {
		t.Fatalf("unexpected welcome message: %q", result.Message)
	}

	stored, _ := users.FindByEmail(context.Background(), "carol@admin.com")
	if !stored.LoggedIn {
		t.Fatalf("expected logged_in to be set")
	}
	if sessions.marked["carol@admin.com"] != domain.RoleAdmin {
		t.Fatalf("expected session recorded with admin role")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(result.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["email"] != "carol@admin.com" || claims["role"] != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %v", claims)
	}
}

func TestAuthService_Login_MemberWelcome(t *testing.T) {
	svc := newAuthService(memory.NewUserRepository(), nil)

	if _, err := svc.RegisterUser(context.Background(), "dan@gmail.com", "pass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	result, err := svc.Login(context.Background(), "dan@gmail.com", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Message != "Login successful. Welcome, Member." {
		t.Fatalf("unexpected welcome message: %q", result.Message)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	users := memory.NewUserRepository()
	svc := newAuthService(users, nil)

	_, _ = svc.RegisterUser(context.Background(), "dave@gmail.com", "goodpass")
	if _, err := svc.Login(context.Background(), "dave@gmail.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	stored, _ := users.FindByEmail(context.Background(), "dave@gmail.com")
	if stored.LoggedIn {
		t.Fatalf("failed login must not mark the account logged in")
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthService(memory.NewUserRepository(), nil)

	// unknown accounts surface the same error as bad passwords
	if _, err := svc.Login(context.Background(), "ghost@gmail.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_ListUsers(t *testing.T) {
	users := memory.NewUserRepository()
	svc := newAuthService(users, nil)
	ctx := context.Background()

	_, _ = svc.RegisterAdmin(ctx, "root@admin.com", "pass")
	_, _ = svc.RegisterUser(ctx, "alice@gmail.com", "pass")
	if _, err := svc.Login(ctx, "root@admin.com", "pass"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	list, err := svc.ListUsers(ctx, ports.Caller{Email: "root@admin.com", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 users, got %d", len(list))
	}
	for _, u := range list {
		if u.Email == "" || u.Role == "" {
			t.Fatalf("incomplete summary: %+v", u)
		}
	}
}

func TestAuthService_ListUsers_Gating(t *testing.T) {
	users := memory.NewUserRepository()
	svc := newAuthService(users, nil)
	ctx := context.Background()

	_, _ = svc.RegisterUser(ctx, "alice@gmail.com", "pass")

	if _, err := svc.ListUsers(ctx, ports.Caller{}); err != domain.ErrNotLoggedIn {
		t.Fatalf("expected ErrNotLoggedIn for anonymous caller, got %v", err)
	}
	// registered but never logged in
	if _, err := svc.ListUsers(ctx, ports.Caller{Email: "alice@gmail.com"}); err != domain.ErrNotLoggedIn {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}

	_, _ = svc.Login(ctx, "alice@gmail.com", "pass")
	if _, err := svc.ListUsers(ctx, ports.Caller{Email: "alice@gmail.com"}); err != domain.ErrAdminRequired {
		t.Fatalf("expected ErrAdminRequired for member, got %v", err)
	}
}

type emptyListUserRepo struct {
	ports.UserRepository
}

func (r emptyListUserRepo) List(context.Context) ([]*domain.User, error) {
	return nil, nil
}

func TestAuthService_ListUsers_Empty(t *testing.T) {
	users := memory.NewUserRepository()
	svc := newAuthService(emptyListUserRepo{users}, nil)
	ctx := context.Background()

	_, _ = svc.RegisterAdmin(ctx, "root@admin.com", "pass")
	_, _ = svc.Login(ctx, "root@admin.com", "pass")

	if _, err := svc.ListUsers(ctx, ports.Caller{Email: "root@admin.com"}); err != domain.ErrNoRegisteredUsers {
		t.Fatalf("expected ErrNoRegisteredUsers, got %v", err)
	}
}
