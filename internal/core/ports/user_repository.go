package ports

import (
	"context"

	"github.com/moviehub/rental-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// FindByEmail returns domain.ErrUserNotFound when no account matches;
// Create returns domain.ErrEmailTaken on a duplicate email.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	SetLoggedIn(ctx context.Context, email string, loggedIn bool) error
	List(ctx context.Context) ([]*domain.User, error)
}
