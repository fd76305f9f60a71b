// Package memory provides map-backed repositories guarded by RWMutex.
// It backs STORE=memory deployments and the service-level tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/moviehub/rental-system/internal/core/domain"
)

// UserRepository keeps accounts in a map keyed by email.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*domain.User)}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Email]; exists {
		return domain.ErrEmailTaken
	}
	clone := *user
	r.users[user.Email] = &clone
	return nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *UserRepository) SetLoggedIn(_ context.Context, email string, loggedIn bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.LoggedIn = loggedIn
	return nil
}

func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	// map iteration order is random; keep listings stable
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}
