package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionTTL = 24 * time.Hour

// SessionStore records successful logins so operators can inspect which
// accounts are active. Key format: session:<email> -> role.
//
// The store is advisory: the persisted logged-in flag on the user record
// remains the source of truth for authorization.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore wraps the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// MarkLoggedIn records a login for email (expires after sessionTTL).
func (s *SessionStore) MarkLoggedIn(ctx context.Context, email, role string) error {
	return s.client.Set(ctx, s.key(email), role, sessionTTL).Err()
}

// IsLoggedIn reports whether a recent login is recorded for email.
func (s *SessionStore) IsLoggedIn(ctx context.Context, email string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(email)).Result()
	if err != nil {
		return false, fmt.Errorf("session check: %w", err)
	}
	return n > 0, nil
}

func (s *SessionStore) key(email string) string {
	return fmt.Sprintf("session:%s", email)
}
