package redisad

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"sporthub/internal/adapters/observability"
	"sporthub/internal/domain"
)

// sessionKey is the single fixed key the current-user record lives
// under. Absence of the key means logged out.
const sessionKey = "sporthub:session"

// SessionStore persists the mock-auth user as a JSON blob in redis.
type SessionStore struct{ c *redis.Client }

func NewSessionStore(addr, pass string, db int) *SessionStore {
	return &SessionStore{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

func NewSessionStoreFromClient(c *redis.Client) *SessionStore { return &SessionStore{c: c} }

// Load returns (nil, nil) when no session is stored and an error only
// for transport or decode failures; callers treat both as logged out.
func (s *SessionStore) Load(ctx context.Context) (*domain.User, error) {
	b, err := s.c.Get(ctx, sessionKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var u domain.User
	if err := json.Unmarshal(b, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *SessionStore) Save(ctx context.Context, u domain.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	observability.ObserveStore("redis", "session_save")
	return s.c.Set(ctx, sessionKey, b, 0).Err()
}

func (s *SessionStore) Clear(ctx context.Context) error {
	observability.ObserveStore("redis", "session_clear")
	return s.c.Del(ctx, sessionKey).Err()
}
