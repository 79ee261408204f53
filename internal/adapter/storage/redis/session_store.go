package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"boltcard-gateway/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// SessionStore implements ports.WithdrawSessionStore. Sessions live only in
// Redis: losing one costs the payer a re-tap, never money, so durability is
// deliberately weaker than for pending top-ups.
type SessionStore struct {
	client *goredis.Client
	prefix string
}

// NewSessionStore creates a new Redis-backed withdraw session store.
func NewSessionStore(client *goredis.Client) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: "wsession:",
	}
}

// Put stores a withdraw session under its k1 token with the given TTL.
func (s *SessionStore) Put(ctx context.Context, session *ports.WithdrawSession, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal withdraw session: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+session.K1, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis session put: %w", err)
	}
	return nil
}

// Claim atomically retrieves and deletes the session for k1. GETDEL makes
// the claim single-use: the loser of a concurrent double-claim gets nil.
func (s *SessionStore) Claim(ctx context.Context, k1 string) (*ports.WithdrawSession, error) {
	payload, err := s.client.GetDel(ctx, s.prefix+k1).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis session claim: %w", err)
	}

	var session ports.WithdrawSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("unmarshal withdraw session: %w", err)
	}
	return &session, nil
}
