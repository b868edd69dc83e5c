// Package redis provides the Redis-backed session store variant.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/offboardhq/offboard-api/internal/core"
	"github.com/offboardhq/offboard-api/internal/data"
	"github.com/offboardhq/offboard-api/internal/domain/model"
)

// SessionStore is a Redis-based session store. TTL semantics come from the
// session ExpiresAt, so no pruner is needed.
type SessionStore struct {
	client redis.UniversalClient
	prefix string
}

var _ core.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates a new Redis-based session store.
func NewSessionStore(client redis.UniversalClient) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: "session:",
	}
}

// NewSessionStoreWithPrefix creates a Redis session store with a custom key prefix.
func NewSessionStoreWithPrefix(client redis.UniversalClient, prefix string) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: prefix,
	}
}

func (s *SessionStore) Save(ctx context.Context, sess model.Session) error {
	if sess.SID == "" {
		return errors.New("session ID cannot be empty")
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	key := s.prefix + sess.SID
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session is expired")
	}

	return s.client.Set(ctx, key, payload, ttl).Err()
}

func (s *SessionStore) Get(ctx context.Context, sid string) (model.Session, error) {
	if sid == "" {
		return model.Session{}, data.ErrSessionNotFound
	}

	key := s.prefix + sid
	raw, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Session{}, data.ErrSessionNotFound
		}
		return model.Session{}, fmt.Errorf("redis get: %w", err)
	}

	var sess model.Session
	if unmarshalErr := json.Unmarshal([]byte(raw), &sess); unmarshalErr != nil {
		return model.Session{}, fmt.Errorf("unmarshal session: %w", unmarshalErr)
	}

	// TTL should have evicted it already; treat a lingering expired payload
	// as missing.
	if sess.Expired(time.Now()) {
		if deleteErr := s.Delete(ctx, sid); deleteErr != nil {
			return model.Session{}, fmt.Errorf("cleanup expired session: %w", deleteErr)
		}
		return model.Session{}, data.ErrSessionNotFound
	}

	return sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, sid string) error {
	if sid == "" {
		return nil // Nothing to delete
	}

	key := s.prefix + sid
	return s.client.Del(ctx, key).Err()
}
