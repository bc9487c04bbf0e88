package favorite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a session-scoped backend. Keys are namespaced by session id
// and expire after the session TTL, refreshed on every write.
type RedisStore struct {
	client    redis.UniversalClient
	sessionID string
	ttl       time.Duration
}

func NewRedisStore(client redis.UniversalClient, sessionID string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client:    client,
		sessionID: sessionID,
		ttl:       ttl,
	}
}

func (s *RedisStore) Key(key string) string {
	return fmt.Sprintf("session:%s:%s", s.sessionID, key)
}

func (s *RedisStore) Read(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.Key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *RedisStore) Write(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.Key(key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
