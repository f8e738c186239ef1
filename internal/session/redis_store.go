package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sellerhub-service/internal/domain/principal"

	"github.com/redis/go-redis/v9"
)

// keyPrefix matches the well-known key the browser client historically
// persisted the logged-in user under.
const keyPrefix = "currentUser:"

// RedisStore persists one principal per session id in Redis. Entries expire
// with the principal's token so stale sessions clean themselves up.
type RedisStore struct {
	notifier

	client     *redis.Client
	defaultTTL time.Duration
}

func NewRedisStore(client *redis.Client, defaultTTL time.Duration) *RedisStore {
	if defaultTTL <= 0 {
		defaultTTL = 24 * time.Hour
	}
	return &RedisStore{client: client, defaultTTL: defaultTTL}
}

func (s *RedisStore) Get(ctx context.Context, sid string) (*principal.Principal, error) {
	data, err := s.client.Get(ctx, keyPrefix+sid).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var p principal.Principal
	if err := json.Unmarshal(data, &p); err != nil {
		// Malformed persisted state reads as "not logged in".
		return nil, nil
	}
	return &p, nil
}

func (s *RedisStore) Set(ctx context.Context, sid string, p *principal.Principal) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal principal: %w", err)
	}

	ttl := s.defaultTTL
	if p != nil && p.ExpiresAt > 0 {
		if until := time.Until(time.UnixMilli(p.ExpiresAt)); until > 0 {
			ttl = until
		}
	}

	if err := s.client.Set(ctx, keyPrefix+sid, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	s.publish(Change{SID: sid, Principal: p})
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, keyPrefix+sid).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	s.publish(Change{SID: sid, Principal: nil})
	return nil
}

func (s *RedisStore) IsAuthenticated(ctx context.Context, sid string) bool {
	p, err := s.Get(ctx, sid)
	if err != nil {
		return false
	}
	return p.Valid(time.Now())
}

func (s *RedisStore) HasRole(ctx context.Context, sid, role string) bool {
	p, err := s.Get(ctx, sid)
	if err != nil {
		return false
	}
	return p.Valid(time.Now()) && p.Role == role
}
