package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"github.com/iliyamo/auth-service/internal/model"
)

// ProfileCache keeps recently served public user views in Redis.
// User records are immutable once created, so a short TTL is purely a
// bound on memory, not a correctness concern. A nil Redis client
// disables the cache entirely; every call becomes a miss.
type ProfileCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewProfileCache(client *redisv9.Client, ttl time.Duration) *ProfileCache {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &ProfileCache{client: client, ttl: ttl}
}

// Get returns the cached profile for a user id and whether it was present.
func (c *ProfileCache) Get(ctx context.Context, userID uint64) (model.PublicUser, bool, error) {
	if c.client == nil {
		return model.PublicUser{}, false, nil
	}
	raw, err := c.client.Get(ctx, c.key(userID)).Result()
	if err == redisv9.Nil {
		return model.PublicUser{}, false, nil
	}
	if err != nil {
		return model.PublicUser{}, false, fmt.Errorf("redis get profile failed: %w", err)
	}
	var u model.PublicUser
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return model.PublicUser{}, false, fmt.Errorf("unmarshal cached profile failed: %w", err)
	}
	return u, true, nil
}

// Set stores a profile view under the user's id.
func (c *ProfileCache) Set(ctx context.Context, u model.PublicUser) error {
	if c.client == nil {
		return nil
	}
	payload, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal profile cache failed: %w", err)
	}
	if err := c.client.Set(ctx, c.key(u.ID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set profile failed: %w", err)
	}
	return nil
}

func (c *ProfileCache) key(userID uint64) string {
	return fmt.Sprintf("auth:profile:%d", userID)
}
