package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// TokenCache implements ports.TokenCache using Redis. Keys are PII digests
// computed by the caller; raw PII never reaches Redis.
type TokenCache struct {
	client *goredis.Client
	prefix string
}

// NewTokenCache creates a new Redis-backed token cache.
func NewTokenCache(client *goredis.Client) *TokenCache {
	return &TokenCache{
		client: client,
		prefix: "pdvtoken:",
	}
}

// Get retrieves a cached token by PII digest.
// Returns "", nil if the key does not exist.
func (c *TokenCache) Get(ctx context.Context, digest string) (string, error) {
	val, err := c.client.Get(ctx, c.prefix+digest).Result()
	if err != nil {
		if err == goredis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("redis token get: %w", err)
	}
	return val, nil
}

// Set stores a token in the cache with TTL.
func (c *TokenCache) Set(ctx context.Context, digest string, token string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+digest, token, ttl).Err(); err != nil {
		return fmt.Errorf("redis token set: %w", err)
	}
	return nil
}
