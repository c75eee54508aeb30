package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

const credentialKeyPrefix = "credential:"

// GetCredential loads a cached bearer credential by name.
// Returns ErrCacheMiss if nothing is stored.
func (c *Cache) GetCredential(ctx context.Context, name string) (string, time.Time, error) {
	result, err := c.client.HGetAll(ctx, credentialKeyPrefix+name).Result()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("redis hgetall failed: %w", err)
	}

	token := result["token"]
	if token == "" {
		return "", time.Time{}, ErrCacheMiss
	}

	expiresAt, err := strconv.ParseInt(result["expires_at"], 10, 64)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to parse credential expiry: %w", err)
	}

	return token, time.Unix(expiresAt, 0), nil
}

// SetCredential stores a bearer credential until expiresAt.
// An already-expired credential is deleted instead.
func (c *Cache) SetCredential(ctx context.Context, name, token string, expiresAt time.Time) error {
	key := credentialKeyPrefix + name

	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return c.client.Del(ctx, key).Err()
	}

	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, key, map[string]any{
		"token":      token,
		"expires_at": strconv.FormatInt(expiresAt.Unix(), 10),
	})
	pipe.Expire(ctx, key, ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache credential: %w", err)
	}

	return nil
}
