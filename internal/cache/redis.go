// Package cache provides Redis cache access layer.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a key is absent.
var ErrCacheMiss = errors.New("cache miss")

// Cache provides Redis cache access methods.
type Cache struct {
	client *redis.Client
}

// Options tunes the Redis client. Zero values fall back to defaults.
type Options struct {
	PoolSize int
	// OpTimeout bounds each command. The limiter and token lookups sit on
	// the request path, so this stays short.
	OpTimeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.PoolSize < 1 {
		o.PoolSize = 10
	}
	if o.OpTimeout <= 0 {
		o.OpTimeout = 500 * time.Millisecond
	}
	return o
}

// New connects to Redis at redisURL and verifies the connection.
func New(ctx context.Context, redisURL string, opts Options) (*Cache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opts = opts.withDefaults()
	opt.PoolSize = opts.PoolSize
	opt.MinIdleConns = min(2, opts.PoolSize)
	opt.PoolTimeout = 4 * opts.OpTimeout
	opt.ReadTimeout = opts.OpTimeout
	opt.WriteTimeout = opts.OpTimeout
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return &Cache{client: client}, nil
}

// Ping checks Redis connectivity.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}

// Client returns the underlying Redis client for test helpers.
func (c *Cache) Client() *redis.Client {
	return c.client
}
