// Package rediscache provides a best-effort Redis-backed cache for the
// task list read path. The cache is an accelerator, never a source of
// truth: every backend failure is absorbed here and surfaces to callers
// only as a miss or a no-op, so the service keeps working with no Redis
// at all.
package rediscache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// opTimeout bounds every cache round trip so a slow or unreachable Redis
// never delays the store fallback path by more than this.
const opTimeout = 500 * time.Millisecond

// Cache wraps a Redis client with swallow-all-errors semantics.
type Cache struct {
	client *redis.Client
	logger *slog.Logger
}

// Connect establishes the process-wide cache handle: it parses the
// connection URL and verifies liveness with a ping. Any failure returns
// nil rather than an error — a nil handle means the process runs
// cache-less for its lifetime.
func Connect(ctx context.Context, url string, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With(slog.String("component", "rediscache"))

	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Warn("invalid redis URL, running without cache", slog.String("error", err.Error()))
		return nil
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn("redis unreachable, running without cache", slog.String("error", err.Error()))
		_ = client.Close()
		return nil
	}

	log.Info("redis cache connected")
	return &Cache{client: client, logger: log}
}

// Get returns the cached value for key, or (nil, false) on a miss, an
// expired entry, or any backend failure.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("cache get failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return nil, false
	}
	return val, true
}

// Set stores value under key with the given TTL, best-effort.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.logger.Debug("cache set failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// Delete invalidates key, best-effort.
func (c *Cache) Delete(ctx context.Context, key string) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.Debug("cache delete failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// Available reports whether the backend currently answers a ping. Used by
// the health endpoint; a Redis that dies after startup reports false here
// while the rest of the service keeps running.
func (c *Cache) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return c.client.Ping(ctx).Err() == nil
}

// Close tears down the handle at process exit.
func (c *Cache) Close() error {
	return c.client.Close()
}
