// Package cache provides the Redis client and JSON cache-aside helpers.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// New connects to Redis at addr. On failure it returns nil and the
// application continues without caching or rate limiting.
func New(addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis connection failed, continuing without cache", "error", err)
		return nil
	}
	slog.Info("redis connected")
	return client
}

// Close shuts the client down, tolerating a nil client.
func Close(client *redis.Client) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		slog.Warn("error closing redis", "error", err)
	}
}
