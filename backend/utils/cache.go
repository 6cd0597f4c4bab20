package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps an optional Redis client. A nil *Cache is valid and means
// caching is disabled.
type Cache struct {
	Client *redis.Client
}

// NewCache connects to Redis at the given URL. An empty URL disables caching.
func NewCache(ctx context.Context, url string) (*Cache, error) {
	if url == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid cache URL: %w", err)
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging cache: %w", err)
	}

	return &Cache{Client: client}, nil
}

// Get returns the cached value for key, or "" when disabled or missing.
func (c *Cache) Get(ctx context.Context, key string) string {
	if c == nil || c.Client == nil {
		return ""
	}
	val, err := c.Client.Get(ctx, key).Result()
	if err != nil {
		return ""
	}
	return val
}

// Set stores value under key with a TTL. No-op when disabled.
func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if c == nil || c.Client == nil {
		return
	}
	c.Client.Set(ctx, key, value, ttl)
}

// Delete removes a key. No-op when disabled.
func (c *Cache) Delete(ctx context.Context, key string) {
	if c == nil || c.Client == nil {
		return
	}
	c.Client.Del(ctx, key)
}

// Close shuts down the cache client.
func (c *Cache) Close() error {
	if c == nil || c.Client == nil {
		return nil
	}
	return c.Client.Close()
}
