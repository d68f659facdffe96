package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"pipe-sizing-service/internal/config"
	"pipe-sizing-service/internal/core/domain"
	ports "pipe-sizing-service/internal/core/ports/output"
)

const (
	keyPrefix  = "pipesizing:field:" // pipesizing:field:{domain}:{w}x{h}@{dpi}
	defaultTTL = 24 * time.Hour
)

type fieldCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFieldCache creates a Redis-backed field image cache
func NewFieldCache(cfg *config.CacheConfig) ports.FieldCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return NewFieldCacheWithClient(client, cfg.TTL)
}

// NewFieldCacheWithClient wraps an existing client
func NewFieldCacheWithClient(client *redis.Client, ttl time.Duration) ports.FieldCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &fieldCache{client: client, ttl: ttl}
}

func (c *fieldCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached field: %w", err)
	}
	return data, nil
}

func (c *fieldCache) Set(ctx context.Context, key string, data []byte) error {
	if err := c.client.Set(ctx, keyPrefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache field: %w", err)
	}
	return nil
}

func (c *fieldCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
