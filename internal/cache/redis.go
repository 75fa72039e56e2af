package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache is a JSON value cache backed by Redis. A Cache built without a Redis
// URL, or whose server was unreachable at startup, is disabled: Get always
// misses and writes are dropped.
type Cache struct {
	client  *redis.Client
	enabled bool
}

// New sets up a Redis connection if redisURL is provided.
func New(redisURL string) *Cache {
	if redisURL == "" {
		zap.L().Info("Redis URL not provided, caching disabled")
		return &Cache{}
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		zap.L().Warn("failed to parse Redis URL, caching disabled", zap.Error(err))
		return &Cache{}
	}

	client := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		zap.L().Warn("failed to connect to Redis, caching disabled", zap.Error(err))
		_ = client.Close()
		return &Cache{}
	}

	zap.L().Info("Redis cache initialized", zap.String("addr", opt.Addr))
	return &Cache{client: client, enabled: true}
}

func (c *Cache) Enabled() bool {
	return c.enabled
}

func (c *Cache) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Set stores a value in cache with expiration
func (c *Cache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if !c.enabled {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, expiration).Err()
}

// Get retrieves a value from cache. A miss is reported as redis.Nil.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	if !c.enabled {
		return redis.Nil
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// Delete removes a key from cache
func (c *Cache) Delete(ctx context.Context, key string) error {
	if !c.enabled {
		return nil
	}

	return c.client.Del(ctx, key).Err()
}
