package configuration

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResultsCache is a short-TTL Redis cache for mapped Formsite result sets.
// The webhook reconciler invalidates it on every successful mutation, which
// keeps the read-after-write guarantee: a webhook's effect is visible to
// the very next dashboard read.
type ResultsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// InitRedis connects to Redis with a few retries, tolerating transient
// container start-up ordering. Returns an error after the last attempt.
func InitRedis(cfg *Config) (*ResultsCache, error) {
	const maxRetries = 5

	var client *redis.Client
	var err error
	for i := 0; i < maxRetries; i++ {
		client = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		if _, err = client.Ping(context.Background()).Result(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connecting to redis after %d attempts: %w", maxRetries, err)
	}

	return &ResultsCache{
		client: client,
		ttl:    time.Duration(cfg.CacheTTLSecs) * time.Second,
	}, nil
}

func (c *ResultsCache) Get(ctx context.Context, key string) (string, bool) {
	v, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return v, true
}

func (c *ResultsCache) Set(ctx context.Context, key, value string) {
	_ = c.client.Set(ctx, key, value, c.ttl).Err()
}

func (c *ResultsCache) Delete(ctx context.Context, keys ...string) {
	_ = c.client.Del(ctx, keys...).Err()
}
