package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis-backed TTL cache for delegated summary text, keyed by scope
// ("fleet" or a container ID). Scores are cheap to recompute; the cache
// only shields the external text-generation call.
type RedisSummaryCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSummaryCache(client *redis.Client, ttl time.Duration) *RedisSummaryCache {
	return &RedisSummaryCache{Client: client, TTL: ttl}
}

// Get fetches a cached summary. The second return reports a hit.
func (c *RedisSummaryCache) Get(ctx context.Context, scope string) (string, bool, error) {
	if c.Client == nil {
		return "", false, errors.New("summary cache: client is nil")
	}
	if scope == "" {
		return "", false, errors.New("get summary cache: scope must not be empty")
	}

	text, err := c.Client.Get(ctx, "summary:"+scope).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get summary cache scope=%q: %w", scope, err)
	}

	return text, true, nil
}

// Put stores a summary under the cache TTL.
func (c *RedisSummaryCache) Put(ctx context.Context, scope string, text string) error {
	if c.Client == nil {
		return errors.New("summary cache: client is nil")
	}
	if scope == "" {
		return errors.New("put summary cache: scope must not be empty")
	}

	if err := c.Client.Set(ctx, "summary:"+scope, text, c.TTL).Err(); err != nil {
		return fmt.Errorf("put summary cache scope=%q: %w", scope, err)
	}
	return nil
}
