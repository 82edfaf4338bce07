package cache

import (
	"container-tracking-service/internal/domain"
	"container-tracking-service/internal/ports"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis-backed TTL cache for weather lookups, keyed by position
// rounded to three decimal places (roughly 100m, well under the
// resolution of the forecast grid).
type RedisWeatherCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisWeatherCache(client *redis.Client, ttl time.Duration) *RedisWeatherCache {
	return &RedisWeatherCache{Client: client, TTL: ttl}
}

func weatherKey(at domain.Coordinates) string {
	return fmt.Sprintf("weather:%.3f:%.3f", at.Lat, at.Lon)
}

// Get fetches a cached report. The second return reports a hit.
func (c *RedisWeatherCache) Get(ctx context.Context, at domain.Coordinates) (ports.WeatherReport, bool, error) {
	if c.Client == nil {
		return ports.WeatherReport{}, false, errors.New("weather cache: client is nil")
	}

	payload, err := c.Client.Get(ctx, weatherKey(at)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.WeatherReport{}, false, nil
	}
	if err != nil {
		return ports.WeatherReport{}, false, fmt.Errorf("get weather cache: %w", err)
	}

	var report ports.WeatherReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return ports.WeatherReport{}, false, fmt.Errorf("get weather cache: decode payload: %w", err)
	}

	return report, true, nil
}

// Put stores a report under the cache TTL.
func (c *RedisWeatherCache) Put(ctx context.Context, at domain.Coordinates, report ports.WeatherReport) error {
	if c.Client == nil {
		return errors.New("weather cache: client is nil")
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("put weather cache: encode payload: %w", err)
	}

	if err := c.Client.Set(ctx, weatherKey(at), payload, c.TTL).Err(); err != nil {
		return fmt.Errorf("put weather cache: %w", err)
	}
	return nil
}
