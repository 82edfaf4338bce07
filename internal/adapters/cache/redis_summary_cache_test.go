package cache

import (
	"container-tracking-service/internal/domain"
	"container-tracking-service/internal/ports"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func testRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisSummaryCacheRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	c := NewRedisSummaryCache(client, time.Minute)
	ctx := context.Background()

	_, hit, err := c.Get(ctx, "fleet")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hit {
		t.Fatal("unexpected hit on empty cache")
	}

	if err := c.Put(ctx, "fleet", "All shipments nominal."); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	text, hit, err := c.Get(ctx, "fleet")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hit || text != "All shipments nominal." {
		t.Fatalf("got hit=%v text=%q", hit, text)
	}

	// Entries expire after the TTL.
	mr.FastForward(2 * time.Minute)
	_, hit, err = c.Get(ctx, "fleet")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hit {
		t.Fatal("entry survived past TTL")
	}
}

func TestRedisSummaryCacheRejectsEmptyScope(t *testing.T) {
	c := NewRedisSummaryCache(testRedis(t), time.Minute)

	if _, _, err := c.Get(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty scope")
	}
	if err := c.Put(context.Background(), "", "text"); err == nil {
		t.Fatal("expected error for empty scope")
	}
}

func TestRedisWeatherCacheRoundTrip(t *testing.T) {
	c := NewRedisWeatherCache(testRedis(t), time.Minute)
	ctx := context.Background()
	at := domain.Coordinates{Lat: 6.9123, Lon: 77.5456}

	_, hit, err := c.Get(ctx, at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hit {
		t.Fatal("unexpected hit on empty cache")
	}

	report := ports.WeatherReport{
		TemperatureC:         28.4,
		RelativeHumidityPct:  81,
		ApparentTemperatureC: 31.2,
		WindSpeedMS:          7.5,
		WeatherCode:          3,
	}
	if err := c.Put(ctx, at, report); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, hit, err := c.Get(ctx, at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hit || got != report {
		t.Fatalf("got hit=%v report=%+v", hit, got)
	}

	// Positions are keyed at three decimals; a nearby point shares the entry.
	_, hit, err = c.Get(ctx, domain.Coordinates{Lat: 6.91232, Lon: 77.54561})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hit {
		t.Fatal("nearby position missed the cache")
	}
}
