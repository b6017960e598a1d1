package cache

import (
	"context"
	"service-area-api/internal/domain"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T, ttl time.Duration) (*RedisCoverageCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisCoverageCache(client, ttl), mr
}

func TestRedisCoverageCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "coverage:902:0"); err != nil || ok {
		t.Fatalf("Get on empty cache = (ok=%v, err=%v), want miss", ok, err)
	}

	nearest := domain.CenterDistance{
		Center:        domain.ServiceCenter{CenterID: 1, Name: "Los Angeles Shop", ZipCode: "90012", Location: domain.Coordinates{Lat: 34.05, Lon: -118.25}, RadiusMiles: 50},
		DistanceMiles: 0,
		InRange:       true,
	}
	want := &domain.CoverageResult{
		Zip:      "90210",
		Prefix:   "902",
		Resolved: true,
		Location: domain.Coordinates{Lat: 34.05, Lon: -118.25},
		Covered:  true,
		Nearest:  &nearest,
		Centers:  []domain.CenterDistance{nearest},
	}

	if err := c.Put(ctx, "coverage:902:0", want); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := c.Get(ctx, "coverage:902:0")
	if err != nil || !ok {
		t.Fatalf("Get = (ok=%v, err=%v), want hit", ok, err)
	}
	if got.Prefix != "902" || !got.Covered || got.Nearest == nil || got.Nearest.Center.Name != "Los Angeles Shop" {
		t.Fatalf("Get = %+v, want %+v", got, want)
	}
	if len(got.Centers) != 1 || got.Centers[0].Center.Location != nearest.Center.Location {
		t.Fatalf("centers = %+v", got.Centers)
	}
}

func TestRedisCoverageCacheExpires(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	if err := c.Put(ctx, "coverage:100:0", &domain.CoverageResult{Zip: "10001", Prefix: "100", Resolved: true}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, ok, err := c.Get(ctx, "coverage:100:0"); err != nil || ok {
		t.Fatalf("Get after TTL = (ok=%v, err=%v), want miss", ok, err)
	}
}

func TestRedisCoverageCacheRejectsBadInput(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	if err := c.Put(ctx, " ", &domain.CoverageResult{}); err == nil {
		t.Fatal("expected error for empty key")
	}
	if err := c.Put(ctx, "coverage:100:0", nil); err == nil {
		t.Fatal("expected error for nil result")
	}
}

func TestRedisCoverageCacheCorruptEntry(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)

	if err := mr.Set("coverage:100:0", "not json"); err != nil {
		t.Fatalf("seed miniredis: %v", err)
	}

	if _, _, err := c.Get(context.Background(), "coverage:100:0"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestRedisCoverageCacheServerDown(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	mr.Close()

	if _, _, err := c.Get(context.Background(), "coverage:100:0"); err == nil {
		t.Fatal("expected error when redis is unavailable")
	}
}
