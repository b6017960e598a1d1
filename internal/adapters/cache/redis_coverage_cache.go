package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"service-area-api/internal/domain"
	"service-area-api/internal/platform/obs"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCoverageCache stores coverage answers in Redis as JSON with a TTL.
// Entries expire so that service center changes show up without a flush.
type RedisCoverageCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCoverageCache(client *redis.Client, ttl time.Duration) *RedisCoverageCache {
	return &RedisCoverageCache{Client: client, TTL: ttl}
}

// Fetch a cached coverage result. A missing key is a miss, not an error.
func (c *RedisCoverageCache) Get(ctx context.Context, key string) (_ *domain.CoverageResult, _ bool, err error) {
	defer obs.Time(ctx, "coverage.cache.Get")(&err)

	if c.Client == nil {
		return nil, false, errors.New("coverage cache: redis client is nil")
	}

	raw, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get coverage cache key=%q: %w", key, err)
	}

	var res domain.CoverageResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, false, fmt.Errorf("get coverage cache key=%q: decode: %w", key, err)
	}

	return &res, true, nil
}

// Store a coverage result under key.
func (c *RedisCoverageCache) Put(ctx context.Context, key string, result *domain.CoverageResult) (err error) {
	defer obs.Time(ctx, "coverage.cache.Put")(&err)

	if c.Client == nil {
		return errors.New("coverage cache: redis client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("insert coverage cache: empty key")
	}
	if result == nil {
		return fmt.Errorf("insert coverage cache key=%q: nil result", key)
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("insert coverage cache key=%q: encode: %w", key, err)
	}

	if err := c.Client.Set(ctx, key, raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert coverage cache key=%q: %w", key, err)
	}

	return nil
}
