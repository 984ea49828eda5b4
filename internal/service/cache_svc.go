package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/maituanhoang070/ytcreatorapp/internal/model"
)

// TrendCacheTTL bounds how long a serialized trend list is served from Redis
// before falling through to the store.
const TrendCacheTTL = 15 * time.Minute

// CacheService provides a Redis read-through layer for trend lookups.
type CacheService struct {
	rdb    *redis.Client
	hits   prometheus.Counter
	misses prometheus.Counter
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client (cache
// operations become no-ops).
func NewCacheService(redisURL string, hits, misses prometheus.Counter) *CacheService {
	svc := &CacheService{hits: hits, misses: misses}

	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return svc
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return svc
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return svc
	}

	log.Println("redis: connected, caching enabled")
	svc.rdb = rdb
	return svc
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetTrends retrieves a cached trend list for a category. Returns nil with no
// error if not cached or the cache is disabled.
func (c *CacheService) GetTrends(ctx context.Context, category string) ([]model.Trend, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, trendKey(category)).Bytes()
	if err == redis.Nil {
		if c.misses != nil {
			c.misses.Inc()
		}
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var trends []model.Trend
	if err := json.Unmarshal(data, &trends); err != nil {
		return nil, err
	}
	if c.hits != nil {
		c.hits.Inc()
	}
	return trends, nil
}

// SetTrends stores a trend list in cache.
func (c *CacheService) SetTrends(ctx context.Context, category string, trends []model.Trend) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(trends)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, trendKey(category), b, TrendCacheTTL).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func trendKey(category string) string {
	return fmt.Sprintf("trends:%s", category)
}
