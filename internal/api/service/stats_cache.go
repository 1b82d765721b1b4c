package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"aniview/internal/api/dto"

	"github.com/redis/go-redis/v9"
)

// StatsCache keeps per-anime rating aggregates in Redis so the stats endpoint
// does not re-aggregate on every hit. A nil receiver or client degrades to
// cache misses, so the service works without Redis.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatsCache(redisURL, password string, ttl time.Duration) (*StatsCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &StatsCache{client: rdb, ttl: ttl}, nil
}

func statsKey(animeID string) string {
	return "reviews:stats:" + animeID
}

func (c *StatsCache) Get(ctx context.Context, animeID string) (*dto.ReviewStatsResponse, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, statsKey(animeID)).Bytes()
	if err != nil {
		return nil, false
	}

	var stats dto.ReviewStatsResponse
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

func (c *StatsCache) Set(ctx context.Context, animeID string, stats *dto.ReviewStatsResponse) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	// Best effort; a failed write just means the next read re-aggregates
	c.client.Set(ctx, statsKey(animeID), raw, c.ttl)
}

func (c *StatsCache) Invalidate(ctx context.Context, animeID string) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, statsKey(animeID))
}
