package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"nocslol/api/dto"
	"nocslol/pkg/redis"
	"time"
)

// Default key and TTL for the overlay stats payloads.
// Short TTL: the payload is cheap to serve but expensive to rebuild.
const (
	overlayStatsCacheDuration = 2 * time.Minute
	overlayStatsKey           = "overlay:stats:%s:%s:%s"
)

// StatsCache is the public interface for the cached overlay payloads.
type StatsCache interface {
	GetOverlayStats(ctx context.Context, puuid string, region string, timeFilter string) (*dto.OverlayStats, error)
	SetOverlayStats(ctx context.Context, puuid string, region string, timeFilter string, stats *dto.OverlayStats) error
}

// Create a redis cache client.
type statsCache struct {
	redis *redis.RedisClient
}

// NewStatsCache creates a new instance of the stats redis client.
func NewStatsCache(redisClient *redis.RedisClient) StatsCache {
	return &statsCache{
		redis: redisClient,
	}
}

// GetOverlayStats retrieves a cached overlay payload, if present.
func (sc *statsCache) GetOverlayStats(ctx context.Context, puuid string, region string, timeFilter string) (*dto.OverlayStats, error) {
	key := fmt.Sprintf(overlayStatsKey, puuid, region, timeFilter)

	cached, err := sc.redis.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var stats dto.OverlayStats
	if err := json.Unmarshal([]byte(cached), &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

// SetOverlayStats saves a given overlay payload in cache.
func (sc *statsCache) SetOverlayStats(ctx context.Context, puuid string, region string, timeFilter string, stats *dto.OverlayStats) error {
	j, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	key := fmt.Sprintf(overlayStatsKey, puuid, region, timeFilter)
	return sc.redis.Set(ctx, key, string(j), overlayStatsCacheDuration)
}
