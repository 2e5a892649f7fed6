package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/exertrack/exertrack/internal/model"
)

// Cache key prefixes and TTLs.
const (
	logKeyPrefix      = "log:"
	negCacheKeySuffix = ":neg"

	// DefaultLogTTL is the TTL for cached log views.
	DefaultLogTTL = 5 * time.Minute

	// DefaultNegativeTTL is the TTL for negative cache entries.
	DefaultNegativeTTL = time.Minute
)

// Common cache errors.
var (
	ErrCacheMiss = errors.New("cache miss")
)

// CachedLog is a user's full exercise log as stored in Redis.
// It is the unfiltered view; query parameters are applied after retrieval.
type CachedLog struct {
	User    model.User       `json:"user"`
	Entries []model.Exercise `json:"entries"`
}

// GetUserLog retrieves a user's cached log view.
// Returns ErrCacheMiss if not found.
func (c *Cache) GetUserLog(ctx context.Context, userID string) (*CachedLog, error) {
	key := logKey(userID)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var cached CachedLog
	if err := json.Unmarshal(payload, &cached); err != nil {
		// A corrupt entry is treated as a miss; it will be overwritten on backfill.
		c.client.Del(ctx, key)
		return nil, ErrCacheMiss
	}

	return &cached, nil
}

// SetUserLog stores a user's log view in cache.
func (c *Cache) SetUserLog(ctx context.Context, userID string, log *CachedLog) error {
	key := logKey(userID)

	payload, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("failed to encode log view: %w", err)
	}

	pipe := c.client.Pipeline()
	pipe.Set(ctx, key, payload, c.logTTL)
	// Remove negative cache if exists
	pipe.Del(ctx, key+negCacheKeySuffix)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache log view: %w", err)
	}

	return nil
}

// InvalidateUserLog removes a user's log view from cache.
// Called after every append so readers never see a stale log.
func (c *Cache) InvalidateUserLog(ctx context.Context, userID string) error {
	key := logKey(userID)

	if err := c.client.Del(ctx, key, key+negCacheKeySuffix).Err(); err != nil {
		return fmt.Errorf("failed to invalidate log view: %w", err)
	}

	return nil
}

// IsNegativelyCached checks if a user ID is in negative cache.
func (c *Cache) IsNegativelyCached(ctx context.Context, userID string) (bool, error) {
	key := logKey(userID) + negCacheKeySuffix

	exists, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check negative cache: %w", err)
	}

	return exists > 0, nil
}

// SetNegativeCache marks a user ID as not found.
func (c *Cache) SetNegativeCache(ctx context.Context, userID string) error {
	key := logKey(userID) + negCacheKeySuffix

	if err := c.client.SetEx(ctx, key, "", c.negativeTTL).Err(); err != nil {
		return fmt.Errorf("failed to set negative cache: %w", err)
	}

	return nil
}

// logKey builds the cache key for a user's log view.
func logKey(userID string) string {
	return logKeyPrefix + userID
}
