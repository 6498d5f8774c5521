package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "golf:dashboard:"

// RedisDashboardCache keys entries by a per-user version number. Invalidate
// increments the version, orphaning every entry written under the old one;
// orphans expire with their TTL.
type RedisDashboardCache struct {
	rdb    goredis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisDashboardCache(rdb goredis.Cmdable, ttl time.Duration, logger *slog.Logger) *RedisDashboardCache {
	return &RedisDashboardCache{rdb: rdb, ttl: ttl, logger: logger}
}

// NewRedisClient connects and pings Redis.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", addr, err)
	}
	return rdb, nil
}

func versionKey(userID uuid.UUID) string {
	return keyPrefix + "version:" + userID.String()
}

func entryKey(userID uuid.UUID, version int64, year int, month time.Month) string {
	return fmt.Sprintf("%s%s:v%d:%04d-%02d", keyPrefix, userID, version, year, int(month))
}

func (c *RedisDashboardCache) version(ctx context.Context, userID uuid.UUID) (int64, error) {
	v, err := c.rdb.Get(ctx, versionKey(userID)).Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	return v, err
}

func (c *RedisDashboardCache) Get(ctx context.Context, userID uuid.UUID, year int, month time.Month, dst any) (int64, bool, error) {
	v, err := c.version(ctx, userID)
	if err != nil {
		return 0, false, fmt.Errorf("reading dashboard cache version: %w", err)
	}

	raw, err := c.rdb.Get(ctx, entryKey(userID, v, year, month)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return v, false, nil
	}
	if err != nil {
		return v, false, fmt.Errorf("reading dashboard cache: %w", err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		// a stale layout from an older release; treat as a miss
		c.logger.Warn("Discarding undecodable dashboard cache entry", "error", err, "user_id", userID.String())
		return v, false, nil
	}
	return v, true, nil
}

// Set writes under the version the caller read before computing value, not
// the current one. A value computed before an Invalidate lands on an orphaned key.
func (c *RedisDashboardCache) Set(ctx context.Context, userID uuid.UUID, version int64, year int, month time.Month, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding dashboard: %w", err)
	}
	if err := c.rdb.Set(ctx, entryKey(userID, version, year, month), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("writing dashboard cache: %w", err)
	}
	return nil
}

func (c *RedisDashboardCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.rdb.Incr(ctx, versionKey(userID)).Err(); err != nil {
		return fmt.Errorf("bumping dashboard cache version: %w", err)
	}
	return nil
}
