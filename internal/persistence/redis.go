package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/devhive-labs/portfolio-service/internal/config"
)

// Redis wraps the go-redis client.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to Redis using the provided configuration.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Redis{Client: client}
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}

// VisitDeduper suppresses repeated page views from the same source within a
// TTL window using SETNX markers. A zero TTL disables suppression.
type VisitDeduper struct {
	client *redis.Client
	ttl    time.Duration
}

// NewVisitDeduper builds a deduper on top of the shared Redis client.
func NewVisitDeduper(r *Redis, ttl time.Duration) *VisitDeduper {
	if r == nil {
		return &VisitDeduper{ttl: ttl}
	}
	return &VisitDeduper{client: r.Client, ttl: ttl}
}

// Seen marks the owner/ip/page tuple and reports whether it was already
// marked inside the window. Redis errors report unseen so the write path
// never blocks on the cache.
func (d *VisitDeduper) Seen(ctx context.Context, ownerID, ip, page string) (bool, error) {
	if d == nil || d.client == nil || d.ttl <= 0 {
		return false, nil
	}
	key := fmt.Sprintf("visit:dedup:%s:%s:%s", ownerID, ip, page)
	set, err := d.client.SetNX(ctx, key, 1, d.ttl).Result()
	if err != nil {
		return false, err
	}
	return !set, nil
}
