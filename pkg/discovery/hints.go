package discovery

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// CooldownHints is a best-effort durable mirror of population timestamps. It is never authoritative,
// an in-memory entry always wins over a hint.
type CooldownHints interface {
	Get(ctx context.Context, key string) (time.Time, bool, error)
	Set(ctx context.Context, key string, ts time.Time) error
}

// NoopHints keeps nothing
type NoopHints struct{}

// Get always reports a missing hint
func (NoopHints) Get(context.Context, string) (time.Time, bool, error) { return time.Time{}, false, nil }

// Set does nothing
func (NoopHints) Set(context.Context, string, time.Time) error { return nil }

// RedisHints stores cooldown hints in redis as unix milliseconds, expiring after ttl
type RedisHints struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisHints makes redis backed hints. Keys are prefixed with prefix,
// and expire after ttl, kept forever if ttl is zero.
func NewRedisHints(client redis.UniversalClient, prefix string, ttl time.Duration) *RedisHints {
	return &RedisHints{client: client, prefix: prefix, ttl: ttl}
}

// Get returns the stored timestamp for key
func (h *RedisHints) Get(ctx context.Context, key string) (time.Time, bool, error) {
	val, err := h.client.Get(ctx, h.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("get hint %s: %w", key, err)
	}
	ms, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse hint %s: %w", key, err)
	}
	return time.UnixMilli(ms), true, nil
}

// Set stores the timestamp for key
func (h *RedisHints) Set(ctx context.Context, key string, ts time.Time) error {
	if err := h.client.Set(ctx, h.prefix+key, strconv.FormatInt(ts.UnixMilli(), 10), h.ttl).Err(); err != nil {
		return fmt.Errorf("set hint %s: %w", key, err)
	}
	return nil
}
