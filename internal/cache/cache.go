// Package cache implements a Redis key/value cache.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	redis "github.com/go-redis/redis/v8"
)

type RedisCache struct {
	conn   *redis.Client
	prefix string
	ttl    time.Duration
}

// Option configures a RedisCache.
type Option func(*RedisCache)

// WithPrefix namespaces every key with prefix.
func WithPrefix(prefix string) Option {
	return func(rc *RedisCache) { rc.prefix = prefix }
}

// WithTTL expires keys after ttl. Zero means keys never expire.
func WithTTL(ttl time.Duration) Option {
	return func(rc *RedisCache) { rc.ttl = ttl }
}

func NewRedisCache(ctx context.Context, addr string, opts ...Option) (*RedisCache, error) {
	opt, err := redis.ParseURL(addr)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}
	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	rc := &RedisCache{conn: client}
	for _, o := range opts {
		o(rc)
	}
	return rc, nil
}

func (rc *RedisCache) key(k string) string {
	return rc.prefix + k
}

// Set stores a value in the cache.
func (rc *RedisCache) Set(ctx context.Context, key string, value string) error {
	return rc.conn.Set(ctx, rc.key(key), value, rc.ttl).Err()
}

// Get retrieves a value from the cache. The bool reports whether the key was present.
func (rc *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := rc.conn.Get(ctx, rc.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Delete removes keys from the cache. Missing keys are ignored.
func (rc *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = rc.key(k)
	}
	return rc.conn.Del(ctx, full...).Err()
}

// Close releases the underlying connection pool.
func (rc *RedisCache) Close() error {
	return rc.conn.Close()
}
