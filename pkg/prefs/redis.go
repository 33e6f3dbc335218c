package prefs

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store backed by a Redis server, for preferences shared across
// processes (e.g. a preference keyed by user ID behind a load balancer).
type Redis struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// RedisOption configures the Redis backend.
type RedisOption func(*Redis)

// WithRedisPrefix sets the key prefix. Default: "prefs:".
func WithRedisPrefix(prefix string) RedisOption {
	return func(r *Redis) {
		r.prefix = prefix
	}
}

// WithRedisTTL sets an expiry on stored preferences.
// Default: no expiry; a language choice should not silently evaporate.
func WithRedisTTL(ttl time.Duration) RedisOption {
	return func(r *Redis) {
		r.ttl = ttl
	}
}

// NewRedis creates a Redis-backed store using an existing client.
func NewRedis(client redis.UniversalClient, opts ...RedisOption) *Redis {
	if client == nil {
		panic("prefs: redis client is not provided")
	}
	r := &Redis{
		client: client,
		prefix: "prefs:",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get returns the stored value for key, or ErrNotFound.
func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, r.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", err
	}
	return v, nil
}

// Set stores value under key.
func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.prefix+key, value, r.ttl).Err(); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	return nil
}
