package store

import (
	"context" // Context for Redis operations
	"errors"  // Sentinel comparison
	"fmt"     // Error wrapping

	"github.com/redis/go-redis/v9" // Redis client
)

// RedisKV stores values as plain Redis strings without expiry
type RedisKV struct {
	rdb *redis.Client
}

// NewRedisKV wraps an existing Redis client
func NewRedisKV(rdb *redis.Client) *RedisKV {
	return &RedisKV{rdb: rdb}
}

// Get retrieves a value from Redis
func (r *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.rdb.Get(ctx, key).Result() // Get value from Redis
	if errors.Is(err, redis.Nil) {
		return "", false, nil // Key does not exist
	} else if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err) // Other Redis error
	}
	return val, true, nil
}

// Set writes a value to Redis with no TTL
func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	if err := r.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete deletes a key from Redis
func (r *RedisKV) Delete(ctx context.Context, key string) error {
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
