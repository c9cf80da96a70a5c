package prefs

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	// Use v8 to match the redis client used across our services.
	"github.com/go-redis/redis/v8"
)

const defaultRedisKey = "VOICEFX_PREFERENCES"

// RedisStore keeps preferences as fields of one Redis hash, so several
// capture hosts can share a selection.
type RedisStore struct {
	rdb *redis.Client
	key string
}

// OpenRedis connects to addr and verifies the connection.
func OpenRedis(ctx context.Context, addr, password string, db int, key string) (*RedisStore, error) {
	if addr == "" {
		addr = "localhost:6379"
	}
	if key == "" {
		key = defaultRedisKey
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis %v: %w", addr, err)
	}

	return NewRedisStore(rdb, key), nil
}

// NewRedisStore wraps an existing client.
func NewRedisStore(rdb *redis.Client, key string) *RedisStore {
	if key == "" {
		key = defaultRedisKey
	}
	return &RedisStore{rdb: rdb, key: key}
}

// GetInt returns the value stored under field key, or def. A field that is
// not an integer also yields def.
func (r *RedisStore) GetInt(ctx context.Context, key string, def int) (int, error) {
	s, err := r.rdb.HGet(ctx, r.key, key).Result()
	if errors.Is(err, redis.Nil) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("hget %v %v: %w", r.key, key, err)
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return def, nil
	}
	return v, nil
}

// SetInt stores value under field key.
func (r *RedisStore) SetInt(ctx context.Context, key string, value int) error {
	if err := r.rdb.HSet(ctx, r.key, key, value).Err(); err != nil {
		return fmt.Errorf("hset %v %v=%v: %w", r.key, key, value, err)
	}
	return nil
}

// Close closes the client.
func (r *RedisStore) Close() error {
	return r.rdb.Close()
}
