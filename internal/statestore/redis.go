package statestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "simplewallet:state:"

// RedisStore keeps state entries as plain Redis strings.
type RedisStore struct {
	client *redis.Client
}

// NewRedis constructs a Redis-backed store.
func NewRedis(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get returns the value stored at address.
func (s *RedisStore) Get(ctx context.Context, address string) (string, bool, error) {
	value, err := s.client.Get(ctx, redisKeyPrefix+address).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", address, err)
	}
	return value, true, nil
}

// Set stores value at address without expiry.
func (s *RedisStore) Set(ctx context.Context, address, value string) error {
	if err := s.client.Set(ctx, redisKeyPrefix+address, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", address, err)
	}
	return nil
}

// Ping verifies the connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
