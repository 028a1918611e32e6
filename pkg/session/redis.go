package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisBackend stores the session in Redis, for shared jump hosts where
// several operator shells should see the same signed-in state. Keys are
// namespaced per profile so two agencies on one box don't collide.
type RedisBackend struct {
	client  *redis.Client
	profile string
}

// NewRedisBackend wraps an existing Redis client. profile may be empty,
// in which case "default" is used.
func NewRedisBackend(client *redis.Client, profile string) *RedisBackend {
	if profile == "" {
		profile = "default"
	}
	return &RedisBackend{client: client, profile: profile}
}

func (b *RedisBackend) key(key string) string {
	return fmt.Sprintf("benchctl:%s:%s", b.profile, key)
}

func (b *RedisBackend) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := b.client.Get(ctx, b.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read session key %q: %w", key, err)
	}
	return value, true, nil
}

func (b *RedisBackend) Set(ctx context.Context, key, value string) error {
	// No TTL: the token carries its own expiry and the store enforces it.
	if err := b.client.Set(ctx, b.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write session key %q: %w", key, err)
	}
	return nil
}

func (b *RedisBackend) Delete(ctx context.Context, keys ...string) error {
	namespaced := make([]string, len(keys))
	for i, key := range keys {
		namespaced[i] = b.key(key)
	}
	if err := b.client.Del(ctx, namespaced...).Err(); err != nil {
		return fmt.Errorf("failed to clear session keys: %w", err)
	}
	return nil
}
