package session

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestRedisBackend(t *testing.T, profile string) *RedisBackend {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisBackend(client, profile)
}

func TestRedisBackendRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := New(newTestRedisBackend(t, "east"))

	user := User{ID: 2, Username: "jo", FirstName: "Jo", LastName: "Ops"}
	require.NoError(t, store.SetToken(ctx, "a.b.c"))
	require.NoError(t, store.SetUser(ctx, user))

	token, ok := store.Token(ctx)
	require.True(t, ok)
	require.Equal(t, "a.b.c", token)
	require.Equal(t, &user, store.User(ctx))

	require.NoError(t, store.Clear(ctx))
	_, ok = store.Token(ctx)
	require.False(t, ok)
	require.Nil(t, store.User(ctx))

	// Idempotent on an already-empty session.
	require.NoError(t, store.Clear(ctx))
}

func TestRedisBackendProfileIsolation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	east := New(NewRedisBackend(client, "east"))
	west := New(NewRedisBackend(client, "west"))

	require.NoError(t, east.SetToken(ctx, "east-token"))

	_, ok := west.Token(ctx)
	require.False(t, ok)

	token, ok := east.Token(ctx)
	require.True(t, ok)
	require.Equal(t, "east-token", token)
}
