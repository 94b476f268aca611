package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitStore_Allow_WithinLimit(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewRateLimitStore(client)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		result, err := store.Allow(ctx, "invoice-detector:events", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, int64(5), result.Limit)
		assert.Equal(t, int64(4-i), result.Remaining)
	}
}

func TestRateLimitStore_Allow_OverLimit(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewRateLimitStore(client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.Allow(ctx, "scheduler:reconcile", 3, time.Minute)
		require.NoError(t, err)
	}

	result, err := store.Allow(ctx, "scheduler:reconcile", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, int64(0), result.Remaining)
}

func TestRateLimitStore_Allow_IndependentKeys(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewRateLimitStore(client)
	ctx := context.Background()

	_, err := store.Allow(ctx, "invoice-detector:events", 1, time.Minute)
	require.NoError(t, err)

	result, err := store.Allow(ctx, "dashboard:events", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, result.Allowed, "counters are scoped per key")
}

func TestRateLimitStore_Allow_WindowResets(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewRateLimitStore(client)
	ctx := context.Background()

	_, err := store.Allow(ctx, "scheduler:reconcile", 1, time.Minute)
	require.NoError(t, err)

	result, err := store.Allow(ctx, "scheduler:reconcile", 1, time.Minute)
	require.NoError(t, err)
	assert.False(t, result.Allowed)

	// Expire the window key; the next increment starts a fresh counter.
	s.FastForward(61 * time.Second)

	result, err = store.Allow(ctx, "scheduler:reconcile", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, result.Allowed, "new window starts a fresh counter")
}
