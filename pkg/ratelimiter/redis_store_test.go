package ratelimiter_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/asynckit/pkg/ratelimiter"
	"github.com/dmitrymomot/asynckit/pkg/redis"
)

func redisStore(t *testing.T) *ratelimiter.RedisStore {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	client, err := redis.Connect(context.Background(), redis.Config{
		ConnectionURL:  url,
		RetryAttempts:  1,
		RetryInterval:  time.Second,
		ConnectTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return ratelimiter.NewRedisStore(client,
		ratelimiter.WithKeyPrefix("asynckit-test:"+uuid.NewString()+":"),
		ratelimiter.WithIdleTTL(time.Minute),
	)
}

func TestRedisStore_ConsumeTokens(t *testing.T) {
	store := redisStore(t)
	ctx := context.Background()
	cfg := ratelimiter.Config{Capacity: 3, RefillRate: 1, RefillInterval: time.Hour}

	remaining, resetAt, err := store.ConsumeTokens(ctx, "k", 2, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
	assert.True(t, resetAt.After(time.Now()))

	remaining, _, err = store.ConsumeTokens(ctx, "k", 2, cfg)
	require.NoError(t, err)
	assert.Equal(t, -1, remaining)

	remaining, _, err = store.ConsumeTokens(ctx, "k", 0, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining, "denied request must not debit")

	require.NoError(t, store.Reset(ctx, "k"))
	remaining, _, err = store.ConsumeTokens(ctx, "k", 0, cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, remaining)
}

func TestRedisStore_WithBucketWait(t *testing.T) {
	store := redisStore(t)

	b, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: 50 * time.Millisecond})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, b.Wait(ctx, "wait"))

	start := time.Now()
	require.NoError(t, b.Wait(ctx, "wait"))
	assert.GreaterOrEqual(t, time.Since(start), 25*time.Millisecond)
}
