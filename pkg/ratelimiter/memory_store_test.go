package ratelimiter_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/asynckit/pkg/ratelimiter"
)

func TestMemoryStore_ConcurrentConsume(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	defer store.Close()

	cfg := ratelimiter.Config{Capacity: 100, RefillRate: 1, RefillInterval: time.Hour}

	const goroutines = 50
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		granted int
	)
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 4 {
				remaining, _, err := store.ConsumeTokens(ctx, "shared", 1, cfg)
				assert.NoError(t, err)
				if remaining >= 0 {
					mu.Lock()
					granted++
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, cfg.Capacity, granted)

	remaining, _, err := store.ConsumeTokens(ctx, "shared", 0, cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)
}

func TestMemoryStore_ResetAndLen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	defer store.Close()

	cfg := ratelimiter.PerSecond(3)
	for _, key := range []string{"a", "b", "c"} {
		_, _, err := store.ConsumeTokens(ctx, key, 1, cfg)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, store.Len())

	require.NoError(t, store.Reset(ctx, "b"))
	assert.Equal(t, 2, store.Len())
}

func TestMemoryStore_CloseIsIdempotent(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(10 * time.Millisecond))
	assert.NotPanics(t, func() {
		store.Close()
		store.Close()
	})
}
