package async_test

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrymomot/asynckit/pkg/async"
)

// BenchmarkGo measures the cost of starting and awaiting 1000 futures.
func BenchmarkGo(b *testing.B) {
	ctx := context.Background()
	const numTasks = 1000

	for b.Loop() {
		futures := make([]*async.Future[int], numTasks)
		for i := range numTasks {
			futures[i] = async.Go(ctx, func(context.Context) (int, error) {
				return i * 2, nil
			})
		}
		if _, err := async.WaitAll(futures...); err != nil {
			b.Fatalf("Unexpected error: %v", err)
		}
	}
}

// BenchmarkSettleAll measures settling futures that sleep briefly under a timeout.
func BenchmarkSettleAll(b *testing.B) {
	ctx := context.Background()
	const numTasks = 200

	for b.Loop() {
		futures := make([]*async.Future[int], numTasks)
		for i := range numTasks {
			futures[i] = async.Go(ctx, func(context.Context) (int, error) {
				time.Sleep(time.Millisecond)
				return i, nil
			})
		}
		for _, s := range async.SettleAll(ctx, futures, nil, time.Second) {
			if s.Err != nil {
				b.Fatalf("Unexpected error: %v", s.Err)
			}
		}
	}
}
