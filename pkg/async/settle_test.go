package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrymomot/asynckit/pkg/async"
)

func TestSettle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("success keeps value", func(t *testing.T) {
		t.Parallel()
		f := async.Go(ctx, func(context.Context) (string, error) { return "data", nil })
		res := async.Settle(ctx, f, "fallback", 0)
		if !res.OK() || res.Value != "data" {
			t.Errorf("Expected data without error, got %+v", res)
		}
	})

	t.Run("failure uses fallback", func(t *testing.T) {
		t.Parallel()
		failure := errors.New("nope")
		f := async.Go(ctx, func(context.Context) (string, error) { return "partial", failure })
		res := async.Settle(ctx, f, "fallback", 0)
		if res.Value != "fallback" || !errors.Is(res.Err, failure) {
			t.Errorf("Expected fallback with error, got %+v", res)
		}
	})

	t.Run("timeout uses fallback", func(t *testing.T) {
		t.Parallel()
		f := async.Go(ctx, func(context.Context) (string, error) {
			time.Sleep(200 * time.Millisecond)
			return "late", nil
		})
		res := async.Settle(ctx, f, "fallback", 10*time.Millisecond)
		if res.Value != "fallback" || !errors.Is(res.Err, async.ErrTimeout) {
			t.Errorf("Expected fallback with ErrTimeout, got %+v", res)
		}
	})
}

func TestSettleAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	failure := errors.New("bad")

	futures := []*async.Future[int]{
		async.Go(ctx, func(context.Context) (int, error) {
			time.Sleep(20 * time.Millisecond)
			return 1, nil
		}),
		async.Go(ctx, func(context.Context) (int, error) { return 0, failure }),
		async.Go(ctx, func(context.Context) (int, error) { return 0, failure }),
	}

	out := async.SettleAll(ctx, futures, []int{-1, -2}, time.Second)
	if len(out) != 3 {
		t.Fatalf("Expected 3 outcomes, got %d", len(out))
	}
	if out[0].Value != 1 || out[0].Err != nil {
		t.Errorf("Expected first outcome to succeed, got %+v", out[0])
	}
	if out[1].Value != -2 || !errors.Is(out[1].Err, failure) {
		t.Errorf("Expected second outcome to use its fallback, got %+v", out[1])
	}
	if out[2].Value != 0 || !errors.Is(out[2].Err, failure) {
		t.Errorf("Expected third outcome to fall back to zero value, got %+v", out[2])
	}
}
