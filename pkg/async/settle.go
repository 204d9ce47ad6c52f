package async

import (
	"context"
	"time"
)

// Settled is the outcome of a future that never fails from the caller's point of view.
// On failure Value holds the fallback and Err the reason.
type Settled[U any] struct {
	Value U
	Err   error
}

// OK reports whether the future completed without error.
func (s Settled[U]) OK() bool {
	return s.Err == nil
}

// Settle waits for f and converts any failure into the fallback value.
// A positive timeout bounds the wait and yields ErrTimeout when it elapses;
// zero waits until the future completes or ctx is done.
func Settle[U any](ctx context.Context, f *Future[U], fallback U, timeout time.Duration) Settled[U] {
	v, err := f.await(ctx, timeout)
	if err != nil {
		return Settled[U]{Value: fallback, Err: err}
	}
	return Settled[U]{Value: v}
}

// SettleAll settles every future concurrently and returns outcomes in input order.
// fallbacks[i] applies to futures[i]; a missing entry falls back to the zero value.
func SettleAll[U any](ctx context.Context, futures []*Future[U], fallbacks []U, timeout time.Duration) []Settled[U] {
	out := make([]Settled[U], len(futures))
	done := make(chan struct{}, len(futures))

	for i, f := range futures {
		var fallback U
		if i < len(fallbacks) {
			fallback = fallbacks[i]
		}
		go func() {
			out[i] = Settle(ctx, f, fallback, timeout)
			done <- struct{}{}
		}()
	}

	for range futures {
		<-done
	}
	return out
}
