package async

import (
	"context"
	"time"
)

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await waits for the asynchronous function to complete and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout waits for the asynchronous function to complete with a timeout.
// If the timeout elapses first, the zero value and ErrTimeout are returned.
// The computation itself keeps running; its outcome stays available via Await.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	return f.await(context.Background(), timeout)
}

// AwaitContext waits for completion or until ctx is done, whichever happens first.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	return f.await(ctx, 0)
}

// Done returns a channel that is closed once the computation has finished.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// IsComplete checks if the asynchronous function is complete without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// await races completion against ctx and, when timeout > 0, a timer.
func (f *Future[U]) await(ctx context.Context, timeout time.Duration) (U, error) {
	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	var zero U
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		return zero, ctx.Err()
	case <-expired:
		return zero, ErrTimeout
	}
}

// Async executes a function asynchronously and returns a Future.
// The function accepts a context.Context and a parameter of any type T, and returns (U, error).
// A panic inside fn completes the future with a *PanicError; fn exiting its
// goroutine via runtime.Goexit completes it with ErrGoexit.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		returned := false
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				var zero U
				f.result, f.err = zero, newPanicError(r)
				return
			}
			// runtime.Goexit unwinds without a panic and without fn returning.
			if !returned {
				var zero U
				f.result, f.err = zero, ErrGoexit
			}
		}()

		// Pre-canceled context never reaches fn
		if err := ctx.Err(); err != nil {
			f.err = err
			returned = true
			return
		}

		f.result, f.err = fn(ctx, param)
		returned = true
	}()

	return f
}

// Go is Async for functions that take no parameter besides the context.
func Go[U any](ctx context.Context, fn func(context.Context) (U, error)) *Future[U] {
	return Async(ctx, struct{}{}, func(ctx context.Context, _ struct{}) (U, error) {
		return fn(ctx)
	})
}

// WaitAll waits for all futures to complete and returns a slice of their results and an error
// if any of the futures returned an error. Futures are awaited in order and the first error stops the wait.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))

	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil {
			return results, err
		}
	}

	return results, nil
}

// WaitAny waits for any of the futures to complete and returns the index of the completed future,
// its result, and any error it might have returned.
func WaitAny[U any](futures ...*Future[U]) (int, U, error) {
	if len(futures) == 0 {
		var zero U
		return -1, zero, ErrNoFutures
	}

	type outcome struct {
		index  int
		result U
		err    error
	}

	// Buffered so late finishers never block after the first one is taken.
	done := make(chan outcome, len(futures))
	for i, future := range futures {
		go func(index int, f *Future[U]) {
			result, err := f.Await()
			done <- outcome{index, result, err}
		}(i, future)
	}

	res := <-done
	return res.index, res.result, res.err
}

// Sleep pauses for d or until ctx is done. It returns ctx.Err() when interrupted.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
