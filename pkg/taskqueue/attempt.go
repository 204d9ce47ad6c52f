package taskqueue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/dmitrymomot/asynckit/pkg/async"
	"github.com/dmitrymomot/asynckit/pkg/logger"
)

// runTask drives the attempt sequence of one task and returns its terminal outcome.
func (q *Queue[T]) runTask(ctx context.Context, log *slog.Logger, cfg Config, index int, task Task[T]) outcome[T] {
	start := time.Now()
	log = log.With(logger.TaskIndex(index), logger.MaxAttempts(cfg.MaxAttempts()))

	var (
		value    T
		attempts int
		lastErr  error
	)

	err := retry.Do(ctx, constantBackoff(cfg.Retries, cfg.Interval), func(ctx context.Context) error {
		attempts++
		log.DebugContext(ctx, "attempt started", logger.Attempt(attempts))

		v, err := attempt(ctx, cfg.Timeout, task)
		if err != nil {
			lastErr = err
			log.WarnContext(ctx, "attempt failed", logger.Attempt(attempts), logger.Error(err))
			return retry.RetryableError(err)
		}

		value = v
		return nil
	})

	duration := time.Since(start)
	if err != nil {
		// Cancellation during a backoff wait hides the attempt error; keep both.
		if lastErr != nil && !errors.Is(err, lastErr) {
			err = errors.Join(lastErr, err)
		}
		log.ErrorContext(ctx, "task failed",
			logger.RetryCount(max(attempts-1, 0)),
			logger.Duration(duration),
			logger.Error(err))
		return outcome[T]{err: &ItemError{Index: index, Attempts: attempts, Err: err}}
	}

	log.InfoContext(ctx, "task completed",
		logger.RetryCount(attempts-1),
		logger.Duration(duration))
	return outcome[T]{value: value}
}

// attempt runs task once and races it against timeout. A task that ignores
// its context keeps running after losing the race; its outcome is discarded.
func attempt[T any](ctx context.Context, timeout time.Duration, task Task[T]) (T, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	f := async.Go(attemptCtx, func(ctx context.Context) (T, error) {
		return task(ctx)
	})

	var zero T
	select {
	case <-f.Done():
		v, err := f.Await()
		if err != nil && expired(ctx, attemptCtx) {
			return zero, timeoutError(timeout, err)
		}
		return v, err
	case <-attemptCtx.Done():
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		return zero, timeoutError(timeout, nil)
	}
}

// expired reports whether the attempt deadline, not the run, ended attemptCtx.
func expired(parent, attemptCtx context.Context) bool {
	return parent.Err() == nil && errors.Is(attemptCtx.Err(), context.DeadlineExceeded)
}

func timeoutError(timeout time.Duration, cause error) error {
	if cause == nil || errors.Is(cause, context.DeadlineExceeded) {
		return fmt.Errorf("%w after %v", ErrAttemptTimeout, timeout)
	}
	return fmt.Errorf("%w after %v: %w", ErrAttemptTimeout, timeout, cause)
}

// constantBackoff allows retries extra attempts spaced by interval.
// A zero interval retries immediately.
func constantBackoff(retries int, interval time.Duration) retry.Backoff {
	b := retry.BackoffFunc(func() (time.Duration, bool) {
		return interval, false
	})
	return retry.WithMaxRetries(uint64(retries), b)
}
