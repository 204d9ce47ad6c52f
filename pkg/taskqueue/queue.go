package taskqueue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/dmitrymomot/asynckit/pkg/logger"
)

// Task is a unit of work. ctx carries the attempt deadline and the run ID.
type Task[T any] func(ctx context.Context) (T, error)

// Queue holds a fixed list of tasks that Resolve runs under a concurrency cap.
// A Queue may be resolved any number of times, concurrently too; runs share nothing but the task list.
type Queue[T any] struct {
	tasks      []Task[T]
	logger     *slog.Logger
	limiter    Limiter
	limiterKey string
}

// New creates a queue over a copy of tasks. An empty list is valid.
func New[T any](tasks []Task[T], opts ...Option) (*Queue[T], error) {
	for i, task := range tasks {
		if task == nil {
			return nil, fmt.Errorf("%w at index %d", ErrNilTask, i)
		}
	}

	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Queue[T]{
		tasks:      append([]Task[T](nil), tasks...),
		logger:     o.logger.With(logger.Component("taskqueue")),
		limiter:    o.limiter,
		limiterKey: o.limiterKey,
	}, nil
}

// Len returns the number of tasks in the queue.
func (q *Queue[T]) Len() int {
	return len(q.tasks)
}

// outcome is the terminal event a task sends to the collector.
type outcome[T any] struct {
	value T
	err   *ItemError
}

// Resolve runs every task and returns once each one has succeeded or used up its attempts.
//
// Tasks are dispatched in list order, at most Concurrency at a time. A task
// failure never stops the run; it ends up in RunResult.Errors. The only error
// returned without a result is ErrInvalidConfig. If ctx is cancelled, tasks not
// yet started are recorded as failed with the context error, and the complete
// result is returned together with ctx.Err().
func (q *Queue[T]) Resolve(ctx context.Context, opts ...RunOption) (*RunResult[T], error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	ctx = withRunID(ctx, runID)
	log := q.logger.With(logger.RunID(runID))
	start := time.Now()

	events := make(chan outcome[T])
	collected := make(chan *RunResult[T], 1)
	go func() {
		collected <- collect(events, len(q.tasks))
	}()

	sem := semaphore.NewWeighted(int64(cfg.Concurrency))
	drained := make(chan struct{})
	var wg sync.WaitGroup

	next := 0
	for next < len(q.tasks) {
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}

		index, task := next, q.tasks[next]
		next++

		if err := q.wait(ctx); err != nil {
			sem.Release(1)
			if ctx.Err() != nil {
				next--
				break
			}
			log.WarnContext(ctx, "dispatch limiter failed", logger.TaskIndex(index), logger.Error(err))
			events <- outcome[T]{err: &ItemError{Index: index, Err: err}}
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			events <- q.runTask(ctx, log, cfg, index, task)
			pace(ctx, cfg.Interval, drained)
		}()
	}

	// Whatever was not dispatched can only be left behind by cancellation.
	for i := next; i < len(q.tasks); i++ {
		events <- outcome[T]{err: &ItemError{Index: i, Err: ctx.Err()}}
	}
	close(drained)

	wg.Wait()
	close(events)

	res := <-collected
	res.RunID = runID
	res.Duration = time.Since(start)

	log.InfoContext(ctx, "queue resolved",
		slog.Int("total", len(q.tasks)),
		slog.Int("succeeded", res.Succeeded()),
		slog.Int("failed", res.Failed()),
		logger.Duration(res.Duration))

	return res, ctx.Err()
}

func (q *Queue[T]) wait(ctx context.Context) error {
	if q.limiter == nil {
		return nil
	}
	return q.limiter.Wait(ctx, q.limiterKey)
}

// collect is the single owner of the run's accumulators.
func collect[T any](events <-chan outcome[T], n int) *RunResult[T] {
	res := &RunResult[T]{
		Results: make([]T, 0, n),
		Errors:  make([]error, 0),
	}
	for ev := range events {
		if ev.err != nil {
			res.Errors = append(res.Errors, ev.err)
			continue
		}
		res.Results = append(res.Results, ev.value)
	}
	return res
}

// pace holds a freed slot for d. It ends early once nothing is left to
// dispatch or the run is cancelled.
func pace(ctx context.Context, d time.Duration, drained <-chan struct{}) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-drained:
	case <-ctx.Done():
	}
}
