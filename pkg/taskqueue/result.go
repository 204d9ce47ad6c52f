package taskqueue

import (
	"errors"
	"fmt"
	"time"
)

// RunResult is the aggregated outcome of one Resolve call.
// Results and Errors are in completion order, not submission order.
type RunResult[T any] struct {
	RunID    string
	Results  []T
	Errors   []error // each entry is an *ItemError; empty, never nil, when nothing failed
	Duration time.Duration
}

// Succeeded is the number of tasks that produced a value.
func (r *RunResult[T]) Succeeded() int {
	return len(r.Results)
}

// Failed is the number of tasks that exhausted their attempts.
func (r *RunResult[T]) Failed() int {
	return len(r.Errors)
}

// HasErrors reports whether any task failed.
func (r *RunResult[T]) HasErrors() bool {
	return len(r.Errors) > 0
}

// Err joins all item errors, or returns nil when none failed.
func (r *RunResult[T]) Err() error {
	return errors.Join(r.Errors...)
}

// ItemError is the terminal failure of one task.
type ItemError struct {
	// Index is the task's position in the list given to New.
	Index int
	// Attempts made before giving up. Zero when the task was never started.
	Attempts int
	Err      error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("task %d failed after %d attempt(s): %v", e.Index, e.Attempts, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}
