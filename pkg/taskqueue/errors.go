package taskqueue

import "errors"

var (
	// ErrInvalidConfig is returned by Resolve before any dispatch when the run configuration is out of range.
	ErrInvalidConfig = errors.New("taskqueue: invalid config")

	// ErrNilTask is returned by New when the task list contains a nil task.
	ErrNilTask = errors.New("taskqueue: nil task")

	// ErrAttemptTimeout marks an attempt that did not finish within the configured timeout.
	ErrAttemptTimeout = errors.New("taskqueue: attempt timed out")
)
