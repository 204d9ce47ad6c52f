// Package taskqueue runs a fixed list of tasks under a concurrency cap, with a
// per-attempt timeout, a retry budget with constant backoff, and aggregation
// of every outcome into a single RunResult.
//
// # Scheduling
//
// Resolve dispatches tasks in list order. Admission goes through a weighted
// semaphore sized to Config.Concurrency, so no more than that many tasks are
// ever in flight. Each task gets up to Retries+1 attempts; attempts are
// separated by Interval. Every attempt is raced against Timeout and loses to
// it with an error matching ErrAttemptTimeout. After a task reaches its
// terminal state its slot is held for another Interval before the next task
// may take it, which paces dispatch independently of retries.
//
// Outcomes flow over a channel to a single collector goroutine, which owns the
// result slices. Results and Errors are therefore in completion order.
//
// # Cancellation
//
// The attempt context is cancelled when the attempt times out, so tasks that
// honor ctx stop early. Tasks that ignore it keep running in the background
// after the timeout and their late result is discarded; they hold whatever
// resources they use until they return.
//
// Cancelling the context passed to Resolve stops dispatch. Tasks not started
// yet are recorded as failed with zero attempts, and Resolve returns the
// complete result along with the context error.
//
// # Usage
//
//	q, err := taskqueue.New([]taskqueue.Task[string]{fetchA, fetchB, fetchC})
//	if err != nil {
//	    return err
//	}
//
//	res, err := q.Resolve(ctx,
//	    taskqueue.WithConcurrency(2),
//	    taskqueue.WithRetries(1),
//	    taskqueue.WithInterval(100*time.Millisecond),
//	    taskqueue.WithTimeout(time.Second),
//	)
//	if err != nil {
//	    return err
//	}
//	for _, err := range res.Errors {
//	    var ie *taskqueue.ItemError
//	    if errors.As(err, &ie) {
//	        log.Printf("task %d: %v", ie.Index, ie.Err)
//	    }
//	}
//
// # Configuration
//
// Config carries env tags, so it can be loaded with pkg/config and handed to
// Resolve through WithConfig. Defaults: Concurrency 3, Retries 0, Interval 1s,
// Timeout 5s. Out-of-range values make Resolve fail with ErrInvalidConfig
// before anything runs.
package taskqueue
