// Package async provides small generic helpers for running computations in their own
// goroutine and waiting for the outcome.
//
// The central type is Future, the eventual result of an asynchronous operation. Async
// (or Go, for functions without a parameter) starts the supplied function and returns a
// *Future immediately. The caller waits with Await, bounds the wait with
// AwaitWithTimeout or AwaitContext, selects on Done, or polls IsComplete.
//
// WaitAll and WaitAny coordinate several futures. Settle and SettleAll never fail:
// they swap a failed or timed-out outcome for a caller supplied fallback and keep the
// reason next to it.
//
// A timed-out wait does not stop the computation. The function keeps running and its
// outcome is simply not observed by that wait; pass a context the function honors if it
// must stop.
//
// # Usage
//
//	ctx := context.Background()
//	f := async.Go(ctx, func(ctx context.Context) (string, error) {
//	    return fetch(ctx)
//	})
//
//	res := async.Settle(ctx, f, "n/a", 2*time.Second)
//	if !res.OK() {
//	    log.Printf("fetch failed: %v", res.Err)
//	}
//	fmt.Println(res.Value)
//
// # Error Handling
//
// Waits return the function's own error, ErrTimeout when a timeout elapses, or the
// context error. A panic inside the function is recovered and reported as *PanicError,
// which matches ErrPanic with errors.Is.
package async
