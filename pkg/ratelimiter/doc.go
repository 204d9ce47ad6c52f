// Package ratelimiter provides a token bucket rate limiter with pluggable storage.
//
// A Bucket allows bursts up to Capacity and refills RefillRate tokens every
// RefillInterval. Denied requests do not consume tokens; they report a negative
// Remaining equal to the shortfall and a RetryAfter hint.
//
// Two stores are provided. MemoryStore keeps buckets in process memory and
// removes idle ones periodically. RedisStore keeps each bucket in a Redis hash
// updated by a Lua script, so several processes can share one limit.
//
// # Usage
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.PerSecond(5))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Block until a token is available.
//	if err := limiter.Wait(ctx, "probe"); err != nil {
//	    return err
//	}
//
// Bucket.Wait matches taskqueue.Limiter, so a bucket can pace dispatch of a
// task queue:
//
//	q, _ := taskqueue.New(tasks, taskqueue.WithLimiter(limiter, "probe"))
//
// # Errors
//
// ErrInvalidConfig and ErrInvalidTokenCount report caller mistakes.
// RedisStore wraps Redis failures with ErrStoreUnavailable.
package ratelimiter
