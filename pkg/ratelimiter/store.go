package ratelimiter

import (
	"context"
	"time"
)

// Store defines the interface for rate limit storage backends.
type Store interface {
	// ConsumeTokens takes tokens from the bucket at key if enough are available.
	// It returns what is left and when the next refill happens. When the request
	// cannot be served nothing is taken and remaining is negative: the shortfall.
	// Zero tokens only refreshes and reports the state.
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)

	// Reset clears the rate limit state for the given key.
	Reset(ctx context.Context, key string) error
}
