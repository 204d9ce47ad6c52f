package taskqueue

import (
	"context"
	"log/slog"
)

// Limiter gates every dispatch. Wait blocks until the next task may start.
// *ratelimiter.Bucket satisfies it.
type Limiter interface {
	Wait(ctx context.Context, key string) error
}

// Option configures a Queue.
type Option func(*options)

type options struct {
	logger     *slog.Logger
	limiter    Limiter
	limiterKey string
}

// WithLogger sets the logger used for attempt and run events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithLimiter waits on l under key before every dispatch.
func WithLimiter(l Limiter, key string) Option {
	return func(o *options) {
		if l != nil {
			o.limiter = l
			o.limiterKey = key
		}
	}
}
