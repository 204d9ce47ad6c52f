package taskqueue

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/asynckit/pkg/logger"
)

type runIDKey struct{}

func withRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the ID of the Resolve run a task is executing under.
func RunIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runIDKey{}).(string)
	return id, ok && id != ""
}

// LogExtractor adds the run ID to records logged by tasks with their context.
func LogExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		id, ok := RunIDFromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return logger.RunID(id), true
	}
}
