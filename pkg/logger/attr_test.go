package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/asynckit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("run", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "run", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestRunID(t *testing.T) {
	attr := logger.RunID("abc")
	require.Equal(t, "run_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())

	assert.True(t, logger.RunID("").Equal(slog.Attr{}))
}

func TestTaskAttrs(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want int64
	}{
		{"task index", logger.TaskIndex(3), "task_index", 3},
		{"attempt", logger.Attempt(2), "attempt", 2},
		{"max attempts", logger.MaxAttempts(4), "max_attempts", 4},
		{"retry count", logger.RetryCount(1), "retry_count", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Int64())
		})
	}
}

func TestDuration(t *testing.T) {
	attr := logger.Duration(1500 * time.Millisecond)
	require.Equal(t, "duration", attr.Key)
	assert.Equal(t, 1500*time.Millisecond, attr.Value.Duration())
}
