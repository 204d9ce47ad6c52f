package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/asynckit/pkg/taskqueue"
)

func TestParseJob(t *testing.T) {
	t.Parallel()

	job, err := parseJob([]byte(`
queue:
  concurrency: 5
  interval: 250ms
targets:
  - name: api
    url: https://api.example.com/health
    expect_status: 204
  - url: http://www.example.com/
    method: HEAD
`))
	require.NoError(t, err)
	require.Len(t, job.Targets, 2)

	assert.Equal(t, "api", job.Targets[0].Name)
	assert.Equal(t, "GET", job.Targets[0].Method)
	assert.Equal(t, 204, job.Targets[0].ExpectStatus)

	assert.Equal(t, "www.example.com", job.Targets[1].Name, "name falls back to host")
	assert.Equal(t, "HEAD", job.Targets[1].Method)

	cfg := job.Queue.apply(taskqueue.DefaultConfig())
	assert.Equal(t, 5, cfg.Concurrency)
	assert.Equal(t, 250*time.Millisecond, cfg.Interval)
	assert.Equal(t, taskqueue.DefaultRetries, cfg.Retries, "unset overrides keep the base value")
	assert.Equal(t, taskqueue.DefaultTimeout, cfg.Timeout)
}

func TestParseJob_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{"malformed yaml", "targets: [\n"},
		{"no targets", "queue:\n  retries: 1\n"},
		{"missing url", "targets:\n  - name: x\n"},
		{"relative url", "targets:\n  - url: /health\n"},
		{"bad duration", "queue:\n  timeout: soon\ntargets:\n  - url: http://a.example\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := parseJob([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadJob(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte("targets:\n  - url: http://a.example\n"), 0o600))

	job, err := loadJob(path)
	require.NoError(t, err)
	assert.Len(t, job.Targets, 1)

	_, err = loadJob(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestTargetAccepts(t *testing.T) {
	t.Parallel()

	anyOK := Target{}
	assert.True(t, anyOK.accepts(200))
	assert.True(t, anyOK.accepts(299))
	assert.False(t, anyOK.accepts(301))
	assert.False(t, anyOK.accepts(500))

	exact := Target{ExpectStatus: 404}
	assert.True(t, exact.accepts(404))
	assert.False(t, exact.accepts(200))
}
