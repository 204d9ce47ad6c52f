package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/asynckit/pkg/taskqueue"
)

// maxDrain caps how much of a response body is read before closing it.
const maxDrain = 1 << 20

// Observation is a successful probe.
type Observation struct {
	Name    string        `json:"name"`
	URL     string        `json:"url"`
	Status  int           `json:"status"`
	Latency time.Duration `json:"latency_ns"`
}

func probeTask(client *http.Client, log *slog.Logger, t Target) taskqueue.Task[Observation] {
	return func(ctx context.Context) (Observation, error) {
		req, err := http.NewRequestWithContext(ctx, t.Method, t.URL, nil)
		if err != nil {
			return Observation{}, err
		}

		start := time.Now()
		resp, err := client.Do(req)
		if err != nil {
			return Observation{}, err
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrain))

		latency := time.Since(start)
		log.DebugContext(ctx, "probe response",
			slog.String("target", t.Name),
			slog.Int("status", resp.StatusCode),
			slog.Duration("latency", latency))

		if !t.accepts(resp.StatusCode) {
			return Observation{}, fmt.Errorf("%w: %s returned %d", errUnexpectedStatus, t.Name, resp.StatusCode)
		}

		return Observation{
			Name:    t.Name,
			URL:     t.URL,
			Status:  resp.StatusCode,
			Latency: latency,
		}, nil
	}
}

func buildTasks(client *http.Client, log *slog.Logger, job *Job) []taskqueue.Task[Observation] {
	tasks := make([]taskqueue.Task[Observation], len(job.Targets))
	for i, t := range job.Targets {
		tasks[i] = probeTask(client, log, t)
	}
	return tasks
}
