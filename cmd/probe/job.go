package main

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/asynckit/pkg/taskqueue"
)

var (
	errInvalidJob       = errors.New("invalid job")
	errUnexpectedStatus = errors.New("unexpected status")
)

// Job is the probe job file.
type Job struct {
	Queue   QueueOverrides `yaml:"queue"`
	Targets []Target       `yaml:"targets"`
}

// QueueOverrides replaces env-provided queue settings for this job only.
type QueueOverrides struct {
	Concurrency *int           `yaml:"concurrency"`
	Retries     *int           `yaml:"retries"`
	Interval    *time.Duration `yaml:"interval"`
	Timeout     *time.Duration `yaml:"timeout"`
}

// Target is one endpoint to probe.
type Target struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	// Method defaults to GET.
	Method string `yaml:"method"`
	// ExpectStatus is the required status code; zero accepts any 2xx.
	ExpectStatus int `yaml:"expect_status"`
}

func (t Target) accepts(status int) bool {
	if t.ExpectStatus != 0 {
		return status == t.ExpectStatus
	}
	return status >= 200 && status < 300
}

func loadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job file: %w", err)
	}
	return parseJob(data)
}

func parseJob(data []byte) (*Job, error) {
	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, errors.Join(errInvalidJob, err)
	}

	if len(job.Targets) == 0 {
		return nil, fmt.Errorf("%w: no targets", errInvalidJob)
	}

	for i := range job.Targets {
		t := &job.Targets[i]
		u, err := url.Parse(t.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("%w: target %d has invalid url %q", errInvalidJob, i, t.URL)
		}
		if t.Method == "" {
			t.Method = http.MethodGet
		}
		if t.Name == "" {
			t.Name = u.Host
		}
	}

	return &job, nil
}

// apply layers the job's overrides on top of cfg.
func (o QueueOverrides) apply(cfg taskqueue.Config) taskqueue.Config {
	if o.Concurrency != nil {
		cfg.Concurrency = *o.Concurrency
	}
	if o.Retries != nil {
		cfg.Retries = *o.Retries
	}
	if o.Interval != nil {
		cfg.Interval = *o.Interval
	}
	if o.Timeout != nil {
		cfg.Timeout = *o.Timeout
	}
	return cfg
}
