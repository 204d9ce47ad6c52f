package main

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/dmitrymomot/asynckit/pkg/taskqueue"
)

// Report is what the probe prints.
type Report struct {
	RunID      string        `json:"run_id"`
	DurationMs int64         `json:"duration_ms"`
	Succeeded  int           `json:"succeeded"`
	Failed     int           `json:"failed"`
	Results    []Observation `json:"results"`
	Failures   []Failure     `json:"failures"`
}

// Failure describes a target that never passed.
type Failure struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Attempts int    `json:"attempts"`
	Error    string `json:"error"`
}

func newReport(job *Job, res *taskqueue.RunResult[Observation]) Report {
	r := Report{
		RunID:      res.RunID,
		DurationMs: res.Duration.Milliseconds(),
		Succeeded:  res.Succeeded(),
		Failed:     res.Failed(),
		Results:    res.Results,
		Failures:   make([]Failure, 0, len(res.Errors)),
	}

	for _, err := range res.Errors {
		f := Failure{Index: -1, Error: err.Error()}
		var ie *taskqueue.ItemError
		if errors.As(err, &ie) {
			f.Index = ie.Index
			f.Attempts = ie.Attempts
			f.Error = ie.Err.Error()
			if ie.Index >= 0 && ie.Index < len(job.Targets) {
				f.Name = job.Targets[ie.Index].Name
				f.URL = job.Targets[ie.Index].URL
			}
		}
		r.Failures = append(r.Failures, f)
	}

	return r
}

func (r Report) write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
