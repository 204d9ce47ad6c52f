package taskqueue

import (
	"fmt"
	"time"
)

// Defaults applied by DefaultConfig.
const (
	DefaultConcurrency = 3
	// DefaultRetries is zero: a task gets a single attempt unless retries are requested.
	DefaultRetries  = 0
	DefaultInterval = time.Second
	DefaultTimeout  = 5 * time.Second
)

// Config controls a single Resolve run.
type Config struct {
	// Concurrency is the maximum number of tasks in flight at once.
	Concurrency int `env:"TASKQUEUE_CONCURRENCY" envDefault:"3"`
	// Retries is the number of extra attempts after the first one fails.
	Retries int `env:"TASKQUEUE_RETRIES" envDefault:"0"`
	// Interval is the wait between a failed attempt and its retry, and the
	// pacing delay before a freed slot takes the next task.
	Interval time.Duration `env:"TASKQUEUE_INTERVAL" envDefault:"1s"`
	// Timeout bounds every single attempt.
	Timeout time.Duration `env:"TASKQUEUE_TIMEOUT" envDefault:"5s"`
}

// DefaultConfig returns the configuration used when no RunOption overrides it.
func DefaultConfig() Config {
	return Config{
		Concurrency: DefaultConcurrency,
		Retries:     DefaultRetries,
		Interval:    DefaultInterval,
		Timeout:     DefaultTimeout,
	}
}

// MaxAttempts is the attempt budget per task.
func (c Config) MaxAttempts() int {
	return c.Retries + 1
}

// Validate reports the first out-of-range field wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Concurrency <= 0:
		return fmt.Errorf("%w: concurrency must be positive, got %d", ErrInvalidConfig, c.Concurrency)
	case c.Retries < 0:
		return fmt.Errorf("%w: retries must not be negative, got %d", ErrInvalidConfig, c.Retries)
	case c.Interval < 0:
		return fmt.Errorf("%w: interval must not be negative, got %v", ErrInvalidConfig, c.Interval)
	case c.Timeout <= 0:
		return fmt.Errorf("%w: timeout must be positive, got %v", ErrInvalidConfig, c.Timeout)
	}
	return nil
}

// RunOption adjusts the configuration of one Resolve call.
type RunOption func(*Config)

// WithConfig replaces the whole configuration, for example with one loaded from the environment.
func WithConfig(cfg Config) RunOption {
	return func(c *Config) { *c = cfg }
}

// WithConcurrency sets how many tasks may run at once.
func WithConcurrency(n int) RunOption {
	return func(c *Config) { c.Concurrency = n }
}

// WithRetries sets how many extra attempts a failed task gets.
func WithRetries(n int) RunOption {
	return func(c *Config) { c.Retries = n }
}

// WithInterval sets the wait between attempts and the pacing delay after a slot frees.
func WithInterval(d time.Duration) RunOption {
	return func(c *Config) { c.Interval = d }
}

// WithTimeout sets the deadline of a single attempt.
func WithTimeout(d time.Duration) RunOption {
	return func(c *Config) { c.Timeout = d }
}
