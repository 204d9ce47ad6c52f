package ratelimiter

import "time"

// Result contains the result of a rate limit check.
type Result struct {
	Limit     int       // Maximum tokens (bucket capacity)
	Remaining int       // Tokens remaining; negative when denied
	ResetAt   time.Time // Time when tokens will be refilled
}

// Allowed returns whether the request is allowed based on remaining tokens.
func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long to wait before the next request.
// Returns 0 if the request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(time.Until(r.ResetAt), 0)
}

// Config defines the token bucket configuration.
type Config struct {
	Capacity       int           `env:"RATELIMIT_CAPACITY" envDefault:"10"`         // Maximum tokens the bucket can hold (burst limit)
	RefillRate     int           `env:"RATELIMIT_REFILL_RATE" envDefault:"1"`       // Number of tokens added per refill interval
	RefillInterval time.Duration `env:"RATELIMIT_REFILL_INTERVAL" envDefault:"1s"` // How often tokens are added
}

// PerSecond builds a config that grants rate tokens per second with a burst of one second's worth.
func PerSecond(rate int) Config {
	return Config{
		Capacity:       rate,
		RefillRate:     rate,
		RefillInterval: time.Second,
	}
}
