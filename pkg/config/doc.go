// Package config loads application configuration from environment variables
// into tagged Go structs.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for parsing, and caches each parsed configuration
// type so it is parsed once per process.
//
// # Usage
//
//	type ProbeConfig struct {
//	    LogEnv string  `env:"LOG_ENV" envDefault:"development"`
//	    Rate   float64 `env:"PROBE_RATE_PER_SECOND" envDefault:"0"`
//	}
//
//	if err := config.LoadEnv("./deploy/.env"); err != nil {
//	    log.Fatal(err)
//	}
//
//	var cfg ProbeConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// The default .env in the working directory is read automatically before the
// first Load. Variables already present in the environment are never
// overridden by file values.
//
// # Error Handling
//
//   - ErrParsingConfig: env vars could not be parsed into the struct.
//   - ErrLoadingEnvFile: an explicitly requested .env file could not be read.
//   - ErrNilPointer: nil pointer passed to Load or MustLoad.
//
// # Testing
//
// ResetCache clears the cache so a later Load re-reads the environment.
package config
