// Command probe checks a list of HTTP endpoints through a bounded task queue
// and prints a JSON report. It exits with status 1 when any target failed.
//
//	probe -job job.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/asynckit/pkg/config"
	"github.com/dmitrymomot/asynckit/pkg/logger"
	"github.com/dmitrymomot/asynckit/pkg/ratelimiter"
	"github.com/dmitrymomot/asynckit/pkg/redis"
	"github.com/dmitrymomot/asynckit/pkg/taskqueue"
)

const limiterKey = "probe"

type appConfig struct {
	LogEnv        string `env:"LOG_ENV" envDefault:"development"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	RatePerSecond int    `env:"PROBE_RATE_PER_SECOND" envDefault:"0"`
	RedisEnabled  bool   `env:"PROBE_REDIS_ENABLED" envDefault:"false"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("probe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	jobPath := fs.String("job", "job.yaml", "path to the job file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	log := logger.New(
		logger.WithEnvironment(cfg.LogEnv, "probe"),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithOutput(stderr),
		logger.WithContextExtractors(taskqueue.LogExtractor()),
	)

	job, err := loadJob(*jobPath)
	if err != nil {
		log.ErrorContext(ctx, "failed to load job", logger.Error(err))
		return 2
	}

	var queueCfg taskqueue.Config
	if err := config.Load(&queueCfg); err != nil {
		log.ErrorContext(ctx, "failed to load queue config", logger.Error(err))
		return 2
	}

	limiter, cleanup, err := newLimiter(ctx, cfg, log)
	if err != nil {
		log.ErrorContext(ctx, "failed to set up rate limiter", logger.Error(err))
		return 2
	}
	defer cleanup()

	report, err := execute(ctx, job, job.Queue.apply(queueCfg), limiter, log)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.ErrorContext(ctx, "probe run failed", logger.Error(err))
		return 2
	}

	if werr := report.write(stdout); werr != nil {
		log.ErrorContext(ctx, "failed to write report", logger.Error(werr))
		return 2
	}

	if report.Failed > 0 {
		return 1
	}
	return 0
}

// execute runs every target of job and builds the report.
// A cancelled ctx still yields a complete report alongside the ctx error.
func execute(ctx context.Context, job *Job, cfg taskqueue.Config, limiter taskqueue.Limiter, log *slog.Logger) (Report, error) {
	opts := []taskqueue.Option{taskqueue.WithLogger(log)}
	if limiter != nil {
		opts = append(opts, taskqueue.WithLimiter(limiter, limiterKey))
	}

	q, err := taskqueue.New(buildTasks(http.DefaultClient, log, job), opts...)
	if err != nil {
		return Report{}, err
	}

	res, err := q.Resolve(ctx, taskqueue.WithConfig(cfg))
	if res == nil {
		return Report{}, err
	}
	return newReport(job, res), err
}

// newLimiter returns nil when pacing is disabled.
func newLimiter(ctx context.Context, cfg appConfig, log *slog.Logger) (taskqueue.Limiter, func(), error) {
	noop := func() {}
	if cfg.RatePerSecond <= 0 {
		return nil, noop, nil
	}

	if !cfg.RedisEnabled {
		store := ratelimiter.NewMemoryStore()
		bucket, err := ratelimiter.NewBucket(store, ratelimiter.PerSecond(cfg.RatePerSecond))
		if err != nil {
			store.Close()
			return nil, noop, err
		}
		return bucket, store.Close, nil
	}

	var redisCfg redis.Config
	if err := config.Load(&redisCfg); err != nil {
		return nil, noop, err
	}

	client, err := redis.Connect(ctx, redisCfg)
	if err != nil {
		return nil, noop, err
	}
	closeClient := func() {
		if err := client.Close(); err != nil {
			log.Warn("failed to close redis client", logger.Error(err))
		}
	}

	if err := redis.Healthcheck(client)(ctx); err != nil {
		closeClient()
		return nil, noop, err
	}

	bucket, err := ratelimiter.NewBucket(ratelimiter.NewRedisStore(client), ratelimiter.PerSecond(cfg.RatePerSecond))
	if err != nil {
		closeClient()
		return nil, noop, err
	}

	log.Info("using shared rate limiter", slog.String("backend", "redis"), slog.Int("rate", cfg.RatePerSecond))
	return bucket, closeClient, nil
}
