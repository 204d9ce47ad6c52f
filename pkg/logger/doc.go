// Package logger is a thin layer over log/slog: a functional-options factory,
// attribute helpers with stable key names, and a handler decorator that pulls
// attributes out of context.Context on every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("LOG_ENV"), "probe"),
//	    logger.WithContextExtractors(taskqueue.LogExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "task finished",
//	    logger.TaskIndex(i),
//	    logger.Attempt(n),
//	    logger.Duration(time.Since(start)),
//	)
//
// # Options
//
//   - WithDevelopment / WithProduction / WithEnvironment: per-environment defaults.
//   - WithFormat / WithTextFormatter / WithJSONFormatter: output format.
//   - WithLevel / WithLevelName: minimum level.
//   - WithOutput: destination writer.
//   - WithAttr: static attributes.
//   - WithContextExtractors / WithContextValue: attributes taken from context.
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
