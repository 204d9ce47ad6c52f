// Package redis connects to Redis through github.com/redis/go-redis/v9.
//
// Connect parses the connection URL and pings the server, retrying according
// to Config. Healthcheck returns a probe function for readiness checks.
// Config carries env tags for pkg/config.
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
// Errors are joined with the sentinels in this package (ErrRedisNotReady,
// ErrFailedToParseRedisConnString, ...) and can be matched with errors.Is.
package redis
