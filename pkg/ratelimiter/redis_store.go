package ratelimiter

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// consumeScript mirrors MemoryStore.ConsumeTokens on a Redis hash so that
// every process sharing the key draws from one bucket.
var consumeScript = redis.NewScript(`
local key = KEYS[1]
local capacity = tonumber(ARGV[1])
local rate = tonumber(ARGV[2])
local interval = tonumber(ARGV[3])
local requested = tonumber(ARGV[4])
local now = tonumber(ARGV[5])
local ttl = tonumber(ARGV[6])

local state = redis.call('HMGET', key, 'tokens', 'last_refill')
local tokens = tonumber(state[1])
local last = tonumber(state[2])
if tokens == nil or last == nil then
  tokens = capacity
  last = now
end

local intervals = math.min(math.floor((now - last) / interval), math.floor(capacity / rate) + 1)
if intervals > 0 then
  tokens = math.min(tokens + intervals * rate, capacity)
  last = now
end

local remaining
if requested <= tokens then
  tokens = tokens - requested
  remaining = tokens
else
  remaining = tokens - requested
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill', last)
if ttl > 0 then
  redis.call('PEXPIRE', key, ttl)
end
return {remaining, last}
`)

// RedisStore implements Store on Redis for limits shared across processes.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithKeyPrefix namespaces every bucket key. Default "ratelimit:".
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(rs *RedisStore) { rs.prefix = prefix }
}

// WithIdleTTL sets how long an untouched bucket is kept. Zero keeps it forever.
func WithIdleTTL(ttl time.Duration) RedisStoreOption {
	return func(rs *RedisStore) {
		if ttl >= 0 {
			rs.ttl = ttl
		}
	}
}

// NewRedisStore creates a store backed by client.
func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) *RedisStore {
	rs := &RedisStore{
		client: client,
		prefix: "ratelimit:",
		ttl:    staleAfter,
	}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

// ConsumeTokens runs the refill-and-take step atomically on the Redis hash for key.
func (rs *RedisStore) ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (int, time.Time, error) {
	intervalMs := max(config.RefillInterval.Milliseconds(), 1)

	res, err := consumeScript.Run(ctx, rs.client, []string{rs.prefix + key},
		config.Capacity,
		config.RefillRate,
		intervalMs,
		tokens,
		time.Now().UnixMilli(),
		rs.ttl.Milliseconds(),
	).Int64Slice()
	if err != nil {
		return 0, time.Time{}, errors.Join(ErrStoreUnavailable, err)
	}
	if len(res) != 2 {
		return 0, time.Time{}, ErrStoreUnavailable
	}

	lastRefill := time.UnixMilli(res[1])
	return int(res[0]), lastRefill.Add(time.Duration(intervalMs) * time.Millisecond), nil
}

func (rs *RedisStore) Reset(ctx context.Context, key string) error {
	if err := rs.client.Del(ctx, rs.prefix+key).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
