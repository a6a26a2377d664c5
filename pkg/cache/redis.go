package cache

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOption configures the Redis cache.
type RedisOption func(*redisOptions)

type redisOptions struct {
	prefix     string
	defaultTTL time.Duration
}

// WithRedisDefaultTTL sets the expiration used when Set is called with a zero TTL.
// Default: 5 minutes.
func WithRedisDefaultTTL(d time.Duration) RedisOption {
	return func(o *redisOptions) {
		o.defaultTTL = d
	}
}

// WithPrefix namespaces keys as "{prefix}:{key}".
func WithPrefix(prefix string) RedisOption {
	return func(o *redisOptions) {
		o.prefix = prefix
	}
}

// Redis is a cache backed by Redis, shared between server replicas.
type Redis[V any] struct {
	client    redis.UniversalClient
	marshaler Marshaler[V]
	opts      redisOptions
}

// NewRedis creates a Redis-backed cache. A nil Marshaler means JSON.
//
//	client, err := cache.Open(ctx, os.Getenv("REDIS_URL"))
//	sheets := cache.NewRedis[[]byte](client, cache.BytesMarshaler{}, cache.WithPrefix("sheet"))
func NewRedis[V any](client redis.UniversalClient, m Marshaler[V], opts ...RedisOption) *Redis[V] {
	o := redisOptions{defaultTTL: 5 * time.Minute}
	for _, opt := range opts {
		opt(&o)
	}
	if m == nil {
		m = JSONMarshaler[V]{}
	}
	return &Redis[V]{client: client, marshaler: m, opts: o}
}

// Get retrieves a value by key.
func (r *Redis[V]) Get(ctx context.Context, key string) (V, error) {
	var zero V

	data, err := r.client.Get(ctx, r.prefixedKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return zero, ErrNotFound
		}
		return zero, err
	}

	return r.marshaler.Unmarshal(data)
}

// Set stores a value with the given TTL.
func (r *Redis[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	data, err := r.marshaler.Marshal(value)
	if err != nil {
		return err
	}

	if ttl == 0 {
		ttl = r.opts.defaultTTL
	}

	// Redis treats 0 as "no expiration", which is our negative TTL.
	return r.client.Set(ctx, r.prefixedKey(key), data, max(ttl, 0)).Err()
}

// Delete removes a key.
func (r *Redis[V]) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.prefixedKey(key)).Err()
}

// Close is a no-op; the client is closed by whoever opened it.
func (r *Redis[V]) Close() error {
	return nil
}

func (r *Redis[V]) prefixedKey(key string) string {
	if r.opts.prefix == "" {
		return key
	}
	return r.opts.prefix + ":" + key
}

var _ Cache[any] = (*Redis[any])(nil)

// Open connects to Redis and verifies the connection with a ping,
// retrying up to attempts times with a linearly growing pause.
// Supports redis:// and rediss:// URLs.
func Open(ctx context.Context, url string, attempts int, interval time.Duration) (redis.UniversalClient, error) {
	if url == "" {
		return nil, ErrEmptyConnectionURL
	}
	if !strings.HasPrefix(url, "redis://") && !strings.HasPrefix(url, "rediss://") {
		return nil, ErrFailedToParseURL
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseURL, err)
	}

	attempts = max(attempts, 1)
	var lastErr error
	for i := range attempts {
		client := redis.NewClient(opts)
		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return client, nil
		}
		_ = client.Close()

		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrConnectionFailed, ctx.Err())
		case <-time.After(time.Duration(i+1) * interval):
		}
	}

	return nil, errors.Join(ErrConnectionFailed, lastErr)
}

// Healthcheck returns a readiness check that pings Redis.
func Healthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		if client == nil {
			return ErrHealthcheckFailed
		}
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
