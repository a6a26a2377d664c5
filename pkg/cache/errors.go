package cache

import "errors"

// Sentinel errors for cache operations.
var (
	// ErrNotFound is returned when a key does not exist in the cache or has expired.
	ErrNotFound = errors.New("cache: entry not found")

	// ErrClosed is returned when an operation is attempted on a closed cache.
	ErrClosed = errors.New("cache: closed")

	ErrMarshal   = errors.New("cache: failed to marshal value")
	ErrUnmarshal = errors.New("cache: failed to unmarshal value")

	// Redis connection errors.
	ErrEmptyConnectionURL = errors.New("cache: empty redis connection URL")
	ErrFailedToParseURL   = errors.New("cache: failed to parse redis connection URL")
	ErrConnectionFailed   = errors.New("cache: failed to connect to redis")
	ErrHealthcheckFailed  = errors.New("cache: redis healthcheck failed")
)
