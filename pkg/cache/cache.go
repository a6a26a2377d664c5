package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is a key-value cache with TTL support.
//
// TTL semantics for Set:
//   - Positive duration: item expires after this duration
//   - Zero: use the cache's configured default TTL
//   - Negative: item never expires
type Cache[V any] interface {
	// Get retrieves a value by key.
	// Returns ErrNotFound if the key does not exist or has expired.
	Get(ctx context.Context, key string) (V, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error

	// Delete removes a key from the cache.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Marshaler converts cache values for backends that store bytes.
type Marshaler[V any] interface {
	Marshal(v V) ([]byte, error)
	Unmarshal(data []byte) (V, error)
}

// JSONMarshaler stores values as JSON.
type JSONMarshaler[V any] struct{}

func (JSONMarshaler[V]) Marshal(v V) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Join(ErrMarshal, err)
	}
	return data, nil
}

func (JSONMarshaler[V]) Unmarshal(data []byte) (V, error) {
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return v, errors.Join(ErrUnmarshal, err)
	}
	return v, nil
}

// BytesMarshaler stores raw payloads such as downloaded CSV files unchanged.
type BytesMarshaler struct{}

func (BytesMarshaler) Marshal(v []byte) ([]byte, error) { return v, nil }

func (BytesMarshaler) Unmarshal(data []byte) ([]byte, error) { return data, nil }

var sfGroup singleflight.Group

type getOrSetResult[V any] struct {
	val V
	ttl time.Duration
}

// GetOrSet returns the cached value for key, or calls fn on a miss and caches
// its result. Concurrent misses for the same key share a single fn call.
// If fn fails, nothing is cached and the error is returned.
func GetOrSet[V any](ctx context.Context, c Cache[V], key string, fn func(ctx context.Context) (V, time.Duration, error)) (V, error) {
	if v, err := c.Get(ctx, key); err == nil {
		return v, nil
	}

	// Keyed by value type too so caches of different types never share a flight.
	flightKey := fmt.Sprintf("%T|%s", *new(V), key)
	v, err, _ := sfGroup.Do(flightKey, func() (any, error) {
		val, ttl, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		return getOrSetResult[V]{val: val, ttl: ttl}, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	r := v.(getOrSetResult[V])

	// Best effort: a failed write only costs a refetch.
	_ = c.Set(ctx, key, r.val, r.ttl)

	return r.val, nil
}
