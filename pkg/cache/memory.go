package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryOption configures the in-memory cache.
type MemoryOption func(*memoryOptions)

type memoryOptions struct {
	defaultTTL      time.Duration
	cleanupInterval time.Duration
}

// WithDefaultTTL sets the expiration used when Set is called with a zero TTL.
// Default: 5 minutes.
func WithDefaultTTL(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.defaultTTL = d
	}
}

// WithCleanupInterval sets how often expired entries are removed in the
// background. Zero disables the janitor; expired entries are then dropped on read.
// Default: 1 minute.
func WithCleanupInterval(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.cleanupInterval = d
	}
}

type memoryEntry[V any] struct {
	expiresAt time.Time // zero value = never expires
	value     V
}

func (e memoryEntry[V]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// Memory is an in-process cache with TTL-based expiration.
// It suits the HTTP server when no Redis is configured.
type Memory[V any] struct {
	items  map[string]memoryEntry[V]
	opts   memoryOptions
	done   chan struct{}
	mu     sync.Mutex
	closed bool
}

// NewMemory creates a new in-memory cache.
//
//	c := cache.NewMemory[[]byte](cache.WithDefaultTTL(time.Minute))
//	defer c.Close()
func NewMemory[V any](opts ...MemoryOption) *Memory[V] {
	o := memoryOptions{
		defaultTTL:      5 * time.Minute,
		cleanupInterval: time.Minute,
	}
	for _, opt := range opts {
		opt(&o)
	}

	m := &Memory[V]{
		items: make(map[string]memoryEntry[V]),
		opts:  o,
		done:  make(chan struct{}),
	}

	if o.cleanupInterval > 0 {
		go m.janitor()
	}

	return m
}

// Get retrieves a value by key.
func (m *Memory[V]) Get(_ context.Context, key string) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero V
	e, ok := m.items[key]
	if !ok {
		return zero, ErrNotFound
	}
	if e.expired(time.Now()) {
		delete(m.items, key)
		return zero, ErrNotFound
	}
	return e.value, nil
}

// Set stores a value with the given TTL.
func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	if ttl == 0 {
		ttl = m.opts.defaultTTL
	}

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	m.items[key] = memoryEntry[V]{value: value, expiresAt: expiresAt}
	return nil
}

// Delete removes a key from the cache.
func (m *Memory[V]) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	delete(m.items, key)
	return nil
}

// Len returns the number of stored entries, expired ones included until removed.
func (m *Memory[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Close stops the janitor. Close is idempotent.
func (m *Memory[V]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true
	close(m.done)
	return nil
}

func (m *Memory[V]) janitor() {
	ticker := time.NewTicker(m.opts.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.deleteExpired()
		}
	}
}

func (m *Memory[V]) deleteExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for key, e := range m.items {
		if e.expired(now) {
			delete(m.items, key)
		}
	}
}

var _ Cache[any] = (*Memory[any])(nil)
