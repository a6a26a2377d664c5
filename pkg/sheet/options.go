package sheet

import (
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/dmitrymomot/sheetlocale/pkg/cache"
)

// Defaults used by NewFetcher.
const (
	DefaultTimeout = 30 * time.Second
	DefaultMaxSize = 50 << 20 // 50 MB
	userAgent      = "Mozilla/5.0"
)

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient sets the HTTP client used for downloads.
// Useful for testing with httptest servers or custom transports.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		if client != nil {
			f.client = client
		}
	}
}

// WithTimeout bounds a single download. Zero or negative disables the bound.
// Default: 30 seconds.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxSize sets the largest accepted payload in bytes.
// Default: 50 MB.
func WithMaxSize(n int64) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxSize = n
		}
	}
}

// WithCache keeps remote payloads in c for ttl.
// Local files are never cached.
func WithCache(c cache.Cache[[]byte], ttl time.Duration) Option {
	return func(f *Fetcher) {
		f.cache = c
		f.cacheTTL = ttl
	}
}

// WithTokenSource authorizes downloads of private sheets.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(f *Fetcher) {
		f.tokens = ts
	}
}

// WithLogger sets the logger for fetch events.
func WithLogger(l *slog.Logger) Option {
	return func(f *Fetcher) {
		if l != nil {
			f.logger = l
		}
	}
}
