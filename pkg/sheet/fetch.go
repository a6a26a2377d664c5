package sheet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"

	"github.com/dmitrymomot/sheetlocale/pkg/cache"
)

// Fetcher downloads sheet exports or reads local CSV files.
// It is safe for concurrent use.
type Fetcher struct {
	client   *http.Client
	cache    cache.Cache[[]byte]
	tokens   oauth2.TokenSource
	logger   *slog.Logger
	timeout  time.Duration
	maxSize  int64
	cacheTTL time.Duration
}

// NewFetcher creates a Fetcher with the given options.
//
//	f := sheet.NewFetcher(sheet.WithTimeout(10*time.Second))
//	data, err := f.Fetch(ctx, "https://docs.google.com/spreadsheets/d/abc/export?format=csv&gid=0")
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:  http.DefaultClient,
		logger:  slog.New(slog.DiscardHandler),
		timeout: DefaultTimeout,
		maxSize: DefaultMaxSize,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

type freshKey struct{}

// Fresh marks ctx so that Fetch bypasses the cache for reads.
// The downloaded payload still replaces the cached copy.
func Fresh(ctx context.Context) context.Context {
	return context.WithValue(ctx, freshKey{}, true)
}

// IsFresh reports whether ctx was marked by Fresh.
func IsFresh(ctx context.Context) bool {
	fresh, _ := ctx.Value(freshKey{}).(bool)
	return fresh
}

// Fetch returns the raw bytes of source.
// http and https sources are downloaded; anything else is read as a file path.
// With a cache configured, downloads are shared until they expire unless ctx
// was marked by Fresh.
func (f *Fetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	if !IsRemote(source) {
		return f.readFile(source)
	}

	if f.cache == nil {
		return f.download(ctx, source)
	}

	if IsFresh(ctx) {
		data, err := f.download(ctx, source)
		if err != nil {
			return nil, err
		}
		if err := f.cache.Set(ctx, source, data, f.cacheTTL); err != nil {
			f.logger.WarnContext(ctx, "cannot refresh cached sheet",
				slog.String("url", source),
				slog.String("error", err.Error()),
			)
		}
		return data, nil
	}

	return cache.GetOrSet(ctx, f.cache, source, func(ctx context.Context) ([]byte, time.Duration, error) {
		data, err := f.download(ctx, source)
		return data, f.cacheTTL, err
	})
}

func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", userAgent)

	if f.tokens != nil {
		tok, err := f.tokens.Token()
		if err != nil {
			return nil, errors.Join(ErrInvalidCredentials, err)
		}
		tok.SetAuthHeader(req)
	}

	f.logger.DebugContext(ctx, "fetching sheet", slog.String("url", url))
	start := time.Now()

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: network error: %w", ErrFetchFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{URL: url, StatusCode: resp.StatusCode}
	}
	if resp.ContentLength > f.maxSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, resp.ContentLength)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}
	if int64(len(data)) > f.maxSize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, f.maxSize)
	}

	f.logger.InfoContext(ctx, "sheet fetched",
		slog.String("url", url),
		slog.Int("bytes", len(data)),
		slog.String("content_type", resp.Header.Get("Content-Type")),
		slog.Duration("duration", time.Since(start)),
	)

	return data, nil
}

func (f *Fetcher) readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}
	if info.Size() > f.maxSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, path, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}
	return data, nil
}

var _ Source = (*Fetcher)(nil)
