package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/sheetlocale/internal/exporter"
	"github.com/dmitrymomot/sheetlocale/pkg/cache"
	"github.com/dmitrymomot/sheetlocale/pkg/health"
	"github.com/dmitrymomot/sheetlocale/pkg/sheet"
	"github.com/dmitrymomot/sheetlocale/pkg/storage"
)

const (
	redisConnectAttempts = 3
	redisConnectInterval = time.Second
	redisKeyPrefix       = "sheetlocale:csv"
)

// deps holds what a command built and must release.
type deps struct {
	exporter *exporter.Exporter
	checks   health.Checks
	closers  []func() error
}

func (d *deps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		_ = d.closers[i]()
	}
}

// build wires the fetcher, optional cache and storage into an exporter.
// memoryFallback adds an in-process cache when no REDIS_URL is configured.
func (a *app) build(ctx context.Context, withStorage, memoryFallback bool) (*deps, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}

	d := &deps{checks: health.Checks{}}

	fetchOpts := []sheet.Option{
		sheet.WithTimeout(a.cfg.Sheet.Timeout),
		sheet.WithMaxSize(a.cfg.Sheet.MaxSize),
		sheet.WithLogger(a.log),
	}

	if a.cfg.Sheet.CredentialsFile != "" {
		raw, err := os.ReadFile(a.cfg.Sheet.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read credentials: %w", err)
		}
		ts, err := sheet.GoogleTokenSource(ctx, raw)
		if err != nil {
			return nil, err
		}
		fetchOpts = append(fetchOpts, sheet.WithTokenSource(ts))
	}

	switch {
	case a.cfg.Cache.RedisURL != "":
		client, err := cache.Open(ctx, a.cfg.Cache.RedisURL, redisConnectAttempts, redisConnectInterval)
		if err != nil {
			return nil, err
		}
		d.closers = append(d.closers, client.Close)
		d.checks["redis"] = health.CheckFunc(cache.Healthcheck(client))
		fetchOpts = append(fetchOpts, sheet.WithCache(newRedisCache(client), a.cfg.Cache.TTL))
	case memoryFallback:
		mem := cache.NewMemory[[]byte](cache.WithDefaultTTL(a.cfg.Cache.TTL))
		d.closers = append(d.closers, mem.Close)
		fetchOpts = append(fetchOpts, sheet.WithCache(mem, a.cfg.Cache.TTL))
	}

	var store storage.Storage
	if withStorage {
		var err error
		if store, err = a.cfg.NewStorage(); err != nil {
			d.Close()
			return nil, err
		}
	}

	localeOpts, err := a.cfg.LocaleOptions()
	if err != nil {
		d.Close()
		return nil, err
	}

	exp, err := exporter.New(exporter.Deps{
		Source:  sheet.NewFetcher(fetchOpts...),
		Storage: store,
		Logger:  a.log,
	}, exporter.Options{
		Locale:    localeOpts,
		Namespace: a.cfg.Output.Namespace,
		Encoding:  a.cfg.Output.Encoding,
		GID:       a.cfg.Sheet.GID,
	})
	if err != nil {
		d.Close()
		return nil, err
	}
	d.exporter = exp
	return d, nil
}

func newRedisCache(client redis.UniversalClient) cache.Cache[[]byte] {
	return cache.NewRedis[[]byte](client, cache.BytesMarshaler{}, cache.WithPrefix(redisKeyPrefix))
}

// sourceArg picks the positional source or falls back to SHEET_URL.
func (a *app) sourceArg(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if a.cfg.Sheet.URL != "" {
		return a.cfg.Sheet.URL, nil
	}
	return "", exporter.ErrNoSource
}
