// Package cache stores downloaded sheet payloads between exports.
//
// The HTTP server renders locales on every request; caching the fetched CSV
// keeps it from hitting the spreadsheet host each time. Both backends share
// the [Cache] interface:
//
//   - [Memory]: in-process map with TTL expiration and a background janitor
//   - [Redis]: go-redis backed, shared across replicas, values stored through a [Marshaler]
//
// TTL semantics for Set:
//   - Positive duration: item expires after this duration
//   - Zero: use the cache's configured default TTL (5 minutes by default)
//   - Negative: item never expires
//
// # Read-through
//
// [GetOrSet] fetches on a miss and deduplicates concurrent misses for the same
// key with singleflight:
//
//	data, err := cache.GetOrSet(ctx, c, exportURL, func(ctx context.Context) ([]byte, time.Duration, error) {
//		body, err := download(ctx, exportURL)
//		return body, 0, err
//	})
//
// # Redis
//
// [Open] parses a redis:// or rediss:// URL and pings the server with retries.
// [Healthcheck] adapts the client for readiness probes.
//
//	client, err := cache.Open(ctx, cfg.RedisURL, 3, time.Second)
//	c := cache.NewRedis[[]byte](client, cache.BytesMarshaler{}, cache.WithPrefix("sheetlocale"))
package cache
