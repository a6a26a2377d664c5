// Package health provides HTTP handlers for liveness and readiness probes.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//		"redis": cache.Healthcheck(client),
//	}))
//
// Both handlers answer with a JSON Response and Cache-Control: no-store.
// Readiness runs all checks concurrently under one shared timeout.
package health
