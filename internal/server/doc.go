// Package server exposes the exporter over HTTP and runs scheduled exports.
//
// # Routes
//
//	GET  /health/live       liveness probe
//	GET  /health/ready      readiness probe, runs the registered checks
//	GET  /languages         {"languages": [...]} in sheet order
//	GET  /locales           document for the best Accept-Language match
//	GET  /locales/{lang}    document for one language, ?encoding=json|yaml
//	POST /export            runs an export and responds with its report
//
// Every locale request fetches the sheet through the exporter's source, so
// responses follow the fetcher cache rather than a server-side one.
//
// # Errors
//
// Failures are written as {"error": "..."}. Unknown languages map to 404,
// unknown encodings to 400, invalid sheets and key collisions to 422, fetch
// failures to 502 and an export that is already running to 409.
//
// # Scheduling
//
//	srv, err := server.New(exp, sheetURL,
//	    server.WithSchedule("@every 15m"),
//	    server.WithLogger(log),
//	)
//	if err != nil {
//	    return err
//	}
//	return srv.Run(ctx)
//
// Scheduled runs that overlap a running export are skipped.
package server
