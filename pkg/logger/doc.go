// Package logger builds the structured logger used by the CLI and the HTTP server.
//
// It wraps log/slog with context extractors that add run- and request-scoped
// attributes to every record, and with optional Sentry reporting.
//
// # Basic Usage
//
//	log := logger.New(logger.Config{Level: "info", Format: "text"}, logger.RunIDExtractor())
//
//	ctx := logger.WithRunID(context.Background(), runID)
//	log.InfoContext(ctx, "wrote locale", slog.String("path", "locales/en/common.json"))
//	// time=... level=INFO msg="wrote locale" path=locales/en/common.json run_id=...
//
// Format "json" switches to slog.JSONHandler for log collectors.
//
// # Sentry Integration
//
// NewWithSentry adds a Sentry handler next to stderr when SENTRY_DSN is set:
//
//	log := logger.NewWithSentry(cfg.Log, cfg.Sentry, logger.RunIDExtractor())
//	defer logger.Flush(2 * time.Second)
//
// Errors create Sentry issues; warnings are stored as logs. Without a DSN, or
// if the SDK fails to initialize, only stderr logging is configured.
//
// # Handler Decoration
//
// LogHandlerDecorator can wrap any slog.Handler:
//
//	h := logger.NewLogHandlerDecorator(slog.NewJSONHandler(w, nil), extractors...)
//	log := slog.New(h)
package logger
