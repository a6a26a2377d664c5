package logger

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel determines which log levels to send to Sentry (e.g., slog.LevelWarn for warnings+errors)
	MinLevel slog.Level `env:"SENTRY_MIN_LEVEL" envDefault:"WARN"`
}

// NewWithSentry creates a logger that writes to stderr and reports failed
// exports to Sentry. If DSN is empty, only stderr logging is enabled.
// Context extractors are applied to records sent to both destinations.
func NewWithSentry(cfg Config, sentryCfg SentryConfig, extractors ...ContextExtractor) *slog.Logger {
	stdoutHandler := newHandler(os.Stderr, cfg)

	if sentryCfg.DSN == "" {
		return slog.New(NewLogHandlerDecorator(stdoutHandler, extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         sentryCfg.DSN,
		Environment: sentryCfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(stdoutHandler).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(NewLogHandlerDecorator(stdoutHandler, extractors...))
	}

	eventLevel := []slog.Level{slog.LevelError}
	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if sentryCfg.MinLevel == slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: eventLevel, // Errors create Issues in Sentry
		LogLevel:   logLevel,   // Logs stored for context/search
	}.NewSentryHandler(context.Background())

	combinedHandler := newMultiHandler(stdoutHandler, sentryHandler)

	return slog.New(NewLogHandlerDecorator(combinedHandler, extractors...))
}

// Flush waits up to timeout for buffered Sentry events to be sent.
// It is a no-op when Sentry was never initialized.
func Flush(timeout time.Duration) {
	sentry.Flush(timeout)
}
