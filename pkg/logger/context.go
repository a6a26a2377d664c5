package logger

import (
	"context"
	"log/slog"
)

type runIDKey struct{}

// WithRunID stores the export run identifier in ctx.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunID returns the run identifier stored by WithRunID.
func RunID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runIDKey{}).(string)
	return id, ok && id != ""
}

// RunIDExtractor adds a run_id attribute to records logged within a run.
func RunIDExtractor() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := RunID(ctx); ok {
			return slog.String("run_id", id), true
		}
		return slog.Attr{}, false
	}
}
