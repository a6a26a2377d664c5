package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config selects the level and format of the process logger.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// ParseLevel converts a level name (debug, info, warn, error).
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("logger: invalid level %q", s)
	}
	return level, nil
}

// New creates a logger writing to stderr with optional context extractors.
// An unknown level falls back to info; an unknown format falls back to text.
func New(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	return slog.New(NewLogHandlerDecorator(newHandler(os.Stderr, cfg), extractors...))
}

// NewWriter is New with an explicit destination.
func NewWriter(w io.Writer, cfg Config, extractors ...ContextExtractor) *slog.Logger {
	return slog.New(NewLogHandlerDecorator(newHandler(w, cfg), extractors...))
}

func newHandler(w io.Writer, cfg Config) slog.Handler {
	level, _ := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(cfg.Format, FormatJSON) {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// NewNope creates a logger that discards all output.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
