package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sheetlocale/pkg/logger"
)

func TestNewWriter(t *testing.T) {
	t.Parallel()

	t.Run("json format with run id", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWriter(&buf, logger.Config{Level: "info", Format: "json"}, logger.RunIDExtractor())

		ctx := logger.WithRunID(context.Background(), "run-1")
		log.InfoContext(ctx, "wrote locale", slog.String("lang", "en"))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "wrote locale", rec["msg"])
		assert.Equal(t, "en", rec["lang"])
		assert.Equal(t, "run-1", rec["run_id"])
	})

	t.Run("no run id outside a run", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWriter(&buf, logger.Config{Format: "json"}, logger.RunIDExtractor())

		log.Info("hello")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.NotContains(t, rec, "run_id")
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWriter(&buf, logger.Config{Level: "warn", Format: "text"})

		log.Info("hidden")
		log.Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("nil extractors are ignored", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWriter(&buf, logger.Config{}, nil)

		require.NotPanics(t, func() { log.Info("ok") })
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	level, err := logger.ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = logger.ParseLevel(" ERROR ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, level)

	level, err = logger.ParseLevel("loud")
	require.Error(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestRunID(t *testing.T) {
	t.Parallel()

	_, ok := logger.RunID(context.Background())
	assert.False(t, ok)

	_, ok = logger.RunID(logger.WithRunID(context.Background(), ""))
	assert.False(t, ok)

	id, ok := logger.RunID(logger.WithRunID(context.Background(), "abc"))
	assert.True(t, ok)
	assert.Equal(t, "abc", id)
}

func TestNewWithSentry_NoDSN(t *testing.T) {
	t.Parallel()

	log := logger.NewWithSentry(logger.Config{Level: "error"}, logger.SentryConfig{})
	require.NotNil(t, log)
	assert.False(t, log.Enabled(context.Background(), slog.LevelInfo))
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
