package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sheetlocale/pkg/health"
)

func TestLivenessHandler(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	health.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestReadinessHandler(t *testing.T) {
	t.Parallel()

	t.Run("all checks pass", func(t *testing.T) {
		t.Parallel()

		h := health.ReadinessHandler(health.Checks{
			"redis":   func(context.Context) error { return nil },
			"storage": func(context.Context) error { return nil },
		})

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var resp health.Response
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, health.StatusHealthy, resp.Status)
		assert.Len(t, resp.Checks, 2)
	})

	t.Run("failing check makes service unavailable", func(t *testing.T) {
		t.Parallel()

		h := health.ReadinessHandler(health.Checks{
			"redis":   func(context.Context) error { return errors.New("connection refused") },
			"storage": func(context.Context) error { return nil },
		})

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp health.Response
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, health.StatusUnhealthy, resp.Status)
		assert.Equal(t, "connection refused", resp.Checks["redis"].Error)
		assert.Equal(t, health.StatusHealthy, resp.Checks["storage"].Status)
	})

	t.Run("no checks is ready", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		health.ReadinessHandler(nil)(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
	})
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("no checks is healthy", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, health.StatusHealthy, health.Run(context.Background(), nil).Status)
	})

	t.Run("slow checks time out", func(t *testing.T) {
		t.Parallel()

		resp := health.Run(context.Background(), health.Checks{
			"slow": func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			},
		}, health.WithTimeout(20*time.Millisecond))

		require.Equal(t, health.StatusUnhealthy, resp.Status)
		require.Equal(t, health.ErrCheckTimeout.Error(), resp.Checks["slow"].Error)
	})
}
