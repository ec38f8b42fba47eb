package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus_connect/internal/api"
	"campus_connect/internal/config"
	"campus_connect/internal/ratelimit"
	"campus_connect/internal/service"
)

// shippedServer builds the HTTP handler the way serve does, from the
// config.yaml at the repository root.
func shippedServer(t *testing.T) http.Handler {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_NAME", "campus_connect")

	cfg, err := config.Load("../../config.yaml")
	require.NoError(t, err)
	require.False(t, cfg.Redis.Enabled)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	limiter, closeLimiter, err := newLimiter(context.Background(), cfg, logger)
	require.NoError(t, err)
	t.Cleanup(closeLimiter)
	require.IsType(t, &ratelimit.LocalLimiter{}, limiter)

	server := api.NewServer(
		service.NewOpportunityService(nil, nil, nil, nil, logger),
		service.NewResolver(nil, nil, nil, nil, logger),
		service.NewBatchService(nil, nil, nil, logger),
		limiter,
		logger,
		api.Options{AllowedOrigins: cfg.CORS.AllowedOrigins, MaxBodyBytes: cfg.Server.MaxBodyBytes},
	)
	return server.Handler()
}

// hammer sends n requests whose bodies fail to decode, so no store is
// reached, and returns the last response.
func hammer(h http.Handler, method, target string, n int) *httptest.ResponseRecorder {
	var rec *httptest.ResponseRecorder
	for range n {
		req := httptest.NewRequest(method, target, bytes.NewBufferString("{"))
		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, req)
	}
	return rec
}

func TestShippedConfig_LimitsWrites(t *testing.T) {
	h := shippedServer(t)

	rec := hammer(h, http.MethodPost, "/jobs", 60)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = hammer(h, http.MethodPost, "/hackathons", 1)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	rec = hammer(h, http.MethodGet, "/health", 1)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestShippedConfig_LimitsBatchHourly(t *testing.T) {
	h := shippedServer(t)

	rec := hammer(h, http.MethodPost, "/opportunities/batch", 10)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = hammer(h, http.MethodPost, "/opportunities/batch", 1)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "360", rec.Header().Get("Retry-After"))

	// batch quota is separate from the write tier
	rec = hammer(h, http.MethodPost, "/jobs", 1)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
