package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
database:
  host: db
  dbname: campus
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr())
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownGrace)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, LimitConfig{Requests: 300, Window: time.Minute}, cfg.RateLimit.Read)
	assert.Equal(t, LimitConfig{Requests: 60, Window: time.Minute}, cfg.RateLimit.Write)
	assert.Equal(t, LimitConfig{Requests: 10, Window: time.Hour}, cfg.RateLimit.Batch)
	assert.Equal(t, "opportunity", cfg.RabbitMQ.RoutingKeyPrefix)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.RabbitMQ.Enabled)
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	t.Setenv("CAMPUS_DB_PASSWORD", "s3cret")
	path := writeConfig(t, `
database:
  host: db
  dbname: campus
  password: ${CAMPUS_DB_PASSWORD}
rate_limit:
  batch:
    requests: 2
    window: 30m
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Contains(t, cfg.Database.DSN(), "password=s3cret")
	assert.Equal(t, LimitConfig{Requests: 2, Window: 30 * time.Minute}, cfg.RateLimit.Batch)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing host", "database:\n  dbname: x\n", "database host"},
		{"bad log level", "database:\n  host: h\n  dbname: x\nlog_level: loud\n", "invalid log level"},
		{"tiny window", "database:\n  host: h\n  dbname: x\nrate_limit:\n  read:\n    requests: 5\n    window: 1ms\n", "window too small"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestSlogLevel(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	} {
		cfg := Config{LogLevel: name}
		assert.Equal(t, want, cfg.SlogLevel(), name)
	}
}
