package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zsiec/tick/pkg/tick"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tick.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.False(t, cfg.Server.EnableHTTP3)
	assert.Equal(t, float64(100), cfg.Server.RateLimit)
	assert.Equal(t, []string{"localhost:6379"}, cfg.Redis.Addresses)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, tick.Film, cfg.Timeline.DefaultFrameRate)
	assert.Equal(t, "memory", cfg.Timeline.MarkerBackend)
	assert.Equal(t, time.Duration(0), cfg.Timeline.MarkerTTL)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
server:
  http_port: 9000
  rate_limit: 0

redis:
  addresses:
    - "localhost:6380"

logging:
  level: "debug"
  format: "text"

metrics:
  enabled: false

timeline:
  default_frame_rate: 29.97
  marker_backend: "redis"
  key_prefix: "test:markers"
  marker_ttl: "1h"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.HTTPPort)
	assert.Equal(t, float64(0), cfg.Server.RateLimit)
	assert.Equal(t, []string{"localhost:6380"}, cfg.Redis.Addresses)
	assert.Equal(t, 20, cfg.Redis.PoolSize)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, tick.NTSC, cfg.Timeline.DefaultFrameRate)
	assert.Equal(t, "redis", cfg.Timeline.MarkerBackend)
	assert.Equal(t, time.Hour, cfg.Timeline.MarkerTTL)
}

func TestLoad_FrameRateForms(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected tick.FrameRate
	}{
		{name: "Integer", value: "25", expected: tick.PAL},
		{name: "Rational", value: `"30000/1001"`, expected: tick.NTSC},
		{name: "Decimal", value: "23.976", expected: tick.NTSCFilm},
		{name: "Quoted integer", value: `"60"`, expected: tick.FrameRate60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, "timeline:\n  default_frame_rate: "+tt.value+"\n")
			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Timeline.DefaultFrameRate)
		})
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TICK_SERVER_HTTP_PORT", "7000")
	t.Setenv("TICK_TIMELINE_DEFAULT_FRAME_RATE", "30000/1001")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.HTTPPort)
	assert.Equal(t, tick.NTSC, cfg.Timeline.DefaultFrameRate)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config")
		assert.Nil(t, cfg)
	})

	t.Run("bad frame rate", func(t *testing.T) {
		path := writeConfig(t, "timeline:\n  default_frame_rate: \"fast\"\n")
		cfg, err := Load(path)
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("unknown backend", func(t *testing.T) {
		path := writeConfig(t, "timeline:\n  marker_backend: \"sql\"\n")
		cfg, err := Load(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "marker_backend")
		assert.Nil(t, cfg)
	})

	t.Run("http3 without certificates", func(t *testing.T) {
		path := writeConfig(t, `
server:
  enable_http3: true
  tls_cert_file: "/nonexistent/cert.pem"
  tls_key_file: "/nonexistent/key.pem"
`)
		cfg, err := Load(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "TLS certificate file not found")
		assert.Nil(t, cfg)
	})
}
