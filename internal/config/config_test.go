package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "1h", cfg.Binance.KlinesInterval)
	assert.Equal(t, 50, cfg.Binance.KlinesLimit)
	assert.Equal(t, 180*time.Second, cfg.Cache.ResultTTL)
	assert.Equal(t, 3600*time.Second, cfg.Cache.SeriesTTL)
	assert.Equal(t, 85, cfg.Alerts.MinScore)
}

func TestLoadYamlOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  port: 9000
binance:
  klines_interval: 4h
cache:
  result_ttl: 60s
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "4h", cfg.Binance.KlinesInterval)
	assert.Equal(t, 60*time.Second, cfg.Cache.ResultTTL)
	// untouched keys keep their defaults
	assert.Equal(t, 50, cfg.Binance.KlinesLimit)
	assert.Equal(t, 3600*time.Second, cfg.Cache.SeriesTTL)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("BINANCE_BASE_URL", "http://localhost:9999")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "http://localhost:9999", cfg.Binance.BaseURL)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
