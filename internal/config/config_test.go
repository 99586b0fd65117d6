package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "data/snowboard-finder.db", cfg.DBPath)
	assert.Equal(t, "data/http-cache.db", cfg.CacheDBPath)
	assert.Equal(t, 1000, cfg.ScrapeDelayMs)
	assert.Equal(t, 0.00074, cfg.KRWToUSDRate)
	assert.Equal(t, 3, cfg.MaxConcurrentRetailers)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().DBPath, cfg.DBPath)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := Default()
	cfg.DBPath = "custom/path.db"
	cfg.MaxConcurrentRetailers = 7

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom/path.db", loaded.DBPath)
	assert.Equal(t, 7, loaded.MaxConcurrentRetailers)
}

func TestScrapeDelay(t *testing.T) {
	cfg := Default()
	cfg.ScrapeDelayMs = 250
	assert.Equal(t, 250e6, float64(cfg.ScrapeDelay().Nanoseconds()))

	cfg.ScrapeDelayMs = 0
	assert.Equal(t, int64(1e9), cfg.ScrapeDelay().Nanoseconds())
}
