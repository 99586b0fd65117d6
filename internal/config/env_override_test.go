package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DB_PATH", "/tmp/boards.db")
	t.Setenv("CACHE_DB_PATH", "/tmp/cache.db")
	t.Setenv("SCRAPE_DELAY_MS", "500")
	t.Setenv("KRW_TO_USD_RATE", "0.001")
	t.Setenv("MAX_CONCURRENT_RETAILERS", "5")
	t.Setenv("HTTPS_PROXY", "https://proxy.example")
	t.Setenv("HTTP_PROXY", "http://proxy.example")

	cfg := Default()
	cfg.applyEnvOverrides()

	assert.Equal(t, "/tmp/boards.db", cfg.DBPath)
	assert.Equal(t, "/tmp/cache.db", cfg.CacheDBPath)
	assert.Equal(t, 500, cfg.ScrapeDelayMs)
	assert.Equal(t, 0.001, cfg.KRWToUSDRate)
	assert.Equal(t, 5, cfg.MaxConcurrentRetailers)
	assert.Equal(t, "https://proxy.example", cfg.HTTPSProxy)
	assert.Equal(t, "http://proxy.example", cfg.HTTPProxy)
}

func TestEnvOverridesIgnoreMalformedNumbers(t *testing.T) {
	t.Setenv("SCRAPE_DELAY_MS", "not-a-number")
	cfg := Default()
	cfg.applyEnvOverrides()
	assert.Equal(t, Default().ScrapeDelayMs, cfg.ScrapeDelayMs)
}
