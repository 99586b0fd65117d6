// Package config loads and validates runtime configuration for the
// snowboard catalog pipeline: database paths, scrape pacing, currency
// conversion, and concurrency limits. Mirrors the teacher's YAML +
// env-override pattern (internal/config/config.go).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ryanrhee/snowboard-db-sub000/internal/logging"
)

// Config holds all pipeline configuration.
type Config struct {
	DBPath      string `yaml:"db_path"`
	CacheDBPath string `yaml:"cache_db_path"`

	ScrapeDelayMs          int     `yaml:"scrape_delay_ms"`
	KRWToUSDRate            float64 `yaml:"krw_to_usd_rate"`
	MaxConcurrentRetailers  int     `yaml:"max_concurrent_retailers"`

	HTTPSProxy string `yaml:"https_proxy"`
	HTTPProxy  string `yaml:"http_proxy"`

	Logging LoggingConfig `yaml:"logging"`
}

// Default returns the documented defaults from spec §6.
func Default() *Config {
	return &Config{
		DBPath:                 "data/snowboard-finder.db",
		CacheDBPath:            "data/http-cache.db",
		ScrapeDelayMs:          1000,
		KRWToUSDRate:           0.00074,
		MaxConcurrentRetailers: 3,
		Logging: LoggingConfig{
			DebugMode: false,
		},
	}
}

// Load reads configuration from a YAML file, falling back to defaults
// when the file does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	logging.BootDebug("loading config from %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Boot("config file not found, using defaults: %s", path)
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	logging.Boot("config loaded: db=%s cache=%s", cfg.DBPath, cfg.CacheDBPath)
	return cfg, nil
}

// Save writes configuration to a YAML file, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// applyEnvOverrides applies the environment variables documented in §6.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("CACHE_DB_PATH"); v != "" {
		c.CacheDBPath = v
	}
	if v := os.Getenv("SCRAPE_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.ScrapeDelayMs = n
		}
	}
	if v := os.Getenv("KRW_TO_USD_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.KRWToUSDRate = f
		}
	}
	if v := os.Getenv("MAX_CONCURRENT_RETAILERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxConcurrentRetailers = n
		}
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		c.HTTPSProxy = v
	}
	if v := os.Getenv("HTTP_PROXY"); v != "" {
		c.HTTPProxy = v
	}
}

// ScrapeDelay returns the inter-request delay as a duration.
func (c *Config) ScrapeDelay() time.Duration {
	if c.ScrapeDelayMs <= 0 {
		return time.Second
	}
	return time.Duration(c.ScrapeDelayMs) * time.Millisecond
}
