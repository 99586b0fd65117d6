package config

// LoggingConfig configures the categorized logger (internal/logging).
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Categories map[string]bool `yaml:"categories"`
}
