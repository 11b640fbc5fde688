package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
	Filters FilterConfig  `mapstructure:"filters"`
}

// APIConfig holds FFF API connection details
type APIConfig struct {
	BaseURL   string        `mapstructure:"base_url" validate:"required,http_url"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"min=1s"`
	UserAgent string        `mapstructure:"user_agent" validate:"required"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
	Color  bool   `mapstructure:"color"`
	// File enables rotated JSON logs in addition to stderr
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" validate:"min=1"`
	MaxBackups int    `mapstructure:"max_backups" validate:"min=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" validate:"min=0"`
	Compress   bool   `mapstructure:"compress"`
}

// OutputConfig controls how the CLI fetches and prints results
type OutputConfig struct {
	// Concurrency bounds the number of requests in flight for multi-id commands
	Concurrency int  `mapstructure:"concurrency" validate:"min=1,max=16"`
	JSON        bool `mapstructure:"json"`
}

// FilterConfig maps filter names to expressions usable with --filter
type FilterConfig map[string]string
