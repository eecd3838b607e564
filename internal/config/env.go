package config

import (
	"os"
	"strconv"
	"strings"
)

// loadFromEnv overrides config from environment variables.
// If sources is non-nil, it tracks the source of each value.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	track := func(field string) {
		if sources != nil {
			sources[field] = SourceEnv
		}
	}

	if v := os.Getenv("PROJECT_TRACKER_DATA"); v != "" {
		cfg.DataFile = v
		track("data_file")
	}
	if v := os.Getenv("PROJECT_TRACKER_BAR_WIDTH"); v != "" {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.BarWidth = i
			track("bar_width")
		}
	}
	// NO_COLOR (https://no-color.org) yields to an explicit setting.
	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.Color = ColorNever
		track("color")
	}
	if v := os.Getenv("PROJECT_TRACKER_COLOR"); v != "" {
		cfg.Color = v
		track("color")
	}

	// Logging configuration
	if v := os.Getenv("PROJECT_TRACKER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
		track("log_level")
	}
	if v := os.Getenv("PROJECT_TRACKER_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
		track("log_format")
	}
	if v := os.Getenv("PROJECT_TRACKER_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
		track("log_timestamps")
	}
	if v := os.Getenv("PROJECT_TRACKER_LOG_CALLER"); v != "" {
		cfg.LogCaller = boolFromString(v)
		track("log_caller")
	}
}
