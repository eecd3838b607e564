// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file
// 3. Environment variables (PROJECT_TRACKER_*, NO_COLOR)
// 4. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations (first match wins):
// - $PROJECT_TRACKER_CONFIG (must exist when set)
// - $XDG_CONFIG_HOME/project-tracker/config.toml
// - ~/.config/project-tracker/config.toml
//
// The data file itself is not configuration: it lives next to the config
// file by default and can be moved with data_file, PROJECT_TRACKER_DATA or
// -data.
package config
