package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# project-tracker configuration file
# Location: ~/.config/project-tracker/config.toml
# Values can be overridden by environment variables or CLI flags

# Data file (supports ~ and $VAR expansion)
# data_file = "~/.config/project-tracker/data.json"

# Progress bar width in segments (1-200)
bar_width = 20

# Color output: auto, always, never (NO_COLOR=1 also disables color)
color = "auto"

# Diagnostics on stderr
log_level = "warn"       # debug, info, warn, error
log_format = "text"      # text, json, logfmt
log_timestamps = false
log_caller = false
`
}
