package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nibzard/project-tracker/internal/trackerdir"
)

// findUserConfigFile looks for a user-level config file.
// An explicit PROJECT_TRACKER_CONFIG must exist; the implicit locations are
// skipped silently when absent. Returns empty string if none exist.
func findUserConfigFile() (string, error) {
	if explicit := os.Getenv("PROJECT_TRACKER_CONFIG"); explicit != "" {
		path := expandPath(explicit)
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config file from PROJECT_TRACKER_CONFIG: %w", err)
		}
		return path, nil
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		path := filepath.Join(xdg, trackerdir.Dir, trackerdir.DefaultConfigFile)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	home, err := trackerdir.Home()
	if err != nil {
		return "", nil
	}
	path := trackerdir.ConfigPath(home)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	return "", nil
}

// UserConfigPath returns the config file path that would be used when no
// file exists yet, or empty string without a home directory.
func UserConfigPath() string {
	if explicit := os.Getenv("PROJECT_TRACKER_CONFIG"); explicit != "" {
		return expandPath(explicit)
	}
	home, err := trackerdir.Home()
	if err != nil {
		return ""
	}
	return trackerdir.ConfigPath(home)
}
