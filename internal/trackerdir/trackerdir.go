// Package trackerdir provides constants and utilities for the project-tracker state directory.
package trackerdir

import (
	"errors"
	"os"
	"path/filepath"
)

const (
	// ConfigRoot is the per-user configuration root, relative to the home directory.
	ConfigRoot = ".config"

	// Dir is the name of the project-tracker state directory (inside ConfigRoot).
	Dir = "project-tracker"

	// DefaultDataFile is the data file name (inside Dir).
	DefaultDataFile = "data.json"

	// DefaultConfigFile is the config file name (inside Dir).
	DefaultConfigFile = "config.toml"
)

// ErrNoHome is returned when the user's home directory cannot be determined.
var ErrNoHome = errors.New("could not determine home directory")

// Home returns the invoking user's home directory.
func Home() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", ErrNoHome
	}
	return home, nil
}

// DirPath returns the state directory for the given home directory.
func DirPath(home string) string {
	return filepath.Join(home, ConfigRoot, Dir)
}

// DataPath returns the full path to the data file for the given home directory.
func DataPath(home string) string {
	return filepath.Join(DirPath(home), DefaultDataFile)
}

// ConfigPath returns the full path to the config file for the given home directory.
func ConfigPath(home string) string {
	return filepath.Join(DirPath(home), DefaultConfigFile)
}
