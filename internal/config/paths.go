package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/nibzard/project-tracker/internal/trackerdir"
)

// expandPath expands a leading ~ and environment variables in p.
// A path that needs the home directory is returned unexpanded when the home
// directory is unknown; resolving the data file then fails loudly later.
func expandPath(p string) string {
	if p == "" {
		return p
	}

	expanded := os.ExpandEnv(p)
	if expanded == "~" {
		if home, err := trackerdir.Home(); err == nil {
			return home
		}
		return expanded
	}
	if strings.HasPrefix(expanded, "~/") || (runtime.GOOS == "windows" && strings.HasPrefix(expanded, "~\\")) {
		if home, err := trackerdir.Home(); err == nil {
			return filepath.Join(home, expanded[2:])
		}
	}
	return expanded
}

func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}
