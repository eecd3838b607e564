package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

// isolate points every config lookup at an empty temporary home.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	for _, key := range []string{
		"PROJECT_TRACKER_CONFIG",
		"PROJECT_TRACKER_DATA",
		"PROJECT_TRACKER_BAR_WIDTH",
		"PROJECT_TRACKER_COLOR",
		"NO_COLOR",
		"PROJECT_TRACKER_LOG_LEVEL",
		"PROJECT_TRACKER_LOG_FORMAT",
		"PROJECT_TRACKER_LOG_TIMESTAMPS",
		"PROJECT_TRACKER_LOG_CALLER",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return home
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
}

func TestDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataFile != "" {
		t.Errorf("DataFile: got %q, want empty", cfg.DataFile)
	}
	if cfg.BarWidth != DefaultBarWidth {
		t.Errorf("BarWidth: got %d, want %d", cfg.BarWidth, DefaultBarWidth)
	}
	if cfg.Color != ColorAuto {
		t.Errorf("Color: got %q, want %q", cfg.Color, ColorAuto)
	}
	if cfg.LogLevel != DefaultLogLevel || cfg.LogFormat != DefaultLogFormat {
		t.Errorf("logging: got %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.ConfigFile != "" {
		t.Errorf("ConfigFile: got %q, want empty", cfg.ConfigFile)
	}
}

func TestLoadUserConfigFile(t *testing.T) {
	home := isolate(t)
	writeConfig(t, filepath.Join(home, ".config", "project-tracker", "config.toml"), `
bar_width = 30
color = "never"
data_file = "~/tracker/data.json"
log_level = "debug"
`)

	cfg, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BarWidth != 30 {
		t.Errorf("BarWidth: got %d, want 30", cfg.BarWidth)
	}
	if cfg.Color != ColorNever {
		t.Errorf("Color: got %q", cfg.Color)
	}
	if want := filepath.Join(home, "tracker", "data.json"); cfg.DataFile != want {
		t.Errorf("DataFile: got %q, want %q", cfg.DataFile, want)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q", cfg.LogLevel)
	}
	if !strings.HasSuffix(cfg.ConfigFile, "config.toml") {
		t.Errorf("ConfigFile: got %q", cfg.ConfigFile)
	}
}

func TestLoadXDGConfigFile(t *testing.T) {
	isolate(t)
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	writeConfig(t, filepath.Join(xdg, "project-tracker", "config.toml"), "bar_width = 12\n")

	cfg, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BarWidth != 12 {
		t.Errorf("BarWidth: got %d, want 12", cfg.BarWidth)
	}
}

func TestExplicitConfigMustExist(t *testing.T) {
	isolate(t)
	t.Setenv("PROJECT_TRACKER_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	if _, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), nil); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestConfigFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"syntax error", "bar_width = = 3", "loading user config file"},
		{"unknown key", "bar_widht = 3", "unknown keys: bar_widht"},
		{"wrong type", `bar_width = "wide"`, "loading user config file"},
		{"bar width too small", "bar_width = 0", "bar_width must be between"},
		{"bar width too large", "bar_width = 500", "bar_width must be between"},
		{"bad color", `color = "sometimes"`, "color must be one of"},
		{"bad log level", `log_level = "chatty"`, "invalid log_level"},
		{"bad log format", `log_format = "xml"`, "invalid log_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := filepath.Join(t.TempDir(), "config.toml")
			writeConfig(t, path, tt.content)
			t.Setenv("PROJECT_TRACKER_CONFIG", path)

			_, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("PROJECT_TRACKER_DATA", "/tmp/elsewhere.json")
	t.Setenv("PROJECT_TRACKER_BAR_WIDTH", "40")
	t.Setenv("PROJECT_TRACKER_LOG_LEVEL", "info")
	t.Setenv("PROJECT_TRACKER_LOG_FORMAT", "json")
	t.Setenv("PROJECT_TRACKER_LOG_TIMESTAMPS", "yes")
	t.Setenv("PROJECT_TRACKER_LOG_CALLER", "1")

	cfg, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataFile != "/tmp/elsewhere.json" {
		t.Errorf("DataFile: got %q", cfg.DataFile)
	}
	if cfg.BarWidth != 40 {
		t.Errorf("BarWidth: got %d", cfg.BarWidth)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Errorf("logging: got %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
	if !cfg.LogTimestamps || !cfg.LogCaller {
		t.Errorf("log flags: timestamps=%v caller=%v", cfg.LogTimestamps, cfg.LogCaller)
	}
}

func TestNoColorEnv(t *testing.T) {
	isolate(t)
	t.Setenv("NO_COLOR", "1")

	cfg, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Color != ColorNever {
		t.Errorf("NO_COLOR: got %q, want never", cfg.Color)
	}

	t.Setenv("PROJECT_TRACKER_COLOR", "always")
	cfg, err = Load(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Color != ColorAlways {
		t.Errorf("explicit color should win over NO_COLOR: got %q", cfg.Color)
	}
}

func TestFlagsOverrideEverything(t *testing.T) {
	home := isolate(t)
	writeConfig(t, filepath.Join(home, ".config", "project-tracker", "config.toml"), "bar_width = 30\n")
	t.Setenv("PROJECT_TRACKER_BAR_WIDTH", "40")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := Load(fs, []string{"-bar-width", "50", "-color", "ALWAYS", "list-projects"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BarWidth != 50 {
		t.Errorf("BarWidth: got %d, want 50", cfg.BarWidth)
	}
	if cfg.Color != ColorAlways {
		t.Errorf("Color: got %q, want always", cfg.Color)
	}
	if args := fs.Args(); len(args) != 1 || args[0] != "list-projects" {
		t.Errorf("remaining args: got %v", args)
	}
}

func TestLoadWithSources(t *testing.T) {
	home := isolate(t)
	writeConfig(t, filepath.Join(home, ".config", "project-tracker", "config.toml"), "bar_width = 30\ncolor = \"never\"\n")
	t.Setenv("PROJECT_TRACKER_LOG_LEVEL", "error")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cws, err := LoadWithSources(fs, []string{"-color", "always"})
	if err != nil {
		t.Fatalf("LoadWithSources failed: %v", err)
	}

	want := map[string]ConfigSource{
		"data_file":      SourceDefault,
		"bar_width":      SourceUserFile,
		"color":          SourceFlag,
		"log_level":      SourceEnv,
		"log_format":     SourceDefault,
		"log_timestamps": SourceDefault,
		"log_caller":     SourceDefault,
	}
	for field, source := range want {
		if got := cws.Sources[field]; got != source {
			t.Errorf("source of %s: got %q, want %q", field, got, source)
		}
	}
	if cws.Config.BarWidth != 30 || cws.Config.Color != ColorAlways {
		t.Errorf("config: got %+v", cws.Config)
	}
}

func TestExampleConfigParses(t *testing.T) {
	cfg := &Config{}
	md, err := toml.Decode(ExampleConfig(), cfg)
	if err != nil {
		t.Fatalf("example config does not parse: %v", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		t.Errorf("example config has unknown keys: %v", undecoded)
	}

	defaults := &Config{}
	setDefaults(defaults)
	if *cfg != *defaults {
		t.Errorf("example config drifted from defaults:\n got %+v\nwant %+v", cfg, defaults)
	}
}

func TestExpandPath(t *testing.T) {
	home := isolate(t)
	t.Setenv("TRACKER_TEST_DIR", "/srv/tracker")

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/data.json", filepath.Join(home, "data.json")},
		{"$TRACKER_TEST_DIR/data.json", "/srv/tracker/data.json"},
		{"/abs/data.json", "/abs/data.json"},
		{"relative.json", "relative.json"},
	}
	for _, tt := range tests {
		if got := expandPath(tt.in); got != tt.want {
			t.Errorf("expandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUserConfigPath(t *testing.T) {
	home := isolate(t)
	if got, want := UserConfigPath(), filepath.Join(home, ".config", "project-tracker", "config.toml"); got != want {
		t.Errorf("UserConfigPath: got %q, want %q", got, want)
	}
	t.Setenv("PROJECT_TRACKER_CONFIG", "/etc/tracker.toml")
	if got := UserConfigPath(); got != "/etc/tracker.toml" {
		t.Errorf("UserConfigPath with override: got %q", got)
	}
}
