package cmd

import (
	"flag"
	"fmt"

	"github.com/nibzard/project-tracker/internal/config"
	"github.com/nibzard/project-tracker/internal/trackerdir"
)

// configCommand prints the effective configuration with the source of each
// value, or an example config file.
func (a *app) configCommand(args []string) error {
	fs := flag.NewFlagSet("project-tracker config", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	example := fs.Bool("example", false, "Print an example config file")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return usageError("config [-example]")
	}

	if *example {
		fmt.Fprint(a.stdout, config.ExampleConfig())
		return nil
	}

	cfg := a.cfg
	dataFile := cfg.DataFile
	if dataFile == "" {
		if home, err := trackerdir.Home(); err == nil {
			dataFile = trackerdir.DataPath(home)
		}
	}

	w := a.stdout
	if cfg.ConfigFile != "" {
		fmt.Fprintf(w, "# Config file: %s\n", cfg.ConfigFile)
	} else {
		fmt.Fprintln(w, "# Config file: none")
	}
	fmt.Fprintf(w, "data_file = %q  # %s\n", dataFile, a.sources["data_file"])
	fmt.Fprintf(w, "bar_width = %d  # %s\n", cfg.BarWidth, a.sources["bar_width"])
	fmt.Fprintf(w, "color = %q  # %s\n", cfg.Color, a.sources["color"])
	fmt.Fprintf(w, "log_level = %q  # %s\n", cfg.LogLevel, a.sources["log_level"])
	fmt.Fprintf(w, "log_format = %q  # %s\n", cfg.LogFormat, a.sources["log_format"])
	fmt.Fprintf(w, "log_timestamps = %t  # %s\n", cfg.LogTimestamps, a.sources["log_timestamps"])
	fmt.Fprintf(w, "log_caller = %t  # %s\n", cfg.LogCaller, a.sources["log_caller"])
	return nil
}
