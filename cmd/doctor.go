package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/nibzard/project-tracker/internal/config"
	"github.com/nibzard/project-tracker/internal/storage"
	"github.com/nibzard/project-tracker/internal/tracker"
)

// doctorCommand checks the config, the data file and the collection invariants.
func (a *app) doctorCommand(args []string) error {
	if err := expectArgs(args, 0, "doctor"); err != nil {
		return err
	}
	w := a.stdout

	fmt.Fprintln(w, "Project Tracker Doctor")
	fmt.Fprintln(w, "======================")
	fmt.Fprintln(w)

	allOK := true

	fmt.Fprintln(w, "Config:")
	if a.cfg.ConfigFile != "" {
		fmt.Fprintf(w, "  ✅ Config file: %s\n", a.cfg.ConfigFile)
	} else {
		fmt.Fprintf(w, "  ✅ Config file: none (would be read from %s)\n", config.UserConfigPath())
	}
	if err := a.cfg.Validate(); err != nil {
		fmt.Fprintf(w, "  ❌ %v\n", err)
		allOK = false
	} else {
		fmt.Fprintf(w, "  ✅ Bar width: %d, color: %s\n", a.cfg.BarWidth, a.cfg.Color)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Data file:")
	path, err := storage.ResolveLocation(a.cfg.DataFile)
	if err != nil {
		fmt.Fprintf(w, "  ❌ %v\n", err)
		fmt.Fprintln(w)
		return doctorResult(w, false)
	}
	fmt.Fprintf(w, "  Path: %s\n", path)

	c, err := storage.New(path, storage.WithLogger(a.logger)).Load()
	var malformed *tracker.MalformedDataError
	switch {
	case errors.As(err, &malformed):
		fmt.Fprintln(w, "  ❌ Malformed data:")
		for _, e := range malformed.Errors {
			fmt.Fprintf(w, "     - %v\n", e)
		}
		fmt.Fprintln(w)
		return doctorResult(w, false)
	case err != nil:
		fmt.Fprintf(w, "  ❌ %v\n", err)
		fmt.Fprintln(w)
		return doctorResult(w, false)
	}

	completed, total := 0, 0
	for _, s := range c.Summaries() {
		completed += s.Completed
		total += s.Total
	}
	fmt.Fprintf(w, "  ✅ Valid (%d projects, %d/%d tasks completed)\n", len(c), completed, total)

	if problems := c.Check(); len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintf(w, "  ❌ %v\n", p)
		}
		allOK = false
	} else {
		fmt.Fprintln(w, "  ✅ Names unique, task ids unique and increasing")
	}
	fmt.Fprintln(w)

	return doctorResult(w, allOK)
}

func doctorResult(w io.Writer, ok bool) error {
	if ok {
		fmt.Fprintln(w, "✅ All checks passed.")
		return nil
	}
	fmt.Fprintln(w, "⚠️  Some checks failed. project-tracker may not function correctly.")
	return fmt.Errorf("doctor checks failed")
}
