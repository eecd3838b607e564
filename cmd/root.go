// Package cmd implements the CLI command structure for project-tracker.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/nibzard/project-tracker/internal/config"
	"github.com/nibzard/project-tracker/internal/logging"
	"github.com/nibzard/project-tracker/internal/render"
	"github.com/nibzard/project-tracker/internal/storage"
	"github.com/nibzard/project-tracker/internal/tracker"
	"github.com/nibzard/project-tracker/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// ErrUsage marks errors caused by bad command-line arguments.
var ErrUsage = errors.New("usage")

// Run executes the project-tracker CLI.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout, os.Stderr)
}

// app carries the per-invocation state shared by commands.
type app struct {
	cfg     *config.Config
	sources map[string]config.ConfigSource
	stdout  io.Writer
	stderr  io.Writer
	logger  *log.Logger
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("project-tracker", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		printUsage(fs, stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, stdout)
		return nil
	}

	a := &app{
		cfg:     cws.Config,
		sources: cws.Sources,
		stdout:  stdout,
		stderr:  stderr,
		logger: logging.NewFromConfig(stderr, cws.Config.LogLevel, cws.Config.LogFormat,
			cws.Config.LogTimestamps, cws.Config.LogCaller),
	}
	if *showVersion {
		return a.versionCommand()
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		return a.listAllCommand(nil)
	}
	subcommand, remaining := remaining[0], remaining[1:]
	a.logger.Debug("dispatching command", "command", subcommand, "args", len(remaining))

	switch subcommand {
	case "add-project":
		return a.addProjectCommand(remaining)
	case "list-projects":
		return a.listProjectsCommand(remaining)
	case "add-task":
		return a.addTaskCommand(remaining)
	case "list-tasks":
		return a.listTasksCommand(remaining)
	case "complete-task":
		return a.completeTaskCommand(remaining)
	case "list":
		return a.listAllCommand(remaining)
	case "view":
		return a.viewCommand(ctx, remaining)
	case "doctor":
		return a.doctorCommand(remaining)
	case "config":
		return a.configCommand(remaining)
	case "version":
		return a.versionCommand()
	case "help":
		printUsage(fs, stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, stderr)
		return fmt.Errorf("%w: unknown command: %s", ErrUsage, subcommand)
	}
}

// usageError reports a malformed invocation of one command.
func usageError(synopsis string) error {
	return fmt.Errorf("%w: project-tracker %s", ErrUsage, synopsis)
}

func expectArgs(args []string, n int, synopsis string) error {
	if len(args) != n {
		return usageError(synopsis)
	}
	return nil
}

// gateway resolves the data file and binds a Gateway to it.
func (a *app) gateway() (*storage.Gateway, error) {
	path, err := storage.ResolveLocation(a.cfg.DataFile)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("resolved data file", "path", path)
	return storage.New(path, storage.WithLogger(a.logger)), nil
}

func (a *app) renderOptions() render.Options {
	return render.Options{
		BarWidth: a.cfg.BarWidth,
		Color:    render.ColorEnabled(a.cfg.Color, a.stdout),
	}
}

func (a *app) renderer() *render.Renderer {
	return render.New(a.stdout, a.renderOptions())
}

// load resolves the data file and reads the collection.
func (a *app) load() (tracker.Collection, error) {
	g, err := a.gateway()
	if err != nil {
		return nil, err
	}
	return g.Load()
}

// update resolves the data file and runs one read-modify-write cycle.
func (a *app) update(fn func(c *tracker.Collection) tracker.Outcome) (tracker.Outcome, error) {
	g, err := a.gateway()
	if err != nil {
		return 0, err
	}
	var outcome tracker.Outcome
	if _, err := g.Update(func(c *tracker.Collection) bool {
		outcome = fn(c)
		return outcome.Changed()
	}); err != nil {
		return 0, err
	}
	a.logger.Debug("command outcome", "outcome", outcome.String())
	return outcome, nil
}

func (a *app) addProjectCommand(args []string) error {
	if err := expectArgs(args, 1, "add-project <name>"); err != nil {
		return err
	}
	name := args[0]

	outcome, err := a.update(func(c *tracker.Collection) tracker.Outcome {
		return c.AddProject(name)
	})
	if err != nil {
		return err
	}
	return a.renderer().ProjectAdded(name, outcome)
}

func (a *app) listProjectsCommand(args []string) error {
	if err := expectArgs(args, 0, "list-projects"); err != nil {
		return err
	}
	c, err := a.load()
	if err != nil {
		return err
	}
	return a.renderer().ProjectNames(c.ProjectNames())
}

func (a *app) addTaskCommand(args []string) error {
	if err := expectArgs(args, 2, "add-task <project> <description>"); err != nil {
		return err
	}
	project, description := args[0], args[1]

	var task tracker.Task
	outcome, err := a.update(func(c *tracker.Collection) tracker.Outcome {
		var o tracker.Outcome
		task, o = c.AddTask(project, description)
		return o
	})
	if err != nil {
		return err
	}
	return a.renderer().TaskAdded(project, task, outcome)
}

func (a *app) listTasksCommand(args []string) error {
	if err := expectArgs(args, 1, "list-tasks <project>"); err != nil {
		return err
	}
	project := args[0]

	c, err := a.load()
	if err != nil {
		return err
	}
	tasks, outcome := c.Tasks(project)
	return a.renderer().Tasks(project, tasks, outcome)
}

func (a *app) completeTaskCommand(args []string) error {
	const synopsis = "complete-task <project> <task_id>"
	if err := expectArgs(args, 2, synopsis); err != nil {
		return err
	}
	project := args[0]
	id, err := parseTaskID(args[1])
	if err != nil {
		return err
	}

	outcome, err := a.update(func(c *tracker.Collection) tracker.Outcome {
		return c.CompleteTask(project, id)
	})
	if err != nil {
		return err
	}
	return a.renderer().TaskCompleted(project, id, outcome)
}

// parseTaskID accepts an unsigned 32-bit task id.
func parseTaskID(s string) (int, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid task_id %q: expected a non-negative integer", ErrUsage, s)
	}
	return int(id), nil
}

func (a *app) listAllCommand(args []string) error {
	if err := expectArgs(args, 0, "list"); err != nil {
		return err
	}
	c, err := a.load()
	if err != nil {
		return err
	}
	return a.renderer().All(c)
}

func (a *app) viewCommand(ctx context.Context, args []string) error {
	if err := expectArgs(args, 0, "view"); err != nil {
		return err
	}
	g, err := a.gateway()
	if err != nil {
		return err
	}
	return ui.Run(ctx, g, a.renderOptions())
}

// versionCommand prints version information.
func (a *app) versionCommand() error {
	fmt.Fprintf(a.stdout, "project-tracker version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "project-tracker - Track projects and their tasks from the terminal")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  project-tracker [options] [command] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  add-project <name>                   Add a new project")
	fmt.Fprintln(w, "  list-projects                        List project names")
	fmt.Fprintln(w, "  add-task <project> <description>     Add a task to a project")
	fmt.Fprintln(w, "  list-tasks <project>                 List the tasks of a project")
	fmt.Fprintln(w, "  complete-task <project> <task_id>    Mark a task as completed")
	fmt.Fprintln(w, "  list                                 List all projects with progress (default)")
	fmt.Fprintln(w, "  view                                 Launch the interactive viewer")
	fmt.Fprintln(w, "  doctor                               Check config and data file validity")
	fmt.Fprintln(w, "  config [-example]                    Show effective configuration")
	fmt.Fprintln(w, "  version                              Show version information")
	fmt.Fprintln(w, "  help                                 Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}
