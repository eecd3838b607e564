// Package render writes the user-facing output of every command.
//
// Styling goes through a lipgloss renderer bound to the output writer, so
// color is decided per writer rather than from the process's stdout. With
// color disabled every method produces plain text.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/nibzard/project-tracker/internal/tracker"
)

const (
	filledSegment = "█"
	emptySegment  = " "
	doneMark      = "[x]"
	openMark      = "[ ]"
)

// Options configures a Renderer.
type Options struct {
	BarWidth int
	Color    bool
}

// Renderer writes command output to a single writer.
type Renderer struct {
	w        io.Writer
	barWidth int

	bar     lipgloss.Style
	percent lipgloss.Style
	done    lipgloss.Style
	open    lipgloss.Style
}

// New creates a Renderer writing to w.
func New(w io.Writer, opts Options) *Renderer {
	profile := termenv.Ascii
	if opts.Color {
		profile = termenv.ANSI
	}
	lr := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	lr.SetColorProfile(profile)

	width := opts.BarWidth
	if width < 1 {
		width = DefaultBarWidth
	}

	return &Renderer{
		w:        w,
		barWidth: width,
		bar:      lr.NewStyle().Foreground(lipgloss.Color("2")),
		percent:  lr.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		done:     lr.NewStyle().Foreground(lipgloss.Color("2")),
		open:     lr.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ColorEnabled resolves a color mode (auto, always, never) for w.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return IsTerminal(w)
	}
}

func (r *Renderer) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(r.w, format, args...)
	return err
}

// ProjectAdded reports the outcome of adding a project.
func (r *Renderer) ProjectAdded(name string, outcome tracker.Outcome) error {
	if outcome == tracker.OutcomeProjectExists {
		return r.printf("Project with name '%s' already exists.\n", name)
	}
	return r.printf("Project '%s' added\n", name)
}

// ProjectNames lists project names in order.
func (r *Renderer) ProjectNames(names []string) error {
	if len(names) == 0 {
		return r.printf("No projects found\n")
	}
	var b strings.Builder
	b.WriteString("Projects:\n")
	for _, name := range names {
		fmt.Fprintf(&b, " - %s\n", name)
	}
	return r.printf("%s", b.String())
}

// TaskAdded reports the outcome of adding a task.
func (r *Renderer) TaskAdded(project string, task tracker.Task, outcome tracker.Outcome) error {
	switch outcome {
	case tracker.OutcomeProjectNotFound:
		return r.projectNotFound(project)
	case tracker.OutcomeTaskIDsExhausted:
		return r.printf("Project '%s' has no task ids left.\n", project)
	}
	return r.printf("Task %s added to project: '%s'.\n", task.Description, project)
}

// Tasks lists the tasks of one project.
func (r *Renderer) Tasks(project string, tasks []tracker.Task, outcome tracker.Outcome) error {
	if outcome == tracker.OutcomeProjectNotFound {
		return r.projectNotFound(project)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Tasks in project: %s:\n", project)
	if len(tasks) == 0 {
		b.WriteString("    No tasks yet\n")
	}
	for _, t := range tasks {
		mark := openMark
		if t.Completed {
			mark = doneMark
		}
		fmt.Fprintf(&b, "    %s %d: %s\n", mark, t.ID, t.Description)
	}
	return r.printf("%s", b.String())
}

// TaskCompleted reports the outcome of completing a task.
func (r *Renderer) TaskCompleted(project string, id int, outcome tracker.Outcome) error {
	switch outcome {
	case tracker.OutcomeProjectNotFound:
		return r.projectNotFound(project)
	case tracker.OutcomeTaskNotFound:
		return r.printf("Task %d not found in project '%s'.\n", id, project)
	case tracker.OutcomeAlreadyCompleted:
		return r.printf("Task %d is already completed!\n", id)
	default:
		return r.printf("Task %d in project '%s' is now completed!\n", id, project)
	}
}

func (r *Renderer) projectNotFound(project string) error {
	return r.printf("Project '%s' not found.\n", project)
}

// All writes every project with its progress bar and tasks.
func (r *Renderer) All(c tracker.Collection) error {
	if len(c) == 0 {
		return r.printf("No projects found.\n")
	}

	var b strings.Builder
	b.WriteString("Projects:\n")
	for _, s := range c.Summaries() {
		p := s.Project
		fmt.Fprintf(&b, "Project: \"%s\"\n", p.Name)
		fmt.Fprintf(&b, "Progress: %s\n", r.Progress(s.Completed, s.Total))
		if len(p.Tasks) == 0 {
			b.WriteString("    No tasks yet.\n")
		}
		for _, t := range p.Tasks {
			fmt.Fprintf(&b, "    %s %d: %s\n", r.Mark(t.Completed), t.ID, t.Description)
		}
		b.WriteString("\n")
	}
	return r.printf("%s", b.String())
}

// Progress formats a bar as "[<segments>] <percent>%".
func (r *Renderer) Progress(completed, total int) string {
	bar := ProgressBar(completed, total, r.barWidth)
	filled := ""
	if bar.Filled > 0 {
		filled = r.bar.Render(strings.Repeat(filledSegment, bar.Filled))
	}
	return fmt.Sprintf("[%s%s] %s%%",
		filled,
		strings.Repeat(emptySegment, bar.Empty),
		r.percent.Render(fmt.Sprint(bar.Percent)),
	)
}

// Mark returns the styled checkbox for a task state.
func (r *Renderer) Mark(completed bool) string {
	if completed {
		return r.done.Render(doneMark)
	}
	return r.open.Render(openMark)
}
