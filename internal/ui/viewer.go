// Package ui provides the optional interactive terminal viewer.
package ui

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/project-tracker/internal/render"
	"github.com/nibzard/project-tracker/internal/tracker"
)

// Source supplies the collection to display.
type Source interface {
	Load() (tracker.Collection, error)
	Path() string
}

// Run starts the read-only viewer on stdout.
func Run(ctx context.Context, src Source, opts render.Options) error {
	if !render.IsTerminal(os.Stdout) {
		return fmt.Errorf("view requires a TTY")
	}
	model := newViewerModel(src, render.New(os.Stdout, opts))
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type viewerModel struct {
	src      Source
	r        *render.Renderer
	data     tracker.Collection
	loadErr  error
	cursor   int
	expanded map[int]bool
	showHelp bool
}

func newViewerModel(src Source, r *render.Renderer) *viewerModel {
	return &viewerModel{
		src:      src,
		r:        r,
		expanded: make(map[int]bool),
	}
}

func (m *viewerModel) Init() tea.Cmd {
	m.refresh()
	return nil
}

func (m *viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.data)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(m.data) > 0 {
			m.expanded[m.cursor] = !m.expanded[m.cursor]
		}
	case "r", "f5":
		m.refresh()
	case "h", "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *viewerModel) View() string {
	var b strings.Builder
	writeTitle(&b)

	if m.showHelp {
		writeHelp(&b)
		writeFooter(&b)
		return b.String()
	}

	if m.loadErr != nil {
		b.WriteString("Error loading data file:\n")
		b.WriteString("  " + m.loadErr.Error() + "\n\n")
		writeFooter(&b)
		return b.String()
	}

	m.writeProjects(&b)
	fmt.Fprintf(&b, "Data File: %s\n\n", m.src.Path())
	writeFooter(&b)
	return b.String()
}

// refresh reloads the collection, keeping the cursor in range.
func (m *viewerModel) refresh() {
	c, err := m.src.Load()
	if err != nil {
		m.loadErr = err
		m.data = nil
		return
	}
	m.loadErr = nil
	m.data = c
	if m.cursor >= len(c) {
		m.cursor = len(c) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	for i := range m.expanded {
		if i >= len(c) {
			delete(m.expanded, i)
		}
	}
}

func (m *viewerModel) writeProjects(b *strings.Builder) {
	if len(m.data) == 0 {
		b.WriteString("No projects found.\n\n")
		return
	}

	nameWidth := 0
	for _, p := range m.data {
		if len(p.Name) > nameWidth {
			nameWidth = len(p.Name)
		}
	}

	for i, s := range m.data.Summaries() {
		p := s.Project
		pointer := " "
		if i == m.cursor {
			pointer = ">"
		}
		fmt.Fprintf(b, "%s %-*s  %s  (%d/%d)\n",
			pointer, nameWidth, p.Name,
			m.r.Progress(s.Completed, s.Total),
			s.Completed, s.Total)

		if !m.expanded[i] {
			continue
		}
		if len(p.Tasks) == 0 {
			b.WriteString("      No tasks yet.\n")
		}
		for _, t := range p.Tasks {
			fmt.Fprintf(b, "      %s %d: %s\n", m.r.Mark(t.Completed), t.ID, t.Description)
		}
	}
	b.WriteString("\n")
}

func writeTitle(b *strings.Builder) {
	title := "Project Tracker"
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  q, ctrl+c    Quit\n")
	b.WriteString("  up, k        Move up\n")
	b.WriteString("  down, j      Move down\n")
	b.WriteString("  enter        Expand or collapse tasks\n")
	b.WriteString("  r, F5        Reload data\n")
	b.WriteString("  h, ?         Toggle this help screen\n\n")
}

func writeFooter(b *strings.Builder) {
	b.WriteString("Press h for help | q to quit\n")
}
