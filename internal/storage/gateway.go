// Package storage is the single point of contact with the data file.
//
// A Gateway is bound to one path at construction; it never consults ambient
// state. Load and Save perform blocking, unlocked file I/O. Two processes
// racing on the same file get last-writer-wins behavior.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/nibzard/project-tracker/internal/logging"
	"github.com/nibzard/project-tracker/internal/tracker"
	"github.com/nibzard/project-tracker/internal/trackerdir"
)

// Gateway reads and writes the collection at a fixed path.
type Gateway struct {
	path   string
	logger *log.Logger
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithLogger attaches a logger for debug tracing.
func WithLogger(logger *log.Logger) Option {
	return func(g *Gateway) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New creates a Gateway for path.
func New(path string, opts ...Option) *Gateway {
	g := &Gateway{
		path:   path,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Path returns the data file path.
func (g *Gateway) Path() string {
	return g.path
}

// ResolveLocation returns the data file path and makes sure its directory
// exists. An empty override selects ~/.config/project-tracker/data.json;
// failing to find the home directory is an environment error.
func ResolveLocation(override string) (string, error) {
	path := override
	if path == "" {
		home, err := trackerdir.Home()
		if err != nil {
			return "", fmt.Errorf("resolve data location: %w", err)
		}
		path = trackerdir.DataPath(home)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return path, nil
}

// Load reads and decodes the data file, creating it empty if missing.
// A *tracker.MalformedDataError from the codec is returned unchanged.
func (g *Gateway) Load() (tracker.Collection, error) {
	file, err := os.OpenFile(g.path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}

	c, err := tracker.Decode(data)
	if err != nil {
		g.logger.Debug("data file is malformed", "path", g.path, "err", err)
		return nil, err
	}

	g.logger.Debug("loaded collection", "path", g.path, "bytes", len(data), "projects", len(c))
	return c, nil
}

// Save replaces the data file with the full encoding of c and syncs it.
// The file is truncated before writing; there is no backup copy.
func (g *Gateway) Save(c tracker.Collection) error {
	data, err := tracker.Encode(c)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(g.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("open data file: %w", err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("write data file: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return fmt.Errorf("sync data file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close data file: %w", err)
	}

	g.logger.Debug("saved collection", "path", g.path, "bytes", len(data), "projects", len(c))
	return nil
}

// Update runs one read-modify-write cycle. fn reports whether it changed
// the collection; the file is only rewritten when it did.
func (g *Gateway) Update(fn func(c *tracker.Collection) bool) (tracker.Collection, error) {
	c, err := g.Load()
	if err != nil {
		return nil, err
	}
	if !fn(&c) {
		g.logger.Debug("collection unchanged, skipping save", "path", g.path)
		return c, nil
	}
	if err := g.Save(c); err != nil {
		return nil, err
	}
	return c, nil
}
