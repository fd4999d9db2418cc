// Package cleaner removes generated build and cache output from a project tree.
//
// Removal is unconditional and irreversible once an entry matches. Nothing
// outside the project root and the first level of plugin folders is visited.
package cleaner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Reporter receives cleanup progress
type Reporter interface {
	Removed(path string, dryRun bool)
	Warning(format string, args ...any)
}

// Options configure what a Cleaner removes
type Options struct {
	SolutionExtension   string
	PluginsDirectory    string
	ArtifactDirectories []string
	DryRun              bool
}

// Summary lists what a project cleanup removed
type Summary struct {
	Removed         []string
	PluginsScanned  int
	PluginsDirFound bool
}

// Cleaner deletes artifact directories and solution files
type Cleaner struct {
	reporter  Reporter
	artifacts map[string]struct{}
	opts      Options
}

// New creates a cleaner. Artifact names are copied into a lookup set, so
// later changes to opts do not affect it.
func New(opts Options, reporter Reporter) *Cleaner {
	artifacts := make(map[string]struct{}, len(opts.ArtifactDirectories))
	for _, name := range opts.ArtifactDirectories {
		artifacts[name] = struct{}{}
	}

	if reporter == nil {
		reporter = nopReporter{}
	}

	return &Cleaner{reporter: reporter, artifacts: artifacts, opts: opts}
}

// IsArtifact reports whether a directory name is removable output
func (c *Cleaner) IsArtifact(name string) bool {
	_, ok := c.artifacts[name]
	return ok
}

// IsSolution reports whether a file name carries the solution extension
func (c *Cleaner) IsSolution(name string) bool {
	return c.opts.SolutionExtension != "" &&
		strings.EqualFold(filepath.Ext(name), c.opts.SolutionExtension)
}

// ClearDirectory removes matching immediate children of path and returns
// the removed paths. Non-matching subdirectories are not entered.
func (c *Cleaner) ClearDirectory(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}

	var removed []string
	for _, entry := range entries {
		fullPath := filepath.Join(path, entry.Name())

		switch {
		case entry.IsDir():
			if !c.IsArtifact(entry.Name()) {
				continue
			}
			if err := c.remove(fullPath, os.RemoveAll); err != nil {
				return removed, err
			}
		case entry.Type().IsRegular():
			if !c.IsSolution(entry.Name()) {
				continue
			}
			if err := c.remove(fullPath, os.Remove); err != nil {
				return removed, err
			}
		default:
			continue
		}

		removed = append(removed, fullPath)
	}

	return removed, nil
}

func (c *Cleaner) remove(path string, fn func(string) error) error {
	if !c.opts.DryRun {
		if err := fn(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}
	c.reporter.Removed(path, c.opts.DryRun)
	return nil
}

// CleanProject clears the directory holding projectFile and each folder
// directly under its plugins directory. A missing plugins directory is
// reported and is not an error.
func (c *Cleaner) CleanProject(projectFile string) (*Summary, error) {
	rootPath := filepath.Dir(projectFile)
	summary := &Summary{}

	removed, err := c.ClearDirectory(rootPath)
	summary.Removed = append(summary.Removed, removed...)
	if err != nil {
		return summary, err
	}

	pluginPath := filepath.Join(rootPath, c.opts.PluginsDirectory)
	entries, err := os.ReadDir(pluginPath)
	if errors.Is(err, os.ErrNotExist) {
		c.reporter.Warning("Can't find plugins directory : %s", pluginPath)
		return summary, nil
	}
	if err != nil {
		return summary, fmt.Errorf("failed to read plugins directory %s: %w", pluginPath, err)
	}
	summary.PluginsDirFound = true

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		removed, err := c.ClearDirectory(filepath.Join(pluginPath, entry.Name()))
		summary.Removed = append(summary.Removed, removed...)
		summary.PluginsScanned++
		if err != nil {
			return summary, err
		}
	}

	return summary, nil
}

type nopReporter struct{}

func (nopReporter) Removed(string, bool)   {}
func (nopReporter) Warning(string, ...any) {}
