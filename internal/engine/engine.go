// Package engine provides the core orchestration for release generation.
//
// The engine sequences the per-template pipeline: discover publishable
// manifests, resolve each template's dependency closure, classify and copy
// the resolved files into the release layout, rewrite references in the
// copied entry files, and roll back the release directory when a template
// fails structurally. Templates are processed sequentially and
// independently; no template's failure affects another.
package engine

import (
	"fmt"
	"path/filepath"

	"github.com/texpack/texpack/internal/clock"
	"github.com/texpack/texpack/internal/config"
	"github.com/texpack/texpack/internal/fsops"
	"github.com/texpack/texpack/internal/manifest"
)

// Engine orchestrates release generation.
// It is the main API surface called by the CLI.
type Engine struct {
	fs    fsops.FS
	clock clock.Clock
	cfg   *config.Config
}

// New creates a new Engine with the given dependencies.
func New(fsys fsops.FS, clk clock.Clock, cfg *config.Config) *Engine {
	return &Engine{
		fs:    fsys,
		clock: clk,
		cfg:   cfg,
	}
}

// publishable is a discovered template directory with its parsed manifest.
type publishable struct {
	dir string
	m   *manifest.Manifest
}

// discoverPublishable walks root for manifests and keeps the directories
// whose manifest sets publish. Malformed manifests produce warnings and are
// treated as unpublished.
func (e *Engine) discoverPublishable(root string) ([]publishable, []string, error) {
	skip := append([]string{}, e.cfg.SkipDirs...)
	skip = append(skip, filepath.Base(e.cfg.OutputDir))

	dirs, err := manifest.Discover(root, e.cfg.ManifestName, skip)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to discover manifests: %w", err)
	}

	var found []publishable
	var warnings []string
	for _, dir := range dirs {
		m, warning := manifest.LoadLenient(e.fs, filepath.Join(dir, e.cfg.ManifestName))
		if warning != "" {
			warnings = append(warnings, warning)
		}
		if m.Publish {
			found = append(found, publishable{dir: dir, m: m})
		}
	}
	return found, warnings, nil
}

// entryFile locates the template's main document file: the file named after
// the directory with the first matching entry extension, falling back to
// the first file carrying any entry extension.
func (e *Engine) entryFile(dir string) (string, bool) {
	name := filepath.Base(dir)
	for _, ext := range e.cfg.EntryExtensions {
		candidate := filepath.Join(dir, name+ext)
		if ok, _ := e.fs.Exists(candidate); ok {
			return candidate, true
		}
	}

	entries, err := e.fs.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, ext := range e.cfg.EntryExtensions {
		for _, entry := range entries {
			if !entry.IsDir() && filepath.Ext(entry.Name()) == ext {
				return filepath.Join(dir, entry.Name()), true
			}
		}
	}
	return "", false
}
