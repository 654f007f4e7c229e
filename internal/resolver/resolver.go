// Package resolver computes the transitive dependency closure of a
// template's manifest graph.
//
// Resolution is a depth-first walk over manifest directories. A visited set
// keyed by canonical directory path guards against cycles and repeated
// work: each manifest directory is expanded at most once per pass, so a
// graph A→B→A terminates with the union of both manifests' declarations.
package resolver

import (
	"path/filepath"
	"sort"

	"github.com/texpack/texpack/internal/fsops"
	"github.com/texpack/texpack/internal/manifest"
)

// Closure is the set of absolute paths a template needs to be
// self-contained. It has set semantics; callers must not rely on any
// particular enumeration order.
type Closure map[string]struct{}

// Sorted returns the closure's paths in lexical order, for deterministic
// copying and reporting.
func (c Closure) Sorted() []string {
	paths := make([]string, 0, len(c))
	for p := range c {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Resolver expands manifest dependency graphs into closures.
type Resolver struct {
	fs           fsops.FS
	manifestName string
	sharedRoot   string
	extensions   []string
}

// New creates a Resolver. sharedRoot is the name of the project-level
// shared-dependency directory (used by validation); extensions is the
// ordered probe list tried when a declared path does not exist as written.
func New(fsys fsops.FS, manifestName, sharedRoot string, extensions []string) *Resolver {
	return &Resolver{
		fs:           fsys,
		manifestName: manifestName,
		sharedRoot:   sharedRoot,
		extensions:   extensions,
	}
}

// Resolve computes the full dependency closure for the manifest m declared
// in dir (absolute). It returns the closure, any non-fatal warnings from
// malformed sub-manifests, and the first structural error encountered
// (validation failure or missing dependency). A structural error aborts
// resolution for this template only.
func (r *Resolver) Resolve(dir string, m *manifest.Manifest) (Closure, []string, error) {
	closure := Closure{}
	visited := map[string]struct{}{}
	var warnings []string

	if err := r.resolve(filepath.Clean(dir), m, closure, visited, &warnings); err != nil {
		return nil, warnings, err
	}
	return closure, warnings, nil
}

func (r *Resolver) resolve(dir string, m *manifest.Manifest, closure Closure, visited map[string]struct{}, warnings *[]string) error {
	if _, ok := visited[dir]; ok {
		return nil
	}
	visited[dir] = struct{}{}

	for _, decl := range m.Dependencies {
		if err := ValidateDeclaration(decl, dir, r.sharedRoot); err != nil {
			return err
		}

		resolved, err := r.probe(dir, decl)
		if err != nil {
			return err
		}
		closure[resolved] = struct{}{}

		// A dependency directory may carry its own manifest; expand it.
		depDir := filepath.Dir(resolved)
		if _, seen := visited[depDir]; seen {
			continue
		}
		if !manifest.Exists(r.fs, depDir, r.manifestName) {
			continue
		}
		sub, warning := manifest.LoadLenient(r.fs, filepath.Join(depDir, r.manifestName))
		if warning != "" {
			*warnings = append(*warnings, warning)
		}
		if err := r.resolve(depDir, sub, closure, visited, warnings); err != nil {
			return err
		}
	}

	return nil
}

// probe resolves decl against dir, trying the bare path first and then each
// configured extension in order. Exactly one probe sequence runs per
// declaration.
func (r *Resolver) probe(dir, decl string) (string, error) {
	bare := filepath.Clean(filepath.Join(dir, decl))
	probed := []string{bare}

	if ok, _ := r.fs.Exists(bare); ok {
		return bare, nil
	}
	for _, ext := range r.extensions {
		candidate := bare + ext
		probed = append(probed, candidate)
		if ok, _ := r.fs.Exists(candidate); ok {
			return candidate, nil
		}
	}

	return "", &NotFoundError{
		Declaration: decl,
		ManifestDir: dir,
		Probed:      probed,
	}
}
