// Package manifest loads and discovers the per-directory manifest records
// that drive release generation.
//
// A manifest declares whether its directory is publishable and which files
// it depends on. Manifests are hand-authored, so parsing is JSONC-tolerant:
// // line comments and /* block comments */ are stripped before decoding.
// An absent or malformed manifest is treated as empty and unpublished
// rather than failing the run.
package manifest

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/tidwall/jsonc"

	"github.com/texpack/texpack/internal/fsops"
)

// Manifest is one directory's parsed manifest record.
type Manifest struct {
	// Publish marks the directory as a publishable template.
	// Defaults to false when absent.
	Publish bool `json:"publish"`

	// Dependencies is the ordered list of dependency declarations, each
	// relative to the manifest's own directory.
	Dependencies []string `json:"dependencies"`
}

// Load reads and parses the manifest at path.
// Returns an error for unreadable or malformed records; callers decide
// whether that is fatal (for this tool it never is — see LoadLenient).
func Load(fsys fsops.FS, path string) (*Manifest, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(jsonc.ToJSON(data), &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return &m, nil
}

// LoadLenient reads the manifest at path, degrading to an empty record on
// any read or parse failure. The returned warning, if non-empty, describes
// the problem for the operator.
func LoadLenient(fsys fsops.FS, path string) (m *Manifest, warning string) {
	m, err := Load(fsys, path)
	if err != nil {
		return &Manifest{}, err.Error()
	}
	return m, ""
}

// Discover walks root for directories containing a manifest file named
// manifestName, skipping any directory whose base name appears in skipDirs.
// The returned paths are the manifest directories (not the manifest files),
// in walk order.
func Discover(root, manifestName string, skipDirs []string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && slices.Contains(skipDirs, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() == manifestName {
			dirs = append(dirs, filepath.Dir(path))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return dirs, nil
}

// Exists reports whether dir contains a manifest file named manifestName.
func Exists(fsys fsops.FS, dir, manifestName string) bool {
	info, err := fsys.Stat(filepath.Join(dir, manifestName))
	return err == nil && !info.IsDir()
}
