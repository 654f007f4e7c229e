// Package planner classifies resolved dependencies and builds the copy
// plan for one release unit.
//
// Classification is pure: it maps a resolved source path to a destination
// relative to the release root without touching the filesystem. The engine
// executes the resulting plan.
package planner

import (
	"path/filepath"
	"strings"
)

// AssetKind is the closed set of destinations a resolved file can have
// inside a release.
type AssetKind int

const (
	// LocalAsset is a file co-located with the template's entry file.
	// It is flattened into the release root by base name.
	LocalAsset = AssetKind(iota)

	// SharedAsset is a file under the shared-dependency root. It lands
	// under the release's common subtree at the same relative path.
	SharedAsset

	// OtherAsset is a file outside both locations. It is flattened into
	// the release root by base name.
	OtherAsset
)

func (k AssetKind) String() string {
	switch k {
	case LocalAsset:
		return "local"
	case SharedAsset:
		return "shared"
	case OtherAsset:
		return "other"
	default:
		return "<invalid>"
	}
}

// Asset pairs a resolved source file with its classification and its
// destination relative to the release root.
type Asset struct {
	// SourcePath is the absolute resolved source path.
	SourcePath string

	// Kind is the classification result.
	Kind AssetKind

	// RelDest is the destination path relative to the release root.
	RelDest string
}

// Classify decides where the resolved file at sourcePath lands inside a
// release. templateDir is the originating template's source directory and
// sharedRoot is the absolute path of the project's shared-dependency root.
// First match wins:
//
//  1. co-located with the template  → release root, base name
//  2. under the shared root         → common subtree, relative path preserved
//  3. anywhere else                 → release root, base name
func Classify(sourcePath, templateDir, sharedRoot string) Asset {
	sourcePath = filepath.Clean(sourcePath)
	templateDir = filepath.Clean(templateDir)
	sharedRoot = filepath.Clean(sharedRoot)

	if filepath.Dir(sourcePath) == templateDir {
		return Asset{
			SourcePath: sourcePath,
			Kind:       LocalAsset,
			RelDest:    filepath.Base(sourcePath),
		}
	}

	if rel, ok := pathUnder(sourcePath, sharedRoot); ok {
		return Asset{
			SourcePath: sourcePath,
			Kind:       SharedAsset,
			RelDest:    filepath.Join(filepath.Base(sharedRoot), rel),
		}
	}

	return Asset{
		SourcePath: sourcePath,
		Kind:       OtherAsset,
		RelDest:    filepath.Base(sourcePath),
	}
}

// pathUnder returns path relative to root when path lies strictly under
// root.
func pathUnder(path, root string) (string, bool) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", false
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}
