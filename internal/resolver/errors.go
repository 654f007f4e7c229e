package resolver

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDeclaration indicates a dependency declaration that failed
	// validation before any filesystem probe.
	ErrInvalidDeclaration = errors.New("invalid dependency declaration")

	// ErrDependencyNotFound indicates a declared dependency that does not
	// exist, even after extension probing.
	ErrDependencyNotFound = errors.New("dependency not found")
)

// ValidationError reports a malformed dependency declaration with enough
// context for the author to fix the declaring manifest.
type ValidationError struct {
	// Declaration is the offending raw dependency string.
	Declaration string

	// ManifestDir is the directory of the manifest that declared it.
	ManifestDir string

	// Reason explains what is wrong with the declaration.
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("dependency %q in manifest at %s: %s", e.Declaration, e.ManifestDir, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidDeclaration.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidDeclaration
}

// NotFoundError reports a dependency that resolved to no existing file.
type NotFoundError struct {
	// Declaration is the raw dependency string as declared.
	Declaration string

	// ManifestDir is the directory of the manifest that declared it.
	ManifestDir string

	// Probed lists every candidate path that was checked.
	Probed []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("dependency %q in manifest at %s not found (probed: %s)",
		e.Declaration, e.ManifestDir, strings.Join(e.Probed, ", "))
}

// Unwrap lets errors.Is match ErrDependencyNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrDependencyNotFound
}
