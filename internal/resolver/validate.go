package resolver

import "strings"

// ValidateDeclaration checks a raw dependency string declared in the
// manifest at manifestDir. It is a pure function: no filesystem access.
//
// Rejected forms:
//   - absolute paths (leading separator or a drive designator)
//   - paths that alias the shared-dependency root by name instead of
//     navigating to it via relative ascent (a common authoring mistake
//     that would silently resolve against the wrong directory)
func ValidateDeclaration(decl, manifestDir, sharedRoot string) error {
	if strings.HasPrefix(decl, "/") || strings.HasPrefix(decl, "\\") {
		return &ValidationError{
			Declaration: decl,
			ManifestDir: manifestDir,
			Reason:      "uses an absolute path; dependencies must be relative to the manifest location",
		}
	}
	if len(decl) > 2 && decl[1] == ':' {
		return &ValidationError{
			Declaration: decl,
			ManifestDir: manifestDir,
			Reason:      "uses a drive-letter path; dependencies must be relative to the manifest location",
		}
	}

	if decl == sharedRoot ||
		strings.HasPrefix(decl, sharedRoot+"/") ||
		strings.HasPrefix(decl, "./"+sharedRoot+"/") {
		return &ValidationError{
			Declaration: decl,
			ManifestDir: manifestDir,
			Reason: "appears to be relative to the project root; use relative ascent " +
				"(e.g. ../../../" + sharedRoot + "/...) to reference shared files",
		}
	}

	return nil
}
