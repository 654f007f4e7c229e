// Package rewrite adjusts include-style directives in copied template
// files so they resolve against the release layout.
//
// In the source tree a template reaches shared files by relative ascent,
// e.g. \input{../../common/fonts/custom.sty}. Inside a release the shared
// files live in a local common/ subtree, so the ascent prefix is stripped:
// \input{common/fonts/custom.sty}. The transformation is idempotent — a
// rewritten path has no ascent prefix left to strip.
package rewrite

import (
	"regexp"
	"strings"

	"github.com/texpack/texpack/internal/fsops"
)

// Rewriter rewrites braced path arguments that climb out of the template
// directory into the shared-dependency root.
type Rewriter struct {
	sharedRoot  string
	directiveRe *regexp.Regexp
	bracedRe    *regexp.Regexp
}

// New creates a Rewriter for the given shared-root directory name.
func New(sharedRoot string) *Rewriter {
	return &Rewriter{
		sharedRoot: sharedRoot,
		// Class declarations, file inclusion, and sub-import forms with a
		// braced path argument starting with one or more ascent segments.
		directiveRe: regexp.MustCompile(`\\(?:documentclass|input|include|subimport)\s*\{(?:\.\./)+[^{}]*\}`),
		// Bare braced paths, e.g. the entries of \graphicspath{{...}{...}}.
		bracedRe: regexp.MustCompile(`\{(?:\.\./)+[^{}]*\}`),
	}
}

// Rewrite returns content with every recognized directive path rewritten.
// Paths that do not contain the shared-root segment are left untouched.
func (r *Rewriter) Rewrite(content []byte) []byte {
	s := string(content)
	s = r.directiveRe.ReplaceAllStringFunc(s, r.replaceMatch)
	s = r.bracedRe.ReplaceAllStringFunc(s, r.replaceMatch)
	return []byte(s)
}

// RewriteFile rewrites path in place. The file keeps its permissions.
func (r *Rewriter) RewriteFile(fsys fsops.FS, path string) error {
	info, err := fsys.Stat(path)
	if err != nil {
		return err
	}
	content, err := fsys.ReadFile(path)
	if err != nil {
		return err
	}
	rewritten := r.Rewrite(content)
	if string(rewritten) == string(content) {
		return nil
	}
	return fsys.WriteFile(path, rewritten, info.Mode())
}

// replaceMatch rewrites the braced path inside one regex match. The match
// always ends with "}" and the path starts after the first "{"; neither
// group contains braces.
func (r *Rewriter) replaceMatch(match string) string {
	open := strings.Index(match, "{")
	path := match[open+1 : len(match)-1]

	i := segmentIndex(path, r.sharedRoot)
	if i < 0 {
		return match
	}
	return match[:open+1] + path[i:] + "}"
}

// segmentIndex returns the byte offset of the shared-root path segment in
// path, or -1. The segment must sit on a path boundary so a root named
// "common" does not match inside "mycommon/".
func segmentIndex(path, root string) int {
	needle := root + "/"
	for from := 0; ; {
		j := strings.Index(path[from:], needle)
		if j < 0 {
			return -1
		}
		j += from
		if j == 0 || path[j-1] == '/' {
			return j
		}
		from = j + 1
	}
}
