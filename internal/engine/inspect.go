package engine

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/texpack/texpack/internal/resolver"
)

// List enumerates the publishable templates under the root without
// resolving or copying anything.
func (e *Engine) List(ctx context.Context, req *ListRequest) (*ListResult, error) {
	root, err := filepath.Abs(req.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %q: %w", req.Root, err)
	}

	templates, warnings, err := e.discoverPublishable(root)
	if err != nil {
		return nil, err
	}

	result := &ListResult{Warnings: warnings}
	for _, t := range templates {
		result.Templates = append(result.Templates, TemplateInfo{
			Name:         filepath.Base(t.dir),
			Dir:          t.dir,
			Dependencies: t.m.Dependencies,
		})
	}
	return result, nil
}

// Validate resolves every publishable template's dependency closure and
// reports structural errors without producing any output on disk.
func (e *Engine) Validate(ctx context.Context, req *ValidateRequest) (*ValidateResult, error) {
	root, err := filepath.Abs(req.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %q: %w", req.Root, err)
	}

	templates, warnings, err := e.discoverPublishable(root)
	if err != nil {
		return nil, err
	}

	result := &ValidateResult{Warnings: warnings}
	r := resolver.New(e.fs, e.cfg.ManifestName, e.cfg.SharedRoot, e.cfg.Extensions)
	for _, t := range templates {
		res := TemplateResult{
			Name:   filepath.Base(t.dir),
			Dir:    t.dir,
			Status: StatusResolving,
		}
		_, warns, err := r.Resolve(t.dir, t.m)
		res.Warnings = append(res.Warnings, warns...)
		if err != nil {
			res.Status = StatusFailed
			res.Failure = err.Error()
		} else {
			res.Status = StatusDone
		}
		result.Templates = append(result.Templates, res)
	}
	return result, nil
}
