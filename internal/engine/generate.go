package engine

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/texpack/texpack/internal/planner"
	"github.com/texpack/texpack/internal/resolver"
	"github.com/texpack/texpack/internal/rewrite"
)

// Algorithm steps:
// 1. Discover publishable templates under the root
// 2. Reset the output directory (skipped in dry-run)
// 3. Per template: resolve closure, roll back on structural failure
// 4. Per template: copy entry file, planned assets, ancillary files
// 5. Per template: rewrite references in entry and test files
// 6. Return per-template results plus a run summary
func (e *Engine) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResult, error) {
	startedAt := e.clock.Now()

	root, err := filepath.Abs(req.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %q: %w", req.Root, err)
	}

	templates, warnings, err := e.discoverPublishable(root)
	if err != nil {
		return nil, err
	}

	outputDir := filepath.Join(root, e.cfg.OutputDir)
	if !req.DryRun {
		// The output tree is regenerated from scratch every run; no
		// state is carried between runs.
		if err := e.fs.RemoveAll(outputDir); err != nil {
			return nil, fmt.Errorf("failed to reset output directory: %w", err)
		}
		if err := e.fs.MkdirAll(outputDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	result := &GenerateResult{
		Root:      root,
		OutputDir: outputDir,
		Warnings:  warnings,
		StartedAt: startedAt,
	}
	for _, t := range templates {
		result.Templates = append(result.Templates, e.processTemplate(root, outputDir, t, req.DryRun))
	}
	result.Duration = e.clock.Now().Sub(startedAt)

	return result, nil
}

// processTemplate runs the full pipeline for one template. Structural
// failures (validation, missing dependency) roll back the template's
// release directory and are reported in the result, never returned as
// errors: one template's failure must not poison the run.
func (e *Engine) processTemplate(root, outputDir string, t publishable, dryRun bool) TemplateResult {
	res := TemplateResult{
		Name:   filepath.Base(t.dir),
		Dir:    t.dir,
		Status: StatusDiscovered,
	}

	releaseDir := filepath.Join(outputDir, res.Name)
	commonDir := filepath.Join(releaseDir, e.cfg.SharedRoot)
	sharedRoot := filepath.Join(root, e.cfg.SharedRoot)

	fail := func(reason string) TemplateResult {
		res.Status = StatusFailed
		res.Failure = reason
		if !dryRun {
			// No partial releases are left behind.
			_ = e.fs.RemoveAll(releaseDir)
		}
		return res
	}

	if !dryRun {
		if err := e.fs.MkdirAll(commonDir, 0755); err != nil {
			return fail(fmt.Sprintf("failed to create release directory: %v", err))
		}
	}

	res.Status = StatusValidating
	r := resolver.New(e.fs, e.cfg.ManifestName, e.cfg.SharedRoot, e.cfg.Extensions)
	res.Status = StatusResolving
	closure, warnings, err := r.Resolve(t.dir, t.m)
	res.Warnings = append(res.Warnings, warnings...)
	if err != nil {
		return fail(err.Error())
	}

	plan := planner.Build(closure.Sorted(), t.dir, sharedRoot)
	for _, c := range plan.Collisions {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("destination %s claimed by %s; dropped %s", c.RelDest, c.Kept, c.Dropped))
	}

	res.Status = StatusCopying
	entry, hasEntry := e.entryFile(t.dir)
	if !hasEntry {
		res.Warnings = append(res.Warnings, fmt.Sprintf("no entry file found in %s", t.dir))
	}

	if dryRun {
		if hasEntry {
			res.Files = append(res.Files, filepath.Base(entry))
		}
		for _, asset := range plan.Assets {
			res.Files = append(res.Files, asset.RelDest)
		}
		res.Status = StatusDone
		return res
	}

	var rewriteTargets []string
	if hasEntry {
		if rel, ok := e.copyInto(releaseDir, entry, filepath.Base(entry), &res); ok {
			rewriteTargets = append(rewriteTargets, rel)
		}
	}

	for _, asset := range plan.Assets {
		e.copyInto(releaseDir, asset.SourcePath, asset.RelDest, &res)
	}

	for _, name := range e.cfg.Ancillary {
		src := filepath.Join(t.dir, name)
		if ok, _ := e.fs.Exists(src); !ok {
			continue
		}
		if rel, ok := e.copyInto(releaseDir, src, name, &res); ok && name == e.cfg.TestFile {
			rewriteTargets = append(rewriteTargets, rel)
		}
	}

	res.Status = StatusRewriting
	rw := rewrite.New(e.cfg.SharedRoot)
	for _, rel := range rewriteTargets {
		if err := rw.RewriteFile(e.fs, filepath.Join(releaseDir, rel)); err != nil {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("could not rewrite references in %s: %v", rel, err))
		}
	}

	// A template with no shared dependencies gets no common subtree.
	if entries, err := e.fs.ReadDir(commonDir); err == nil && len(entries) == 0 {
		if err := e.fs.Remove(commonDir); err != nil {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("could not remove empty %s directory: %v", e.cfg.SharedRoot, err))
		}
	}

	res.Status = StatusDone
	return res
}

// copyInto copies src to relDest under releaseDir. Copy failures degrade to
// warnings: the omission is visible in the release and recoverable by the
// author, unlike a structural failure.
func (e *Engine) copyInto(releaseDir, src, relDest string, res *TemplateResult) (string, bool) {
	if err := e.fs.CopyFile(src, filepath.Join(releaseDir, relDest)); err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("could not copy %s: %v", src, err))
		return "", false
	}
	res.Files = append(res.Files, relDest)
	return relDest, true
}
