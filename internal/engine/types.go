package engine

import "time"

// Status tracks a template's progress through the release pipeline.
// Failed is terminal and means the template's release directory was rolled
// back; every other terminal state is Done.
type Status string

const (
	StatusDiscovered Status = "discovered"
	StatusValidating Status = "validating"
	StatusResolving  Status = "resolving"
	StatusCopying    Status = "copying"
	StatusRewriting  Status = "rewriting"
	StatusDone       Status = "done"
	StatusFailed     Status = "failed"
)

// GenerateRequest represents a request to generate release units.
type GenerateRequest struct {
	// Root is the project root directory to process.
	Root string

	// DryRun resolves and plans every template without touching the
	// filesystem.
	DryRun bool
}

// GenerateResult represents the outcome of one generation run.
type GenerateResult struct {
	// Root is the absolute project root that was processed.
	Root string

	// OutputDir is the absolute directory release units were written to.
	OutputDir string

	// Templates holds one result per publishable template, in processing
	// order.
	Templates []TemplateResult

	// Warnings lists run-level warnings (e.g. malformed manifests seen
	// during discovery).
	Warnings []string

	// StartedAt is when the run began.
	StartedAt time.Time

	// Duration is how long the run took.
	Duration time.Duration
}

// TemplateResult represents the outcome for one publishable template.
type TemplateResult struct {
	// Name is the template's directory base name, which names its
	// release unit.
	Name string

	// Dir is the template's absolute source directory.
	Dir string

	// Status is the terminal pipeline state (Done or Failed).
	Status Status

	// Failure describes why the template failed; empty unless Status is
	// StatusFailed.
	Failure string

	// Files lists the release-relative paths that were (or, in dry-run,
	// would be) written.
	Files []string

	// Warnings lists non-fatal problems: skipped copies, unrewritten
	// files, fallback destination collisions, malformed sub-manifests.
	Warnings []string
}

// Failed returns true if the template was rolled back.
func (r *TemplateResult) Failed() bool {
	return r.Status == StatusFailed
}

// Produced returns the number of templates that completed successfully.
func (r *GenerateResult) Produced() int {
	n := 0
	for i := range r.Templates {
		if !r.Templates[i].Failed() {
			n++
		}
	}
	return n
}

// ListRequest represents a request to enumerate publishable templates.
type ListRequest struct {
	// Root is the project root directory to scan.
	Root string
}

// ListResult represents the publishable templates found under a root.
type ListResult struct {
	// Templates holds one entry per publishable template, in walk order.
	Templates []TemplateInfo

	// Warnings lists malformed manifests seen during discovery.
	Warnings []string
}

// TemplateInfo summarizes one publishable template.
type TemplateInfo struct {
	// Name is the template's directory base name.
	Name string

	// Dir is the template's absolute source directory.
	Dir string

	// Dependencies is the manifest's declared dependency list, in
	// declaration order.
	Dependencies []string
}

// ValidateRequest represents a request to check every publishable template
// without producing output.
type ValidateRequest struct {
	// Root is the project root directory to check.
	Root string
}

// ValidateResult represents per-template validation outcomes.
type ValidateResult struct {
	// Templates holds one result per publishable template. Files is
	// always empty; Status is Done or Failed.
	Templates []TemplateResult

	// Warnings lists malformed manifests seen during discovery.
	Warnings []string
}
