package planner

// Plan is the ordered list of copy operations for one release unit.
type Plan struct {
	// TemplateDir is the source directory of the template being released.
	TemplateDir string

	// Assets is the ordered list of classified files to copy.
	Assets []Asset

	// Collisions lists distinct source files that mapped to the same
	// destination. The first source wins; the rest are reported.
	Collisions []Collision
}

// Collision records two distinct sources claiming one destination.
// Flattened fallback files make this possible; shared assets cannot
// collide because their relative structure is preserved.
type Collision struct {
	// RelDest is the contested destination, relative to the release root.
	RelDest string

	// Kept is the source that claimed the destination first.
	Kept string

	// Dropped is the source that lost.
	Dropped string
}

// Build classifies every path in the closure (callers pass a deterministic
// order, typically sorted) and assembles the copy plan. A source never maps
// to two destinations; two sources mapping to one destination is recorded
// as a collision and the later one is dropped.
func Build(closure []string, templateDir, sharedRoot string) *Plan {
	plan := &Plan{TemplateDir: templateDir}
	claimed := make(map[string]string, len(closure))

	for _, src := range closure {
		asset := Classify(src, templateDir, sharedRoot)
		if prev, ok := claimed[asset.RelDest]; ok {
			plan.Collisions = append(plan.Collisions, Collision{
				RelDest: asset.RelDest,
				Kept:    prev,
				Dropped: asset.SourcePath,
			})
			continue
		}
		claimed[asset.RelDest] = asset.SourcePath
		plan.Assets = append(plan.Assets, asset)
	}

	return plan
}

// HasCollisions returns true if the plan dropped any source.
func (p *Plan) HasCollisions() bool {
	return len(p.Collisions) > 0
}
