// Package synth compiles a validated game specification into a project
// blueprint by walking the feature catalog and applying the optimization
// tier policy. The synthesizer holds no mutable state across calls and is
// safe for concurrent use with distinct specifications.
package synth

import (
	"fmt"

	"github.com/louisbranch/gameforge/internal/blueprint"
	"github.com/louisbranch/gameforge/internal/catalog"
	"github.com/louisbranch/gameforge/internal/gamespec"
	"github.com/louisbranch/gameforge/internal/platform/errors"
)

// Options configures a synthesis pass.
type Options struct {
	// Strict rejects feature tags the catalog cannot classify. The default
	// tolerates them so forward-incompatible AI output degrades silently.
	Strict bool
}

// Synthesizer builds project blueprints from game specifications.
type Synthesizer struct {
	catalog *catalog.Catalog
	opts    Options
}

// New creates a synthesizer over the given catalog.
func New(c *catalog.Catalog, opts Options) *Synthesizer {
	return &Synthesizer{catalog: c, opts: opts}
}

// Synthesize walks the specification's feature tags in their declared order
// and assembles the project. It either returns a complete project or an
// error; no partially populated project ever escapes.
func (s *Synthesizer) Synthesize(spec gamespec.GameSpecification) (*blueprint.Project, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	project := blueprint.NewProject(spec.Title())
	insert(project, catalog.Baseline(), spec.Optimization)

	for _, tag := range spec.Features {
		contribution, ok := s.catalog.DefinitionsFor(tag)
		if ok {
			insert(project, contribution, spec.Optimization)
			continue
		}
		if s.catalog.Recognized(tag) {
			// Strategy tags are applied after all definitions land.
			continue
		}
		if s.opts.Strict {
			return nil, errors.WithMetadata(errors.CodeSpecUnknownFeature,
				fmt.Sprintf("feature tag %q is not in any catalog category", tag),
				map[string]string{"tag": tag})
		}
	}

	s.applyTierPolicy(project, spec)

	if err := checkQueryReferences(project); err != nil {
		return nil, err
	}
	return project, nil
}

// insert adds a contribution under first-wins semantics, stamping each
// system with the specification's optimization level.
func insert(project *blueprint.Project, contribution catalog.Contribution, level gamespec.OptimizationLevel) {
	for _, component := range contribution.Components {
		project.AddComponent(component)
	}
	for _, system := range contribution.Systems {
		system.Optimization = level
		project.AddSystem(system)
	}
	for _, resource := range contribution.Resources {
		project.AddResource(resource)
	}
}

// applyTierPolicy handles optimization-strategy tags: the parallelization
// tag flips eligible systems' parallel flag, the rest either register a
// plugin or append a note, per the catalog's fixed table.
func (s *Synthesizer) applyTierPolicy(project *blueprint.Project, spec gamespec.GameSpecification) {
	if spec.HasFeature(catalog.TagSystemParallelization) {
		project.MarkSystemsParallel(s.catalog.SequentialOnly())
	}
	for _, tag := range spec.Features {
		strategy, ok := s.catalog.StrategyFor(tag)
		if !ok {
			continue
		}
		if strategy.Plugin != "" {
			project.AddPlugin(strategy.Plugin)
		}
		if strategy.Note != "" {
			project.AddOptimization(strategy.Note)
		}
	}
}

// checkQueryReferences verifies that every system's queried components exist
// in the project. The catalog guarantees this by construction; the check
// protects the emitter's never-fails contract against future table edits.
func checkQueryReferences(project *blueprint.Project) error {
	for _, system := range project.Systems() {
		for _, query := range system.Queries {
			if !project.HasComponent(query.Component) {
				return errors.WithMetadata(errors.CodeBlueprintMissingComponent,
					fmt.Sprintf("system %q queries unknown component %q", system.Name, query.Component),
					map[string]string{"system": system.Name, "component": query.Component})
			}
		}
	}
	return nil
}
