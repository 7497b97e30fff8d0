// Package catalog maps feature tags to the component, system, and resource
// definitions they contribute. The catalog is constructed once, read-only
// afterwards, and passed by reference into the synthesizer so parallel
// synthesis passes share no mutable state.
package catalog

import "github.com/louisbranch/gameforge/internal/blueprint"

// Contribution is the set of definitions one feature tag adds to a project.
type Contribution struct {
	Components []blueprint.ComponentDefinition
	Systems    []blueprint.SystemDefinition
	Resources  []blueprint.ResourceDefinition
}

// Strategy is one optimization-strategy tag's fixed action: either a plugin
// registration or a descriptive note on the project.
type Strategy struct {
	Plugin string
	Note   string
}

// Catalog is the fixed feature-tag lookup table.
type Catalog struct {
	features       map[string]Contribution
	strategies     map[string]Strategy
	sequentialOnly map[string]bool
}

// New builds the catalog. Call once and share the result.
func New() *Catalog {
	return &Catalog{
		features:       featureTable(),
		strategies:     strategyTable(),
		sequentialOnly: sequentialOnlySystems(),
	}
}

// DefinitionsFor returns the contribution for a feature tag. Unknown tags
// return an empty contribution and false; they are never an error here so
// forward-incompatible AI output degrades silently.
func (c *Catalog) DefinitionsFor(tag string) (Contribution, bool) {
	contribution, ok := c.features[tag]
	return contribution, ok
}

// StrategyFor returns the fixed action for an optimization-strategy tag.
func (c *Catalog) StrategyFor(tag string) (Strategy, bool) {
	strategy, ok := c.strategies[tag]
	return strategy, ok
}

// Recognized reports whether the tag belongs to any known category. Strict
// synthesis rejects unrecognized tags; non-strict synthesis ignores them.
func (c *Catalog) Recognized(tag string) bool {
	if _, ok := c.features[tag]; ok {
		return true
	}
	if _, ok := c.strategies[tag]; ok {
		return true
	}
	return tag == TagSystemParallelization
}

// SequentialOnly returns system names that must never be marked parallel.
func (c *Catalog) SequentialOnly() map[string]bool {
	return c.sequentialOnly
}

// TagSystemParallelization enables the parallel flag on eligible systems.
// It is a strategy tag but acts on systems rather than plugins or notes,
// so the synthesizer handles it directly.
const TagSystemParallelization = "system_parallelization"
