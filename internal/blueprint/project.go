package blueprint

import "encoding/json"

// DefaultPlugin is the engine plugin group every project registers first.
const DefaultPlugin = "DefaultPlugins"

// Project collects the definitions synthesized for one game. Definition sets
// are ordered by insertion and keyed by unique name: re-inserting an existing
// name is a no-op, never an overwrite. A Project is mutated only during a
// single synthesis pass and is treated as immutable afterwards.
type Project struct {
	name string

	components []ComponentDefinition
	systems    []SystemDefinition
	resources  []ResourceDefinition

	componentNames map[string]bool
	systemNames    map[string]bool
	resourceNames  map[string]bool

	plugins       []string
	optimizations []string
}

// NewProject creates an empty project seeded with the default plugin set.
func NewProject(name string) *Project {
	return &Project{
		name:           name,
		componentNames: make(map[string]bool),
		systemNames:    make(map[string]bool),
		resourceNames:  make(map[string]bool),
		plugins:        []string{DefaultPlugin},
	}
}

// Name returns the project name.
func (p *Project) Name() string {
	return p.name
}

// AddComponent inserts a component definition, keeping the first definition
// registered under a given name. It reports whether the insert took effect.
func (p *Project) AddComponent(def ComponentDefinition) bool {
	if p.componentNames[def.Name] {
		return false
	}
	p.componentNames[def.Name] = true
	p.components = append(p.components, def)
	return true
}

// AddSystem inserts a system definition under first-wins semantics.
func (p *Project) AddSystem(def SystemDefinition) bool {
	if p.systemNames[def.Name] {
		return false
	}
	p.systemNames[def.Name] = true
	p.systems = append(p.systems, def)
	return true
}

// AddResource inserts a resource definition under first-wins semantics.
func (p *Project) AddResource(def ResourceDefinition) bool {
	if p.resourceNames[def.Name] {
		return false
	}
	p.resourceNames[def.Name] = true
	p.resources = append(p.resources, def)
	return true
}

// AddPlugin appends a plugin identifier unless it is already registered.
func (p *Project) AddPlugin(name string) {
	for _, plugin := range p.plugins {
		if plugin == name {
			return
		}
	}
	p.plugins = append(p.plugins, name)
}

// AddOptimization appends a free-text optimization note.
func (p *Project) AddOptimization(note string) {
	p.optimizations = append(p.optimizations, note)
}

// HasComponent reports whether a component with the given name exists.
func (p *Project) HasComponent(name string) bool {
	return p.componentNames[name]
}

// Components returns the component definitions in insertion order.
func (p *Project) Components() []ComponentDefinition {
	return p.components
}

// Systems returns the system definitions in insertion order.
func (p *Project) Systems() []SystemDefinition {
	return p.systems
}

// MarkSystemsParallel sets the parallel flag on every system whose name is
// not in the exclusion set. Sequential-only systems stay sequential.
func (p *Project) MarkSystemsParallel(exclude map[string]bool) {
	for i := range p.systems {
		if exclude[p.systems[i].Name] {
			continue
		}
		p.systems[i].Parallel = true
	}
}

// Resources returns the resource definitions in insertion order.
func (p *Project) Resources() []ResourceDefinition {
	return p.resources
}

// Plugins returns the plugin identifiers in registration order, default first.
func (p *Project) Plugins() []string {
	return p.plugins
}

// Optimizations returns the accumulated optimization notes.
func (p *Project) Optimizations() []string {
	return p.optimizations
}

// projectJSON is the stable interchange encoding of a project.
type projectJSON struct {
	Name          string                `json:"name"`
	Components    []ComponentDefinition `json:"components"`
	Systems       []SystemDefinition    `json:"systems"`
	Resources     []ResourceDefinition  `json:"resources"`
	Plugins       []string              `json:"plugins"`
	Optimizations []string              `json:"optimizations"`
}

// MarshalJSON encodes the project with stable field names and insertion
// ordering so external tooling can round-trip it.
func (p *Project) MarshalJSON() ([]byte, error) {
	return json.Marshal(projectJSON{
		Name:          p.name,
		Components:    p.components,
		Systems:       p.systems,
		Resources:     p.resources,
		Plugins:       p.plugins,
		Optimizations: p.optimizations,
	})
}
