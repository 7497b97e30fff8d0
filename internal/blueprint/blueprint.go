// Package blueprint holds the in-memory model of a synthesized ECS project:
// component, system, and resource definitions plus the project that collects
// them. Definitions are pure data; rendering lives in the emit package.
package blueprint

import (
	"fmt"

	"github.com/louisbranch/gameforge/internal/gamespec"
	"github.com/louisbranch/gameforge/internal/platform/errors"
)

// Access describes how a system touches a queried component.
type Access string

const (
	// AccessRead queries a component immutably.
	AccessRead Access = "read"
	// AccessReadWrite queries a component mutably.
	AccessReadWrite Access = "read-write"
)

// Field is one typed field of a component or resource definition.
type Field struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ComponentDefinition describes per-entity data to be rendered into engine
// source. Names are unique within a project; fields keep declaration order.
type ComponentDefinition struct {
	Name   string   `json:"name"`
	Fields []Field  `json:"fields"`
	Traits []string `json:"traits"`
}

// ResourceDefinition describes process-global singleton state. It shares the
// shape of ComponentDefinition but renders with resource capability tags.
type ResourceDefinition struct {
	Name   string   `json:"name"`
	Fields []Field  `json:"fields"`
	Traits []string `json:"traits"`
}

// QueryRef is one component access descriptor in a system's query.
type QueryRef struct {
	Access    Access `json:"access"`
	Component string `json:"component"`
}

// SystemDefinition describes one unit of per-frame logic.
type SystemDefinition struct {
	Name         string                     `json:"name"`
	Queries      []QueryRef                 `json:"queries"`
	Resources    []string                   `json:"resources"`
	Parallel     bool                       `json:"parallel"`
	Optimization gamespec.OptimizationLevel `json:"optimization"`
}

// Validate checks definition invariants: identifier-valid name and unique
// field names.
func (c ComponentDefinition) Validate() error {
	return validateNamedFields(c.Name, c.Fields)
}

// Validate checks definition invariants: identifier-valid name and unique
// field names.
func (r ResourceDefinition) Validate() error {
	return validateNamedFields(r.Name, r.Fields)
}

// Validate checks that the system name is a valid identifier.
func (s SystemDefinition) Validate() error {
	if !validIdentifier(s.Name) {
		return errors.WithMetadata(errors.CodeBlueprintInvalidIdentifier,
			fmt.Sprintf("system name %q is not a valid identifier", s.Name),
			map[string]string{"name": s.Name})
	}
	return nil
}

func validateNamedFields(name string, fields []Field) error {
	if !validIdentifier(name) {
		return errors.WithMetadata(errors.CodeBlueprintInvalidIdentifier,
			fmt.Sprintf("definition name %q is not a valid identifier", name),
			map[string]string{"name": name})
	}
	seen := make(map[string]bool, len(fields))
	for _, field := range fields {
		if !validIdentifier(field.Name) {
			return errors.WithMetadata(errors.CodeBlueprintInvalidIdentifier,
				fmt.Sprintf("field name %q is not a valid identifier", field.Name),
				map[string]string{"name": name, "field": field.Name})
		}
		if seen[field.Name] {
			return errors.WithMetadata(errors.CodeBlueprintDuplicateField,
				fmt.Sprintf("definition %q declares field %q twice", name, field.Name),
				map[string]string{"name": name, "field": field.Name})
		}
		seen[field.Name] = true
	}
	return nil
}

func validIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		letter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
		digit := r >= '0' && r <= '9'
		if i == 0 && !letter {
			return false
		}
		if !letter && !digit {
			return false
		}
	}
	return true
}
