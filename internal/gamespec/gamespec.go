// Package gamespec defines the structured game description consumed by the
// project synthesizer. Specifications arrive either directly from callers or
// from the AI bridge, and are immutable once validated.
package gamespec

import (
	"fmt"
	"strings"

	"github.com/louisbranch/gameforge/internal/platform/errors"
)

// Dimension selects the spatial presentation of the generated game.
type Dimension string

const (
	// Dimension2D scaffolds a 2D camera and sprite assets.
	Dimension2D Dimension = "2d"
	// Dimension3D scaffolds a 3D camera and model assets.
	Dimension3D Dimension = "3d"
)

// Complexity is the declared ambition tier of the requested game.
type Complexity string

const (
	ComplexityBeginner     Complexity = "beginner"
	ComplexityIntermediate Complexity = "intermediate"
	ComplexityAdvanced     Complexity = "advanced"
)

// OptimizationLevel is the ordered quality target for generated annotations.
type OptimizationLevel string

const (
	OptimizationDebug       OptimizationLevel = "debug"
	OptimizationDevelopment OptimizationLevel = "development"
	OptimizationRelease     OptimizationLevel = "release"
	OptimizationMaximum     OptimizationLevel = "maximum"
)

// GameSpecification is the structured input to synthesis. Field names are
// stable because the optimizer CLI and the MCP bridge round-trip this record.
type GameSpecification struct {
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Dimension    Dimension         `json:"dimension"`
	Complexity   Complexity        `json:"complexity"`
	Features     []string          `json:"features"`
	Optimization OptimizationLevel `json:"optimization"`
}

// Valid reports whether the dimension is part of the fixed vocabulary.
func (d Dimension) Valid() bool {
	return d == Dimension2D || d == Dimension3D
}

// Valid reports whether the complexity is part of the fixed vocabulary.
func (c Complexity) Valid() bool {
	switch c {
	case ComplexityBeginner, ComplexityIntermediate, ComplexityAdvanced:
		return true
	}
	return false
}

// Valid reports whether the optimization level is part of the fixed vocabulary.
func (o OptimizationLevel) Valid() bool {
	switch o {
	case OptimizationDebug, OptimizationDevelopment, OptimizationRelease, OptimizationMaximum:
		return true
	}
	return false
}

// Validate checks the non-feature fields against their fixed vocabularies.
// Out-of-vocabulary values are hard input errors; feature tags are not
// checked here because unknown tags are tolerated downstream.
func (s GameSpecification) Validate() error {
	if strings.TrimSpace(s.Description) == "" {
		return errors.New(errors.CodeSpecEmptyDescription, "description is required")
	}
	if !s.Dimension.Valid() {
		return errors.WithMetadata(errors.CodeSpecInvalidDimension,
			fmt.Sprintf("dimension %q is not one of 2d, 3d", s.Dimension),
			map[string]string{"dimension": string(s.Dimension)})
	}
	if !s.Complexity.Valid() {
		return errors.WithMetadata(errors.CodeSpecInvalidComplexity,
			fmt.Sprintf("complexity %q is not one of beginner, intermediate, advanced", s.Complexity),
			map[string]string{"complexity": string(s.Complexity)})
	}
	if !s.Optimization.Valid() {
		return errors.WithMetadata(errors.CodeSpecInvalidOptimization,
			fmt.Sprintf("optimization %q is not one of debug, development, release, maximum", s.Optimization),
			map[string]string{"optimization": string(s.Optimization)})
	}
	return nil
}

// Title returns the display title for the specification, deriving one from
// the description when no explicit name is set.
func (s GameSpecification) Title() string {
	if name := strings.TrimSpace(s.Name); name != "" {
		return name
	}
	return DeriveTitle(s.Description)
}

// HasFeature reports whether the feature tag is present.
func (s GameSpecification) HasFeature(tag string) bool {
	for _, feature := range s.Features {
		if feature == tag {
			return true
		}
	}
	return false
}

// DeriveTitle builds a short display title from a free-text description,
// capitalizing up to the first three words.
func DeriveTitle(description string) string {
	words := strings.Fields(description)
	if len(words) == 0 {
		return "Untitled Game"
	}
	if len(words) > 3 {
		words = words[:3]
	}
	for i, word := range words {
		lower := strings.ToLower(word)
		words[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(words, " ")
}

// SanitizeName reduces a title to a filesystem- and crate-safe identifier:
// alphanumerics kept, spaces collapsed to underscores, everything else
// dropped. Empty input sanitizes to "game".
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "game"
	}
	return strings.ToLower(b.String())
}
