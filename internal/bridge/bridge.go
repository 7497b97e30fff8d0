// Package bridge turns natural-language game descriptions into structured
// specifications by calling an external model provider. Providers are
// adapters behind a narrow interface so the rest of the pipeline never
// depends on a specific vendor API.
package bridge

import (
	"context"

	"github.com/louisbranch/gameforge/internal/gamespec"
)

// SpecProvider generates a structured game specification from a free-form
// description.
type SpecProvider interface {
	GenerateSpecification(ctx context.Context, description string) (gamespec.GameSpecification, error)
}

// StaticProvider returns a fixed specification on every call. It exists for
// offline runs and tests.
type StaticProvider struct {
	Spec gamespec.GameSpecification
	Err  error
}

func (p StaticProvider) GenerateSpecification(_ context.Context, _ string) (gamespec.GameSpecification, error) {
	if p.Err != nil {
		return gamespec.GameSpecification{}, p.Err
	}
	return p.Spec, nil
}
