package gamespec

import (
	"testing"

	"github.com/louisbranch/gameforge/internal/platform/errors"
)

func validSpec() GameSpecification {
	return GameSpecification{
		Description:  "a fast 2d space shooter",
		Dimension:    Dimension2D,
		Complexity:   ComplexityIntermediate,
		Features:     []string{"physics"},
		Optimization: OptimizationRelease,
	}
}

func TestValidateAcceptsVocabulary(t *testing.T) {
	t.Parallel()

	if err := validSpec().Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateRejectsOutOfVocabulary(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*GameSpecification)
		code   errors.Code
	}{
		{"empty description", func(s *GameSpecification) { s.Description = " " }, errors.CodeSpecEmptyDescription},
		{"bad dimension", func(s *GameSpecification) { s.Dimension = "4d" }, errors.CodeSpecInvalidDimension},
		{"bad complexity", func(s *GameSpecification) { s.Complexity = "expert" }, errors.CodeSpecInvalidComplexity},
		{"bad optimization", func(s *GameSpecification) { s.Optimization = "turbo" }, errors.CodeSpecInvalidOptimization},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := validSpec()
			tc.mutate(&spec)
			err := spec.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.GetCode(err); got != tc.code {
				t.Fatalf("code = %q, want %q", got, tc.code)
			}
			if !errors.IsKind(err, errors.KindMalformedSpecification) {
				t.Fatalf("expected malformed-specification kind for %v", err)
			}
		})
	}
}

func TestValidateToleratesUnknownFeatureTags(t *testing.T) {
	t.Parallel()

	spec := validSpec()
	spec.Features = append(spec.Features, "quantum_teleportation")
	if err := spec.Validate(); err != nil {
		t.Fatalf("unknown feature tags must not fail validation: %v", err)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	data, err := Encode(validSpec())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	spec, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if spec.Dimension != Dimension2D || spec.Complexity != ComplexityIntermediate {
		t.Fatalf("round trip mismatch: %+v", spec)
	}
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte("{not json"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.IsKind(err, errors.KindSerialization) {
		t.Fatalf("expected serialization kind, got %v", err)
	}
}

func TestDeriveTitle(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"a space shooter with lasers", "A Space Shooter"},
		{"PUZZLE game", "Puzzle Game"},
		{"", "Untitled Game"},
	}
	for _, tc := range cases {
		if got := DeriveTitle(tc.in); got != tc.want {
			t.Fatalf("DeriveTitle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTitlePrefersExplicitName(t *testing.T) {
	t.Parallel()

	spec := validSpec()
	spec.Name = "Star Salvage"
	if got := spec.Title(); got != "Star Salvage" {
		t.Fatalf("title = %q, want %q", got, "Star Salvage")
	}
}

func TestSanitizeName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Star Salvage!", "star_salvage"},
		{"Dungeon-Crawl 2", "dungeon-crawl_2"},
		{"???", "game"},
	}
	for _, tc := range cases {
		if got := SanitizeName(tc.in); got != tc.want {
			t.Fatalf("SanitizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
