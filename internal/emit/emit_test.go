package emit

import (
	"strings"
	"testing"

	"github.com/louisbranch/gameforge/internal/blueprint"
	"github.com/louisbranch/gameforge/internal/catalog"
	"github.com/louisbranch/gameforge/internal/gamespec"
	"github.com/louisbranch/gameforge/internal/synth"
)

func synthesize(t *testing.T, features ...string) (*blueprint.Project, gamespec.GameSpecification) {
	t.Helper()
	spec := gamespec.GameSpecification{
		Name:         "Star Salvage",
		Description:  "a salvage game",
		Dimension:    gamespec.Dimension2D,
		Complexity:   gamespec.ComplexityIntermediate,
		Features:     features,
		Optimization: gamespec.OptimizationRelease,
	}
	project, err := synth.New(catalog.New(), synth.Options{}).Synthesize(spec)
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	return project, spec
}

func TestSourceIsDeterministic(t *testing.T) {
	t.Parallel()

	project, spec := synthesize(t, "physics", "ai")
	first := Source(project, spec.Dimension)
	second := Source(project, spec.Dimension)
	if first != second {
		t.Fatal("emission must be byte-identical across calls")
	}
}

func TestSourceRendersDefinitionsInOrder(t *testing.T) {
	t.Parallel()

	project, spec := synthesize(t, "physics")
	source := Source(project, spec.Dimension)

	for _, want := range []string{
		"pub struct Transform {",
		"pub struct Velocity {",
		"pub struct RigidBody {",
		"pub struct Collider {",
		"fn movement(",
		"fn physics(",
	} {
		if !strings.Contains(source, want) {
			t.Fatalf("source missing %q:\n%s", want, source)
		}
	}
	if strings.Index(source, "pub struct Transform {") > strings.Index(source, "pub struct RigidBody {") {
		t.Fatal("baseline components must render before feature components")
	}
}

func TestSourceSequentialVersusParallelBodies(t *testing.T) {
	t.Parallel()

	project, spec := synthesize(t, "physics")
	source := Source(project, spec.Dimension)
	if !strings.Contains(source, "for components in query.iter_mut() {") {
		t.Fatalf("expected sequential body:\n%s", source)
	}

	project, spec = synthesize(t, "physics", catalog.TagSystemParallelization)
	source = Source(project, spec.Dimension)
	if !strings.Contains(source, "query.par_iter_mut().for_each(|components| {") {
		t.Fatalf("expected parallel body:\n%s", source)
	}
}

func TestSourceQueryAccessRendering(t *testing.T) {
	t.Parallel()

	project, spec := synthesize(t)
	source := Source(project, spec.Dimension)
	if !strings.Contains(source, "mut query: Query<(&mut Transform, &Velocity)>,") {
		t.Fatalf("movement query not rendered as expected:\n%s", source)
	}
	if !strings.Contains(source, "time: Res<Time>,") {
		t.Fatalf("resource parameter not rendered:\n%s", source)
	}
}

func TestSourceEntryPointPluginOrder(t *testing.T) {
	t.Parallel()

	project, spec := synthesize(t, "spatial_partitioning")
	source := Source(project, spec.Dimension)
	defaultIdx := strings.Index(source, ".add_plugins(DefaultPlugins)")
	spatialIdx := strings.Index(source, ".add_plugins(SpatialPartitioningPlugin)")
	if defaultIdx == -1 || spatialIdx == -1 {
		t.Fatalf("plugin registrations missing:\n%s", source)
	}
	if defaultIdx > spatialIdx {
		t.Fatal("default plugin must register first")
	}
}

func TestSourceCameraFollowsDimension(t *testing.T) {
	t.Parallel()

	project, _ := synthesize(t)
	source := Source(project, gamespec.Dimension2D)
	if !strings.Contains(source, "commands.spawn(Camera2d);") {
		t.Fatalf("2d camera missing:\n%s", source)
	}

	source = Source(project, gamespec.Dimension3D)
	if !strings.Contains(source, "commands.spawn(Camera3d::default());") {
		t.Fatalf("3d camera missing:\n%s", source)
	}
}

func TestManifestUsesSanitizedCrateName(t *testing.T) {
	t.Parallel()

	project, _ := synthesize(t)
	manifest := Manifest(project)
	if !strings.Contains(manifest, `name = "star_salvage"`) {
		t.Fatalf("manifest crate name not sanitized:\n%s", manifest)
	}
	if !strings.Contains(manifest, `bevy = "0.14"`) {
		t.Fatalf("manifest missing engine dependency:\n%s", manifest)
	}
}

func TestAssetsDerivation(t *testing.T) {
	t.Parallel()

	visual := Assets(gamespec.Dimension2D, nil)
	want := []string{"sprites/player.png", "sprites/background.png"}
	if len(visual) != len(want) {
		t.Fatalf("assets = %v, want %v", visual, want)
	}

	withAudio := Assets(gamespec.Dimension2D, []string{"audio"})
	wantAudio := append(append([]string{}, want...), "audio/background_music.ogg", "audio/sound_effects.wav")
	if len(withAudio) != len(wantAudio) {
		t.Fatalf("assets = %v, want %v", withAudio, wantAudio)
	}
	for i, path := range wantAudio {
		if withAudio[i] != path {
			t.Fatalf("assets[%d] = %q, want %q", i, withAudio[i], path)
		}
	}

	threeD := Assets(gamespec.Dimension3D, nil)
	if threeD[0] != "models/player.gltf" {
		t.Fatalf("3d assets = %v", threeD)
	}
}

func TestBundleIncludesManifestSourceAndAssets(t *testing.T) {
	t.Parallel()

	project, spec := synthesize(t, "audio")
	output := Bundle(project, spec)
	if len(output.Files) != 2 {
		t.Fatalf("files = %d, want 2", len(output.Files))
	}
	if output.Files[0].Path != "Cargo.toml" || output.Files[1].Path != "src/main.rs" {
		t.Fatalf("file order = %v", output.Files)
	}
	if len(output.Assets) != 4 {
		t.Fatalf("assets = %v, want visual plus audio entries", output.Assets)
	}
}

func TestSnakeCase(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Time":            "time",
		"CombatEvents":    "combat_events",
		"GlobalResources": "global_resources",
		"AudioOutput":     "audio_output",
	}
	for in, want := range cases {
		if got := snakeCase(in); got != want {
			t.Fatalf("snakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
