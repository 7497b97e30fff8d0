package gamegen

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleSpec = `{
  "name": "Star Salvage",
  "description": "a salvage game",
  "dimension": "2d",
  "complexity": "intermediate",
  "features": ["physics"],
  "optimization": "release"
}`

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("gamegen", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.SpecPath != "" || cfg.OutDir != "" || cfg.Strict {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestRunPrintsSourceToStdout(t *testing.T) {
	var out bytes.Buffer
	cfg := Config{SpecPath: "-"}
	if err := Run(context.Background(), cfg, strings.NewReader(sampleSpec), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "fn main()") {
		t.Fatalf("stdout missing entrypoint:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "pub struct RigidBody {") {
		t.Fatalf("stdout missing physics component:\n%s", out.String())
	}
}

func TestRunWritesProjectTree(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "spec.json")
	if err := os.WriteFile(specPath, []byte(sampleSpec), 0o644); err != nil {
		t.Fatalf("write spec: %v", err)
	}

	var out bytes.Buffer
	cfg := Config{SpecPath: specPath, OutDir: dir}
	if err := Run(context.Background(), cfg, nil, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	root := filepath.Join(dir, "star_salvage")
	for _, path := range []string{
		filepath.Join(root, "Cargo.toml"),
		filepath.Join(root, "src", "main.rs"),
	} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected %s: %v", path, err)
		}
	}
	manifest, err := os.ReadFile(filepath.Join(root, "Cargo.toml"))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if !strings.Contains(string(manifest), `name = "star_salvage"`) {
		t.Fatalf("manifest = %s", manifest)
	}
	if _, err := os.Stat(filepath.Join(root, "assets", "sprites")); err != nil {
		t.Fatalf("expected asset directory: %v", err)
	}
}

func TestRunRequiresSpecification(t *testing.T) {
	err := Run(context.Background(), Config{}, nil, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected missing specification error")
	}
}

func TestRunStrictRejectsUnknownTags(t *testing.T) {
	spec := strings.Replace(sampleSpec, `"physics"`, `"time_travel"`, 1)
	cfg := Config{SpecPath: "-", Strict: true}
	err := Run(context.Background(), cfg, strings.NewReader(spec), &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected unknown feature error in strict mode")
	}
}

func TestRunRejectsInvalidSpec(t *testing.T) {
	spec := strings.Replace(sampleSpec, `"2d"`, `"4d"`, 1)
	cfg := Config{SpecPath: "-"}
	err := Run(context.Background(), cfg, strings.NewReader(spec), &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected invalid dimension error")
	}
}
