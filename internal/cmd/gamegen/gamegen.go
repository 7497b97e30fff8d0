// Package gamegen turns a game specification into a generated source tree.
package gamegen

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/gameforge/internal/bridge"
	"github.com/louisbranch/gameforge/internal/catalog"
	"github.com/louisbranch/gameforge/internal/emit"
	"github.com/louisbranch/gameforge/internal/gamespec"
	"github.com/louisbranch/gameforge/internal/platform/config"
	"github.com/louisbranch/gameforge/internal/platform/otel"
	"github.com/louisbranch/gameforge/internal/synth"
)

// Config holds gamegen command configuration.
type Config struct {
	SpecPath    string `env:"GAMEFORGE_SPEC_FILE"`
	Describe    string `env:"GAMEFORGE_DESCRIBE"`
	OutDir      string `env:"GAMEFORGE_OUT_DIR"`
	Strict      bool   `env:"GAMEFORGE_STRICT"`
	OpenAIKey   string `env:"GAMEFORGE_OPENAI_API_KEY"`
	OpenAIModel string `env:"GAMEFORGE_OPENAI_MODEL"`
	OpenAIURL   string `env:"GAMEFORGE_OPENAI_URL"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.SpecPath, "spec", cfg.SpecPath, "path to a specification JSON file (- for stdin)")
	fs.StringVar(&cfg.Describe, "describe", cfg.Describe, "free-text description resolved through the AI bridge")
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "output directory (empty prints main.rs to stdout)")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "reject unknown feature tags")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the gamegen command.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	shutdown, err := otel.Setup(ctx, "gamegen")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	spec, err := loadSpec(ctx, cfg, in)
	if err != nil {
		return err
	}

	synthesizer := synth.New(catalog.New(), synth.Options{Strict: cfg.Strict})
	project, err := synthesizer.Synthesize(spec)
	if err != nil {
		return err
	}
	output := emit.Bundle(project, spec)

	if strings.TrimSpace(cfg.OutDir) == "" {
		for _, file := range output.Files {
			if file.Path == "src/main.rs" {
				_, err := io.WriteString(out, file.Contents)
				return err
			}
		}
		return errors.New("no main source file emitted")
	}
	return writeTree(cfg.OutDir, spec, output, out)
}

// loadSpec resolves the specification from file, stdin, or the AI bridge.
func loadSpec(ctx context.Context, cfg Config, in io.Reader) (gamespec.GameSpecification, error) {
	if strings.TrimSpace(cfg.Describe) != "" {
		if strings.TrimSpace(cfg.OpenAIKey) == "" {
			return gamespec.GameSpecification{}, errors.New("-describe requires GAMEFORGE_OPENAI_API_KEY")
		}
		provider := bridge.NewOpenAIProvider(bridge.OpenAIConfig{
			ResponsesURL: cfg.OpenAIURL,
			APIKey:       cfg.OpenAIKey,
			Model:        cfg.OpenAIModel,
		})
		return provider.GenerateSpecification(ctx, cfg.Describe)
	}

	path := strings.TrimSpace(cfg.SpecPath)
	if path == "" {
		return gamespec.GameSpecification{}, errors.New("a specification is required (-spec or -describe)")
	}

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return gamespec.GameSpecification{}, fmt.Errorf("read specification: %w", err)
	}
	return gamespec.Decode(data)
}

// writeTree materializes the generated project under dir and logs asset
// paths the project expects but does not generate.
func writeTree(dir string, spec gamespec.GameSpecification, output emit.Output, out io.Writer) error {
	root := filepath.Join(dir, gamespec.SanitizeName(spec.Name))
	for _, file := range output.Files {
		path := filepath.Join(root, filepath.FromSlash(file.Path))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(file.Contents), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", file.Path, err)
		}
	}
	for _, asset := range output.Assets {
		path := filepath.Join(root, "assets", filepath.FromSlash(asset))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create asset directory: %w", err)
		}
	}

	fmt.Fprintf(out, "generated %s (%d files, %d assets expected)\n", root, len(output.Files), len(output.Assets))
	return nil
}
