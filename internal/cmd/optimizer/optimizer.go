// Package optimizer reads game data and reports optimization advice.
package optimizer

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/louisbranch/gameforge/internal/advisor"
	"github.com/louisbranch/gameforge/internal/gamestorage"
	"github.com/louisbranch/gameforge/internal/gamestorage/sqlite"
	"github.com/louisbranch/gameforge/internal/platform/config"
	"github.com/louisbranch/gameforge/internal/platform/otel"
)

// Config holds optimizer command configuration.
type Config struct {
	InputPath string `env:"GAMEFORGE_GAME_FILE"`
	Write     bool   `env:"GAMEFORGE_WRITE_SIDECAR"`
	DBPath    string `env:"GAMEFORGE_DB_PATH"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.InputPath, "input", cfg.InputPath, "path to a game data JSON file (- for stdin)")
	fs.BoolVar(&cfg.Write, "write", cfg.Write, "write an .optimized.json sidecar next to the input")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path (empty disables caching)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the optimizer command.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	shutdown, err := otel.Setup(ctx, "optimizer")
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

	path := strings.TrimSpace(cfg.InputPath)
	if path == "" {
		return errors.New("game data is required (-input)")
	}

	var data []byte
	if path == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read game data: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return errors.New("game data is not valid json")
	}

	game := gameFromDocument(data)
	if game.Title == "" {
		return errors.New("game data is missing a title")
	}
	report := advisor.Advise(game)

	if strings.TrimSpace(cfg.DBPath) != "" {
		if err := cacheReport(ctx, cfg.DBPath, game, report); err != nil {
			log.Printf("cache report: %v", err)
		}
	}

	encoded, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	fmt.Fprintln(out, string(encoded))

	if cfg.Write && path != "-" {
		return writeSidecar(path, data, report)
	}
	return nil
}

// gameFromDocument pulls game metadata out of a JSON document. Both flat
// documents and ones nesting the game under a "game" key are accepted.
func gameFromDocument(data []byte) advisor.GameData {
	root := gjson.ParseBytes(data)
	if nested := root.Get("game"); nested.IsObject() {
		root = nested
	}

	game := advisor.GameData{
		Title:      strings.TrimSpace(root.Get("title").String()),
		Engine:     strings.TrimSpace(root.Get("engine").String()),
		Complexity: strings.TrimSpace(root.Get("complexity").String()),
	}
	if game.Title == "" {
		game.Title = strings.TrimSpace(root.Get("name").String())
	}
	for _, feature := range root.Get("features").Array() {
		if tag := strings.TrimSpace(feature.String()); tag != "" {
			game.Features = append(game.Features, tag)
		}
	}
	return game
}

// writeSidecar grafts the report onto the original document and writes it
// next to the input, leaving the input untouched.
func writeSidecar(path string, data []byte, report advisor.Report) error {
	updated, err := sjson.SetBytes(data, "optimization_report", report)
	if err != nil {
		return fmt.Errorf("graft report: %w", err)
	}
	sidecar := strings.TrimSuffix(path, ".json") + ".optimized.json"
	if err := os.WriteFile(sidecar, updated, 0o644); err != nil {
		return fmt.Errorf("write sidecar: %w", err)
	}
	return nil
}

func cacheReport(ctx context.Context, dbPath string, game advisor.GameData, report advisor.Report) error {
	store, err := sqlite.Open(dbPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close store: %v", err)
		}
	}()

	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("encode game data: %w", err)
	}
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return store.PutReport(ctx, gamestorage.ReportRecord{
		Title:      game.Title,
		GameJSON:   string(gameJSON),
		ReportJSON: string(reportJSON),
	})
}
