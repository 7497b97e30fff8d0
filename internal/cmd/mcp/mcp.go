// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/gameforge/internal/bridge"
	"github.com/louisbranch/gameforge/internal/gamestorage/sqlite"
	"github.com/louisbranch/gameforge/internal/platform/config"
	"github.com/louisbranch/gameforge/internal/platform/otel"
	"github.com/louisbranch/gameforge/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	HTTPAddr    string `env:"GAMEFORGE_MCP_HTTP_ADDR" envDefault:"localhost:8081"`
	Transport   string `env:"GAMEFORGE_MCP_TRANSPORT" envDefault:"stdio"`
	DBPath      string `env:"GAMEFORGE_DB_PATH"`
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

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path (empty disables caching)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "mcp")
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

	var deps service.Deps
	if strings.TrimSpace(cfg.OpenAIKey) != "" {
		deps.Provider = bridge.NewOpenAIProvider(bridge.OpenAIConfig{
			ResponsesURL: cfg.OpenAIURL,
			APIKey:       cfg.OpenAIKey,
			Model:        cfg.OpenAIModel,
		})
	}
	if strings.TrimSpace(cfg.DBPath) != "" {
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close store: %v", err)
			}
		}()
		deps.Store = store
	}

	return service.Run(ctx, service.Config{
		Transport: service.TransportKind(cfg.Transport),
		HTTPAddr:  cfg.HTTPAddr,
	}, deps)
}
