package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/gameforge/internal/advisor"
	"github.com/louisbranch/gameforge/internal/gamestorage"
)

// OptimizeInput represents the MCP tool input for optimization advice.
type OptimizeInput struct {
	Title      string   `json:"title" jsonschema:"game title"`
	Engine     string   `json:"engine,omitempty" jsonschema:"target engine (bevy, godot, arcade)"`
	Complexity string   `json:"complexity,omitempty" jsonschema:"game complexity tier"`
	Features   []string `json:"features,omitempty" jsonschema:"feature tags"`
}

// OptimizeResult represents the MCP tool output for optimization advice.
type OptimizeResult struct {
	InvocationID             string   `json:"invocation_id" jsonschema:"server-side identifier for this call"`
	Title                    string   `json:"title" jsonschema:"game title"`
	MemoryOptimizations      []string `json:"memory_optimizations" jsonschema:"memory recommendations"`
	PerformanceImprovements  []string `json:"performance_improvements" jsonschema:"performance recommendations"`
	ECSOptimizations         []string `json:"ecs_optimizations" jsonschema:"engine-specific recommendations"`
	EstimatedPerformanceGain float64  `json:"estimated_performance_gain" jsonschema:"projected gain percentage"`
	Cached                   bool     `json:"cached" jsonschema:"true when served from the report cache"`
}

// OptimizeTool defines the MCP tool schema for optimization advice.
func OptimizeTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "game_optimize",
		Description: "Produces optimization recommendations for a game",
	}
}

// OptimizeHandler executes an optimization advice request. Reports are
// cached by title when a store is configured.
func OptimizeHandler(store gamestorage.Store) mcp.ToolHandlerFor[OptimizeInput, OptimizeResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input OptimizeInput) (*mcp.CallToolResult, OptimizeResult, error) {
		title := strings.TrimSpace(input.Title)
		if title == "" {
			return nil, OptimizeResult{}, fmt.Errorf("title is required")
		}

		if store != nil {
			record, err := store.GetReport(ctx, title)
			if err == nil {
				var report advisor.Report
				if err := json.Unmarshal([]byte(record.ReportJSON), &report); err == nil {
					return nil, resultFromReport(title, report, true), nil
				}
				log.Printf("decode cached report %q: %v", title, err)
			} else if !errors.Is(err, gamestorage.ErrNotFound) {
				log.Printf("read cached report %q: %v", title, err)
			}
		}

		game := advisor.GameData{
			Title:      title,
			Engine:     input.Engine,
			Complexity: input.Complexity,
			Features:   input.Features,
		}
		report := advisor.Advise(game)

		if store != nil {
			gameJSON, err := json.Marshal(game)
			if err != nil {
				return nil, OptimizeResult{}, fmt.Errorf("encode game data: %w", err)
			}
			reportJSON, err := json.Marshal(report)
			if err != nil {
				return nil, OptimizeResult{}, fmt.Errorf("encode report: %w", err)
			}
			record := gamestorage.ReportRecord{
				Title:      title,
				GameJSON:   string(gameJSON),
				ReportJSON: string(reportJSON),
			}
			if err := store.PutReport(ctx, record); err != nil {
				log.Printf("store report %q: %v", title, err)
			}
		}

		return nil, resultFromReport(title, report, false), nil
	}
}

func resultFromReport(title string, report advisor.Report, cached bool) OptimizeResult {
	return OptimizeResult{
		InvocationID:             newInvocationID(),
		Title:                    title,
		MemoryOptimizations:      report.MemoryOptimizations,
		PerformanceImprovements:  report.PerformanceImprovements,
		ECSOptimizations:         report.ECSOptimizations,
		EstimatedPerformanceGain: report.EstimatedPerformanceGain,
		Cached:                   cached,
	}
}
