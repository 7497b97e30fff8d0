// Package advisor produces optimization guidance for an existing game
// description without touching its sources. Recommendations are grouped by
// concern so callers can render or persist each group independently.
package advisor

import (
	"strings"
)

// GameData is the advisor's view of a game under review. It is deliberately
// looser than a full specification: optimizer runs often start from partial
// metadata exported by other tools.
type GameData struct {
	Title      string   `json:"title"`
	Engine     string   `json:"engine"`
	Complexity string   `json:"complexity"`
	Features   []string `json:"features"`
}

// Report carries grouped recommendations plus a coarse projected gain,
// expressed as a percentage improvement over the unoptimized build.
type Report struct {
	MemoryOptimizations     []string `json:"memory_optimizations"`
	PerformanceImprovements []string `json:"performance_improvements"`
	ECSOptimizations        []string `json:"ecs_optimizations"`
	EstimatedPerformanceGain float64 `json:"estimated_performance_gain"`
}

// complexity multipliers for the projected gain. Unknown tiers get a middle
// value so partial metadata still yields a usable estimate.
const baseGain = 25.0

func complexityMultiplier(complexity string) float64 {
	switch strings.ToLower(complexity) {
	case "simple", "beginner":
		return 1.1
	case "intermediate":
		return 1.3
	case "advanced":
		return 1.5
	case "expert":
		return 1.8
	default:
		return 1.2
	}
}

// Advise inspects the game metadata and returns grouped recommendations.
// The same input always yields the same report.
func Advise(game GameData) Report {
	report := Report{
		MemoryOptimizations: []string{
			"Use object pooling for frequently spawned entities",
			"Implement component storage optimization",
			"Add memory budget monitoring",
		},
		PerformanceImprovements: []string{
			"Batch draw calls where possible",
			"Use spatial partitioning for collision detection",
			"Profile hot paths before micro-optimizing",
		},
	}

	report.ECSOptimizations = engineOptimizations(game.Engine)

	gain := baseGain * complexityMultiplier(game.Complexity)
	gain += 0.05 * float64(len(game.Features))
	report.EstimatedPerformanceGain = gain

	return report
}

// engineOptimizations returns engine-specific scheduling advice. Engines we
// do not recognize get generic data-oriented guidance.
func engineOptimizations(engine string) []string {
	switch strings.ToLower(engine) {
	case "bevy":
		return []string{
			"Use change detection to skip unchanged components",
			"Batch similar operations with parallel queries",
			"Keep components small and cache-friendly",
		}
	case "godot":
		return []string{
			"Use node groups for batch operations",
			"Prefer packed scenes for repeated structures",
			"Move per-frame work out of _process where possible",
		}
	case "arcade":
		return []string{
			"Use sprite lists for batched rendering",
			"Limit per-frame allocations in update loops",
		}
	default:
		return []string{
			"Organize data for cache-friendly access patterns",
			"Minimize cross-system dependencies",
		}
	}
}
