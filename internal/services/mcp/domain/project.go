package domain

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ProjectCreateInput represents the MCP tool input for project synthesis.
// Either a full structured specification or a free-text description must be
// provided; when structured fields are absent the AI bridge derives them.
type ProjectCreateInput struct {
	Description  string   `json:"description" jsonschema:"free-text game description"`
	Name         string   `json:"name,omitempty" jsonschema:"game name (derived from description when empty)"`
	Dimension    string   `json:"dimension,omitempty" jsonschema:"2d or 3d"`
	Complexity   string   `json:"complexity,omitempty" jsonschema:"beginner, intermediate or advanced"`
	Features     []string `json:"features,omitempty" jsonschema:"feature tags in priority order"`
	Optimization string   `json:"optimization,omitempty" jsonschema:"debug, development, release or maximum"`
}

// ProjectCreateResult represents the MCP tool output for project synthesis.
type ProjectCreateResult struct {
	InvocationID  string   `json:"invocation_id" jsonschema:"server-side identifier for this call"`
	Name          string   `json:"name" jsonschema:"project name"`
	Components    []string `json:"components" jsonschema:"component names in insertion order"`
	Systems       []string `json:"systems" jsonschema:"system names in insertion order"`
	Resources     []string `json:"resources" jsonschema:"resource names in insertion order"`
	Plugins       []string `json:"plugins" jsonschema:"plugin registration order"`
	Optimizations []string `json:"optimizations" jsonschema:"applied optimization notes"`
}

// ProjectEmitInput represents the MCP tool input for source emission.
type ProjectEmitInput struct {
	Description  string   `json:"description" jsonschema:"free-text game description"`
	Name         string   `json:"name,omitempty" jsonschema:"game name (derived from description when empty)"`
	Dimension    string   `json:"dimension,omitempty" jsonschema:"2d or 3d"`
	Complexity   string   `json:"complexity,omitempty" jsonschema:"beginner, intermediate or advanced"`
	Features     []string `json:"features,omitempty" jsonschema:"feature tags in priority order"`
	Optimization string   `json:"optimization,omitempty" jsonschema:"debug, development, release or maximum"`
}

// EmittedFile is one generated source file.
type EmittedFile struct {
	Path     string `json:"path" jsonschema:"file path relative to the project root"`
	Contents string `json:"contents" jsonschema:"file contents"`
}

// ProjectEmitResult represents the MCP tool output for source emission.
type ProjectEmitResult struct {
	InvocationID string        `json:"invocation_id" jsonschema:"server-side identifier for this call"`
	Name         string        `json:"name" jsonschema:"project name"`
	Files        []EmittedFile `json:"files" jsonschema:"generated source files"`
	Assets       []string      `json:"assets" jsonschema:"asset paths the project expects"`
}

// ProjectCreateTool defines the MCP tool schema for project synthesis.
func ProjectCreateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "game_project_create",
		Description: "Synthesizes a structured ECS project from a game description",
	}
}

// ProjectEmitTool defines the MCP tool schema for source emission.
func ProjectEmitTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "game_project_emit",
		Description: "Generates complete Bevy source files for a game description",
	}
}
