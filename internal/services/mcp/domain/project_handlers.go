package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/gameforge/internal/blueprint"
	"github.com/louisbranch/gameforge/internal/bridge"
	"github.com/louisbranch/gameforge/internal/emit"
	"github.com/louisbranch/gameforge/internal/gamespec"
	"github.com/louisbranch/gameforge/internal/gamestorage"
	"github.com/louisbranch/gameforge/internal/synth"
)

// resolveSpec builds a validated specification from tool input. Structured
// fields win; when the input carries only a description the bridge provider
// derives the rest.
func resolveSpec(ctx context.Context, provider bridge.SpecProvider, description, name, dimension, complexity, optimization string, features []string) (gamespec.GameSpecification, error) {
	description = strings.TrimSpace(description)
	if dimension == "" && complexity == "" && provider != nil {
		return provider.GenerateSpecification(ctx, description)
	}

	spec := gamespec.GameSpecification{
		Name:         strings.TrimSpace(name),
		Description:  description,
		Dimension:    gamespec.Dimension(strings.TrimSpace(dimension)),
		Complexity:   gamespec.Complexity(strings.TrimSpace(complexity)),
		Features:     features,
		Optimization: gamespec.OptimizationLevel(strings.TrimSpace(optimization)),
	}
	if spec.Name == "" {
		spec.Name = gamespec.DeriveTitle(description)
	}
	if spec.Dimension == "" {
		spec.Dimension = gamespec.Dimension2D
	}
	if spec.Complexity == "" {
		spec.Complexity = gamespec.ComplexityBeginner
	}
	if spec.Optimization == "" {
		spec.Optimization = gamespec.OptimizationDebug
	}
	if err := spec.Validate(); err != nil {
		return gamespec.GameSpecification{}, err
	}
	return spec, nil
}

func systemNames(project *blueprint.Project) []string {
	var names []string
	for _, system := range project.Systems() {
		names = append(names, system.Name)
	}
	return names
}

func componentNames(project *blueprint.Project) []string {
	var names []string
	for _, component := range project.Components() {
		names = append(names, component.Name)
	}
	return names
}

func resourceNames(project *blueprint.Project) []string {
	var names []string
	for _, resource := range project.Resources() {
		names = append(names, resource.Name)
	}
	return names
}

// persistProject records the synthesized project under its title. Storage is
// best-effort here: a cache write failure must not fail the tool call.
func persistProject(ctx context.Context, store gamestorage.Store, spec gamespec.GameSpecification, project *blueprint.Project) {
	if store == nil {
		return
	}
	specJSON, err := gamespec.Encode(spec)
	if err != nil {
		log.Printf("encode spec for storage: %v", err)
		return
	}
	projectJSON, err := json.Marshal(project)
	if err != nil {
		log.Printf("encode project for storage: %v", err)
		return
	}
	record := gamestorage.ProjectRecord{
		Title:       spec.Title(),
		SpecJSON:    string(specJSON),
		ProjectJSON: string(projectJSON),
	}
	if err := store.PutProject(ctx, record); err != nil {
		log.Printf("store project %q: %v", record.Title, err)
	}
}

// ProjectCreateHandler executes a project synthesis request.
func ProjectCreateHandler(synthesizer *synth.Synthesizer, provider bridge.SpecProvider, store gamestorage.Store) mcp.ToolHandlerFor[ProjectCreateInput, ProjectCreateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProjectCreateInput) (*mcp.CallToolResult, ProjectCreateResult, error) {
		spec, err := resolveSpec(ctx, provider, input.Description, input.Name, input.Dimension, input.Complexity, input.Optimization, input.Features)
		if err != nil {
			return nil, ProjectCreateResult{}, fmt.Errorf("resolve specification: %w", err)
		}
		project, err := synthesizer.Synthesize(spec)
		if err != nil {
			return nil, ProjectCreateResult{}, fmt.Errorf("synthesize project: %w", err)
		}
		persistProject(ctx, store, spec, project)

		return nil, ProjectCreateResult{
			InvocationID:  newInvocationID(),
			Name:          project.Name(),
			Components:    componentNames(project),
			Systems:       systemNames(project),
			Resources:     resourceNames(project),
			Plugins:       project.Plugins(),
			Optimizations: project.Optimizations(),
		}, nil
	}
}

// ProjectEmitHandler executes a source emission request.
func ProjectEmitHandler(synthesizer *synth.Synthesizer, provider bridge.SpecProvider, store gamestorage.Store) mcp.ToolHandlerFor[ProjectEmitInput, ProjectEmitResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProjectEmitInput) (*mcp.CallToolResult, ProjectEmitResult, error) {
		spec, err := resolveSpec(ctx, provider, input.Description, input.Name, input.Dimension, input.Complexity, input.Optimization, input.Features)
		if err != nil {
			return nil, ProjectEmitResult{}, fmt.Errorf("resolve specification: %w", err)
		}
		project, err := synthesizer.Synthesize(spec)
		if err != nil {
			return nil, ProjectEmitResult{}, fmt.Errorf("synthesize project: %w", err)
		}
		persistProject(ctx, store, spec, project)

		output := emit.Bundle(project, spec)
		result := ProjectEmitResult{InvocationID: newInvocationID(), Name: project.Name(), Assets: output.Assets}
		for _, file := range output.Files {
			result.Files = append(result.Files, EmittedFile{Path: file.Path, Contents: file.Contents})
		}
		return nil, result, nil
	}
}
