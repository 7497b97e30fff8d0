package emit

import (
	"fmt"
	"strings"

	"github.com/louisbranch/gameforge/internal/blueprint"
	"github.com/louisbranch/gameforge/internal/gamespec"
)

// SourceFile is one rendered file of the generated project.
type SourceFile struct {
	Path     string `json:"path"`
	Contents string `json:"contents"`
}

// Output bundles everything a generated project ships with: rendered files
// plus the external asset paths the project expects to find.
type Output struct {
	Files  []SourceFile `json:"files"`
	Assets []string     `json:"assets"`
}

// Bundle renders the complete project: manifest, entry source, and the
// derived asset list. Emission never fails for a synthesized project and is
// referentially transparent.
func Bundle(project *blueprint.Project, spec gamespec.GameSpecification) Output {
	return Output{
		Files: []SourceFile{
			{Path: "Cargo.toml", Contents: Manifest(project)},
			{Path: "src/main.rs", Contents: Source(project, spec.Dimension)},
		},
		Assets: Assets(spec.Dimension, spec.Features),
	}
}

// Manifest renders the Cargo manifest for the generated crate.
func Manifest(project *blueprint.Project) string {
	crate := gamespec.SanitizeName(project.Name())
	return fmt.Sprintf(`[package]
name = %q
version = "0.1.0"
edition = "2021"

[dependencies]
bevy = "0.14"
`, crate)
}

// Source renders the full entry source for the project in fixed order:
// header, preamble, components, resources, systems, then the entry point.
func Source(project *blueprint.Project, dimension gamespec.Dimension) string {
	var sections []string

	sections = append(sections, header(project))
	sections = append(sections, preamble())

	for _, component := range project.Components() {
		sections = append(sections, renderStruct(component.Name, component.Fields, component.Traits))
	}
	for _, resource := range project.Resources() {
		sections = append(sections, renderStruct(resource.Name, resource.Fields, resource.Traits))
	}
	for _, system := range project.Systems() {
		sections = append(sections, renderSystem(system))
	}
	sections = append(sections, renderEntryPoint(project, dimension))

	return strings.Join(sections, "\n")
}

func header(project *blueprint.Project) string {
	nodes := []node{
		line(fmt.Sprintf("//! %s", project.Name())),
		line("//! Generated by gameforge."),
	}
	for _, note := range project.Optimizations() {
		nodes = append(nodes, line(fmt.Sprintf("//! optimization: %s", note)))
	}
	return renderTree(nodes)
}

func preamble() string {
	return renderTree([]node{
		line("use bevy::prelude::*;"),
		line("use std::collections::HashMap;"),
	})
}

// renderStruct renders a component or resource declaration: capability-tag
// derive line when tags are present, then the field list in declaration
// order.
func renderStruct(name string, fields []blueprint.Field, traits []string) string {
	var nodes []node
	if len(traits) > 0 {
		nodes = append(nodes, line(fmt.Sprintf("#[derive(%s)]", strings.Join(traits, ", "))))
	}
	nodes = append(nodes, line(fmt.Sprintf("pub struct %s {", name)))
	var fieldNodes []node
	for _, field := range fields {
		fieldNodes = append(fieldNodes, line(fmt.Sprintf("pub %s: %s,", field.Name, field.Type)))
	}
	nodes = append(nodes, indent(fieldNodes...), line("}"))
	return renderTree(nodes)
}

// renderSystem renders a system as a callable taking one query parameter
// built from its component references and one parameter per resource
// reference. The body is either a parallel or a sequential iteration block;
// the two paths are mutually exclusive and purely textual.
func renderSystem(system blueprint.SystemDefinition) string {
	nodes := []node{line(fmt.Sprintf("fn %s(", system.Name))}

	var params []node
	if len(system.Queries) > 0 {
		refs := make([]string, len(system.Queries))
		for i, query := range system.Queries {
			if query.Access == blueprint.AccessReadWrite {
				refs[i] = "&mut " + query.Component
			} else {
				refs[i] = "&" + query.Component
			}
		}
		params = append(params, line(fmt.Sprintf("mut query: Query<(%s)>,", strings.Join(refs, ", "))))
	}
	for _, resource := range system.Resources {
		params = append(params, line(fmt.Sprintf("%s: Res<%s>,", snakeCase(resource), resource)))
	}
	nodes = append(nodes, indent(params...), line(") {"))

	var body []node
	if system.Parallel {
		body = append(body,
			line("query.par_iter_mut().for_each(|components| {"),
			indent(line("// parallel iteration")),
			line("});"),
		)
	} else {
		body = append(body,
			line("for components in query.iter_mut() {"),
			indent(line("// sequential iteration")),
			line("}"),
		)
	}
	nodes = append(nodes, indent(body...), line("}"))
	return renderTree(nodes)
}

// renderEntryPoint renders main: plugin registrations in insertion order
// (default plugin first), one setup routine, and all systems declared as a
// single update group. The engine decides actual parallel scheduling.
func renderEntryPoint(project *blueprint.Project, dimension gamespec.Dimension) string {
	var app []node
	app = append(app, line("App::new()"))

	var calls []node
	for _, plugin := range project.Plugins() {
		calls = append(calls, line(fmt.Sprintf(".add_plugins(%s)", plugin)))
	}
	calls = append(calls, line(".add_systems(Startup, setup)"))
	calls = append(calls, line(".add_systems(Update, ("))

	var group []node
	for _, system := range project.Systems() {
		group = append(group, line(system.Name+","))
	}
	calls = append(calls, indent(group...))
	calls = append(calls, line("))"))
	calls = append(calls, line(".run();"))
	app = append(app, indent(calls...))

	camera := "Camera2d"
	if dimension == gamespec.Dimension3D {
		camera = "Camera3d::default()"
	}

	nodes := []node{
		line("fn main() {"),
		indent(app...),
		line("}"),
		blank(),
		line("fn setup(mut commands: Commands) {"),
		indent(line(fmt.Sprintf("commands.spawn(%s);", camera))),
		line("}"),
	}
	return renderTree(nodes)
}
