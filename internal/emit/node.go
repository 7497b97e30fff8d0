// Package emit renders project blueprints into Bevy source text. Each
// renderable unit becomes a small tagged node tree walked by one recursive
// formatter, so output stays byte-stable and snapshot-testable.
package emit

import "strings"

type nodeKind int

const (
	nodeLine nodeKind = iota
	nodeBlank
	nodeIndent
)

type node struct {
	kind     nodeKind
	text     string
	children []node
}

func line(text string) node {
	return node{kind: nodeLine, text: text}
}

func blank() node {
	return node{kind: nodeBlank}
}

func indent(children ...node) node {
	return node{kind: nodeIndent, children: children}
}

const indentUnit = "    "

// render walks the node tree depth-first, indenting one unit per nesting
// level. Blank nodes emit empty lines without trailing whitespace.
func render(b *strings.Builder, nodes []node, depth int) {
	for _, n := range nodes {
		switch n.kind {
		case nodeLine:
			b.WriteString(strings.Repeat(indentUnit, depth))
			b.WriteString(n.text)
			b.WriteByte('\n')
		case nodeBlank:
			b.WriteByte('\n')
		case nodeIndent:
			render(b, n.children, depth+1)
		}
	}
}

func renderTree(nodes []node) string {
	var b strings.Builder
	render(&b, nodes, 0)
	return b.String()
}

// snakeCase converts a CamelCase identifier to snake_case for parameter
// naming.
func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
