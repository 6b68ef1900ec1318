package flatten

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// PathSeparator joins ancestor keys into a section title.
const PathSeparator = " / "

// Section is one flattened (title, content) pair produced by walking
// the knowledge tree.
type Section struct {
	// Title encodes the traversal path from the root to this section.
	Title string

	// Content is the newline-joined rendering of a sequence's elements
	// or the string form of a scalar.
	Content string
}

// Flatten converts a parsed YAML tree into a flat ordered sequence of
// sections via depth-first traversal.
//
// Mappings are the only branching nodes: each entry is visited in
// document order with the entry's key appended to the path. Sequences
// and scalars terminate recursion and emit one section each; elements
// of a sequence are rendered as text, never recursed into. A mapping
// root starts one walk per top-level key; any other root walks under a
// synthetic "root" path segment.
//
// Flatten never fails: unknown node kinds render as empty scalar text.
// Repeated calls over the same tree produce identical output.
func Flatten(root *yaml.Node) []Section {
	root = resolve(root)
	if root == nil || root.Kind == 0 {
		return nil
	}
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil
		}
		root = resolve(root.Content[0])
		if root == nil {
			return nil
		}
	}

	var out []Section
	if root.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(root.Content); i += 2 {
			key := scalarText(resolve(root.Content[i]))
			out = walk(resolve(root.Content[i+1]), key, out)
		}
		return out
	}
	return walk(root, "root", out)
}

func walk(n *yaml.Node, title string, out []Section) []Section {
	if n == nil {
		return out
	}
	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := scalarText(resolve(n.Content[i]))
			out = walk(resolve(n.Content[i+1]), title+PathSeparator+key, out)
		}
		return out

	case yaml.SequenceNode:
		if len(n.Content) == 0 {
			return out
		}
		parts := make([]string, len(n.Content))
		for i, item := range n.Content {
			parts[i] = render(resolve(item))
		}
		return append(out, Section{Title: title, Content: strings.Join(parts, "\n")})

	default:
		return append(out, Section{Title: title, Content: scalarText(n)})
	}
}

// render produces the single-line text form of a sequence element.
// Nested mappings and sequences are stringified in flow form rather
// than recursed into.
func render(n *yaml.Node) string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case yaml.MappingNode:
		pairs := make([]string, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			pairs = append(pairs, render(resolve(n.Content[i]))+": "+render(resolve(n.Content[i+1])))
		}
		return "{" + strings.Join(pairs, ", ") + "}"
	case yaml.SequenceNode:
		items := make([]string, len(n.Content))
		for i, item := range n.Content {
			items[i] = render(resolve(item))
		}
		return "[" + strings.Join(items, ", ") + "]"
	default:
		return scalarText(n)
	}
}

// scalarText returns the generic string representation of a scalar.
// Numbers and booleans keep their source text; nulls render as "null".
func scalarText(n *yaml.Node) string {
	if n == nil {
		return ""
	}
	if n.Kind != yaml.ScalarNode {
		return ""
	}
	if n.Tag == "!!null" {
		return "null"
	}
	return n.Value
}

// resolve follows alias nodes to their anchor target.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}
