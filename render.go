package schematree

import (
	"strings"

	"github.com/schematree/schematree/internal/ansi"
)

// Box-drawing pieces.
const (
	glyphTee   = "├── "
	glyphElbow = "└── "
	glyphPipe  = "│   "
	glyphSpace = "    "
)

// Render returns the multi-line Unicode tree for node. Lines are joined with
// a single newline and there is no trailing newline. The function is pure
// and deterministic for a given tree.
func Render(node *Node) string {
	return RenderStyled(node, Palette{})
}

// RenderStyled is Render with SGR styling applied to keys, types and branch
// glyphs. The zero Palette applies no styling and produces output
// byte-identical to Render.
func RenderStyled(node *Node, pal Palette) string {
	var lines []string

	// Dict roots print just their key, the classic compact look. Any other
	// root shape carries a type annotation like every non-root line.
	if len(node.Types) == 1 && node.Types[0] == typeDict {
		lines = append(lines, paint(pal.Key, node.Key))
	} else {
		lines = append(lines, paint(pal.Key, node.Key)+": "+paint(pal.Type, formatType(node)))
	}

	renderChildren(node.Children, "", pal, &lines)
	return strings.Join(lines, "\n")
}

func renderChildren(children []*Node, prefix string, pal Palette, lines *[]string) {
	for i, child := range children {
		connector, continuation := glyphTee, glyphPipe
		if i == len(children)-1 {
			connector, continuation = glyphElbow, glyphSpace
		}
		*lines = append(*lines,
			paint(pal.Branch, prefix+connector)+paint(pal.Key, child.Key)+": "+paint(pal.Type, formatType(child)))
		if len(child.Children) > 0 {
			renderChildren(child.Children, prefix+continuation, pal, lines)
		}
	}
}

// formatType formats the annotation shown after the colon.
func formatType(n *Node) string {
	if len(n.Types) == 1 && sequenceTypes[n.Types[0]] {
		if n.ElementType != "" {
			return n.Types[0] + "[" + n.ElementType + "]"
		}
		return n.Types[0]
	}
	if len(n.Types) == 1 {
		return n.Types[0]
	}
	return typeListLiteral(n.Types)
}

// typeListLiteral renders a multi-type set as ['NoneType', 'int']. The exact
// punctuation is asserted verbatim by consumers; do not change it.
func typeListLiteral(names []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, n := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('\'')
		b.WriteString(n)
		b.WriteByte('\'')
	}
	b.WriteByte(']')
	return b.String()
}

func paint(code, s string) string {
	if code == "" {
		return s
	}
	return code + s + ansi.Reset
}
