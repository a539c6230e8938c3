package jack

import (
	"fmt"
	"strings"
)

// renderIndent is the per-level indentation applied to a node's children.
const renderIndent = 2

// xmlEscaper rewrites the characters that would collide with the tagged-text
// markup. The output format is a compatibility surface: tag names, the space
// padding around token text, and this escape set must not change.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
)

// RenderTokens prints the whole token sequence as a flat tagged-text
// document, one line per token.
func RenderTokens(tokens []*Token) string {
	var out strings.Builder
	out.WriteString("<tokens>\n")
	for _, tok := range tokens {
		writeTokenLine(&out, tok, 0)
	}
	out.WriteString("</tokens>\n")
	return out.String()
}

// Render prints the syntax tree as nested tagged-text blocks: one block per
// node, one line per terminal token. Rendering is a pure function of the
// tree and is deterministic for identical inputs.
func Render(node *Node) string {
	var out strings.Builder
	renderNode(&out, node, 0)
	return out.String()
}

func renderNode(out *strings.Builder, node *Node, level int) {
	indent := strings.Repeat(" ", level)
	fmt.Fprintf(out, "%s<%s>\n", indent, node.Kind)
	for _, child := range node.Children {
		switch child := child.(type) {
		case *Node:
			renderNode(out, child, level+renderIndent)
		case *Token:
			writeTokenLine(out, child, level+renderIndent)
		}
	}
	fmt.Fprintf(out, "%s</%s>\n", indent, node.Kind)
}

func writeTokenLine(out *strings.Builder, tok *Token, level int) {
	fmt.Fprintf(
		out,
		"%s<%s> %s </%s>\n",
		strings.Repeat(" ", level),
		tok.Kind,
		xmlEscaper.Replace(tok.Content),
		tok.Kind,
	)
}
