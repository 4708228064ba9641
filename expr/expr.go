// Package expr implements the expression tree and its layout engine.
//
// An expression is a tree of typed nodes: Text leaves, horizontal Rows,
// Fractions and parenthesized groups. Rendering a node produces a
// rectangular character grid with a parallel grid of color tags, a
// baseline for horizontal composition, and, when the focused leaf is
// somewhere in the subtree, a cursor position translated into the
// node's own coordinate frame.
//
// The variant set is closed. Anything that needs to behave differently
// per node kind switches exhaustively over the four concrete types.
package expr

import "mathed/core"

// Node is one element of an expression tree.
type Node interface {
	// Children returns the node's direct children in display order.
	Children() []Node

	// Render lays the node out as a character grid.
	Render(ctx *Context) RenderResult

	// Width returns the rendered width in character cells without
	// performing a full layout.
	Width(ctx *Context) int

	// String returns the node's source form, suitable for evaluation.
	String() string
}

// Style is the immutable render configuration. A Style value is passed
// into every render; nothing in this package reads mutable globals.
type Style struct {
	TextColor     core.Color
	NumberColor   core.Color
	OperatorColor core.Color
	FractionColor core.Color
	ParenColor    core.Color

	// FracPadding is the number of blank cells added on each side of a
	// fraction's widest row.
	FracPadding int
}

// DefaultStyle returns the stock theme: red numbers, yellow identifiers,
// green operators, unstyled structure glyphs, one cell of fraction
// padding.
func DefaultStyle() Style {
	return Style{
		TextColor:     core.ColorText,
		NumberColor:   core.ColorNumber,
		OperatorColor: core.ColorOperator,
		FractionColor: core.ColorFraction,
		ParenColor:    core.ColorParen,
		FracPadding:   1,
	}
}

// Context carries the style and the focus record through a render pass.
//
// The cursor is not stored in the tree. The editor owns a single focus
// (leaf pointer + column) and threads it here, so exactly one leaf can
// emit a cursor per render and focus transfer is a plain assignment.
type Context struct {
	Style    Style
	Focus    *Text // leaf that owns the cursor; nil when nothing is focused
	FocusCol int
}

// Render lays out a whole tree and checks the result against the grid
// invariants. A nil context renders with the default style and no focus.
func Render(root Node, ctx *Context) RenderResult {
	if ctx == nil {
		ctx = &Context{Style: DefaultStyle()}
	}
	r := root.Render(ctx)
	r.Validate()
	return r
}

// Flatten returns the tree in pre-order: each node before its children,
// children in display order. This ordering defines "next" and
// "previous" for vertical cursor navigation.
func Flatten(root Node) []Node {
	var out []Node
	var walk func(Node)
	walk = func(n Node) {
		out = append(out, n)
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(root)
	return out
}

// Leaves returns the Text leaves of the tree in pre-order.
func Leaves(root Node) []*Text {
	var out []*Text
	for _, n := range Flatten(root) {
		if t, ok := n.(*Text); ok {
			out = append(out, t)
		}
	}
	return out
}

// ParentIndex maps each node to its parent in a single pre-order pass.
// Keys are compared by identity; a tree owns its children exclusively,
// so no node appears under two parents. The root has no entry.
func ParentIndex(root Node) map[Node]Node {
	parents := make(map[Node]Node)
	var walk func(Node)
	walk = func(n Node) {
		for _, c := range n.Children() {
			parents[c] = n
			walk(c)
		}
	}
	walk(root)
	return parents
}
