package expr

import (
	"fmt"

	"mathed/core"
)

// Bracket glyph pairs by vertical position. A group taller than one row
// gets a bracket assembled from top, middle and bottom segments.
var (
	parenTop    = [2]string{"⎛", "⎞"}
	parenMid    = [2]string{"⎜", "⎟"}
	parenBottom = [2]string{"⎝", "⎠"}
)

// Paren wraps a child in brackets. It never owns the focus itself; it
// only shifts the child's cursor one column right to account for the
// opening bracket.
type Paren struct {
	inner Node
}

// NewParen creates a parenthesized group.
func NewParen(inner Node) *Paren {
	return &Paren{inner: inner}
}

// Children returns the wrapped node.
func (p *Paren) Children() []Node {
	return []Node{p.inner}
}

// Width returns the child's width plus one bracket column on each side.
func (p *Paren) Width(ctx *Context) int {
	return p.inner.Width(ctx) + 2
}

// Render wraps the child's grid in brackets. A single-row child gets
// plain parentheses; a taller child gets a segmented bracket with
// distinct top, middle and bottom glyphs. The baseline is inherited from
// the child.
func (p *Paren) Render(ctx *Context) RenderResult {
	inner := p.inner.Render(ctx)
	width := inner.Width()

	var cursor *core.ScreenOffset
	if inner.Cursor != nil {
		cursor = &core.ScreenOffset{Row: inner.Cursor.Row, Col: inner.Cursor.Col + 1}
	}

	if len(inner.Lines) == 1 {
		colors := make([]core.Color, 0, width+2)
		colors = append(colors, ctx.Style.ParenColor)
		colors = append(colors, inner.Colors[0]...)
		colors = append(colors, ctx.Style.ParenColor)
		return RenderResult{
			Lines:    []string{"(" + inner.Lines[0] + ")"},
			Colors:   [][]core.Color{colors},
			Baseline: 0,
			Cursor:   cursor,
		}
	}

	lines := make([]string, len(inner.Lines))
	colors := make([][]core.Color, len(inner.Lines))
	for i, line := range inner.Lines {
		pair := parenMid
		switch i {
		case 0:
			pair = parenTop
		case len(inner.Lines) - 1:
			pair = parenBottom
		}
		lines[i] = pair[0] + centerText(line, width) + pair[1]

		row := make([]core.Color, 0, width+2)
		row = append(row, ctx.Style.ParenColor)
		row = append(row, centerColors(inner.Colors[i], width)...)
		row = append(row, ctx.Style.ParenColor)
		colors[i] = row
	}

	return RenderResult{Lines: lines, Colors: colors, Baseline: inner.Baseline, Cursor: cursor}
}

// String returns the parenthesized source form.
func (p *Paren) String() string {
	return fmt.Sprintf("(%s)", p.inner)
}
