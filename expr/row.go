package expr

import (
	"strings"

	"mathed/core"
)

// Row lays its children out side by side with their baselines aligned on
// the same output row.
type Row struct {
	items []Node
}

// NewRow creates a horizontal sequence of nodes.
func NewRow(items ...Node) *Row {
	return &Row{items: items}
}

// Children returns the row's items in display order.
func (r *Row) Children() []Node { return r.items }

// Width returns the sum of the children's widths.
func (r *Row) Width(ctx *Context) int {
	w := 0
	for _, c := range r.items {
		w += c.Width(ctx)
	}
	return w
}

// Render composes the children's grids:
//
//  1. The row's baseline is the deepest child baseline.
//  2. Each child is padded with blank rows on top until its baseline
//     lands on the row's baseline.
//  3. Rows are concatenated left to right; children shorter than the
//     tallest contribute blank rows at the bottom.
//
// The focused child's cursor shifts down by its top padding and right by
// the total width of the children before it.
func (r *Row) Render(ctx *Context) RenderResult {
	if len(r.items) == 0 {
		return RenderResult{Lines: []string{""}, Colors: [][]core.Color{{}}}
	}

	results := make([]RenderResult, len(r.items))
	baseline := 0
	for i, c := range r.items {
		results[i] = c.Render(ctx)
		if results[i].Baseline > baseline {
			baseline = results[i].Baseline
		}
	}

	var cursor *core.ScreenOffset
	height := 0
	colOffset := 0
	for i := range results {
		res := &results[i]
		w := res.Width()
		pad := baseline - res.Baseline
		for p := 0; p < pad; p++ {
			res.Lines = append([]string{strings.Repeat(" ", w)}, res.Lines...)
			res.Colors = append([][]core.Color{blankColors(w)}, res.Colors...)
		}
		if res.Cursor != nil {
			if cursor != nil {
				panic("expr: more than one child carries a cursor")
			}
			cursor = &core.ScreenOffset{
				Row: res.Cursor.Row + pad,
				Col: res.Cursor.Col + colOffset,
			}
		}
		if len(res.Lines) > height {
			height = len(res.Lines)
		}
		colOffset += w
	}

	lines := make([]string, height)
	colors := make([][]core.Color, height)
	for row := 0; row < height; row++ {
		var sb strings.Builder
		var colorRow []core.Color
		for i := range results {
			res := &results[i]
			w := res.Width()
			if row < len(res.Lines) {
				sb.WriteString(centerText(res.Lines[row], w))
				colorRow = append(colorRow, centerColors(res.Colors[row], w)...)
			} else {
				sb.WriteString(strings.Repeat(" ", w))
				colorRow = append(colorRow, blankColors(w)...)
			}
		}
		lines[row] = sb.String()
		colors[row] = colorRow
	}

	return RenderResult{Lines: lines, Colors: colors, Baseline: baseline, Cursor: cursor}
}

// String concatenates the children's source forms.
func (r *Row) String() string {
	var sb strings.Builder
	for _, c := range r.items {
		sb.WriteString(c.String())
	}
	return sb.String()
}
