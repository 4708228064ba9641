package expr

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"mathed/core"
)

// RenderResult is the materialized grid produced by laying out a node:
// character rows of equal width, a parallel grid of per-cell color tags,
// the baseline row used when composing siblings horizontally, and the
// cursor position in the node's own coordinate frame (nil when the
// focused leaf is not in this subtree).
type RenderResult struct {
	Lines    []string
	Colors   [][]core.Color
	Baseline int
	Cursor   *core.ScreenOffset
}

// Width returns the common rune length of the result's rows.
func (r RenderResult) Width() int {
	if len(r.Lines) == 0 {
		return 0
	}
	return utf8.RuneCountInString(r.Lines[0])
}

// Height returns the number of rows.
func (r RenderResult) Height() int {
	return len(r.Lines)
}

// Validate panics when the result violates the grid invariants: unequal
// row widths, a color row out of step with its line, a baseline or
// cursor outside the grid. These are programming errors in the layout
// engine, so they fail loudly rather than being coerced; later layout
// arithmetic silently assumes them.
func (r RenderResult) Validate() {
	if len(r.Lines) == 0 {
		panic("expr: render result has no rows")
	}
	w := r.Width()
	for i, line := range r.Lines {
		if got := utf8.RuneCountInString(line); got != w {
			panic(fmt.Sprintf("expr: row %d has width %d, want %d", i, got, w))
		}
	}
	if len(r.Colors) != len(r.Lines) {
		panic(fmt.Sprintf("expr: %d color rows for %d lines", len(r.Colors), len(r.Lines)))
	}
	for i, row := range r.Colors {
		if len(row) != w {
			panic(fmt.Sprintf("expr: color row %d has %d cells, want %d", i, len(row), w))
		}
	}
	if r.Baseline < 0 || r.Baseline >= len(r.Lines) {
		panic(fmt.Sprintf("expr: baseline %d outside %d rows", r.Baseline, len(r.Lines)))
	}
	if c := r.Cursor; c != nil {
		if c.Row < 0 || c.Row >= len(r.Lines) || c.Col < 0 || c.Col > w {
			panic(fmt.Sprintf("expr: cursor (%d,%d) outside %dx%d grid", c.Row, c.Col, len(r.Lines), w))
		}
	}
}

// centerText centers s within a field of the given rune width. When the
// leftover space is odd the extra cell goes to the right.
func centerText(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	right := width - n - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// centerColors pads a color row out to width with unstyled cells, using
// the same bias as centerText.
func centerColors(row []core.Color, width int) []core.Color {
	if len(row) >= width {
		return row
	}
	left := (width - len(row)) / 2
	out := make([]core.Color, width)
	copy(out[left:], row)
	return out
}

// centerOffset returns the column where content of the given width lands
// when centered within total columns.
func centerOffset(width, total int) int {
	if total <= width {
		return 0
	}
	return (total - width) / 2
}

// blankColors returns a row of unstyled cells.
func blankColors(width int) []core.Color {
	return make([]core.Color, width)
}
