package expr

import (
	"fmt"
	"strings"

	"mathed/core"
)

// fractionBar is the divider glyph between numerator and denominator.
const fractionBar = "─"

// Fraction stacks a numerator over a denominator, separated by a
// horizontal bar. The bar row is the fraction's baseline, so siblings in
// a row line up with the bar rather than with the numerator.
type Fraction struct {
	num, den Node
}

// NewFraction creates a fraction node.
func NewFraction(num, den Node) *Fraction {
	return &Fraction{num: num, den: den}
}

// Children returns the numerator and denominator.
func (f *Fraction) Children() []Node {
	return []Node{f.num, f.den}
}

// Width returns the widest operand plus the configured padding on each
// side.
func (f *Fraction) Width(ctx *Context) int {
	w := f.num.Width(ctx)
	if dw := f.den.Width(ctx); dw > w {
		w = dw
	}
	return 2*ctx.Style.FracPadding + w
}

// Render centers both operands within the fraction's width and joins
// them with a full-width divider row. A cursor in the numerator keeps
// its row; a cursor in the denominator shifts below the divider. Either
// way the column grows by the centering offset of its operand.
func (f *Fraction) Render(ctx *Context) RenderResult {
	n := f.num.Render(ctx)
	d := f.den.Render(ctx)
	n.Validate()
	d.Validate()
	if n.Cursor != nil && d.Cursor != nil {
		panic("expr: cursor in both numerator and denominator")
	}

	width := f.Width(ctx)
	baseline := len(n.Lines) // row index of the divider bar

	var cursor *core.ScreenOffset
	if n.Cursor != nil {
		cursor = &core.ScreenOffset{
			Row: n.Cursor.Row,
			Col: n.Cursor.Col + centerOffset(n.Width(), width),
		}
	}
	if d.Cursor != nil {
		cursor = &core.ScreenOffset{
			Row: d.Cursor.Row + baseline + 1,
			Col: d.Cursor.Col + centerOffset(d.Width(), width),
		}
	}

	lines := make([]string, 0, len(n.Lines)+1+len(d.Lines))
	colors := make([][]core.Color, 0, len(n.Lines)+1+len(d.Lines))
	for i, line := range n.Lines {
		lines = append(lines, centerText(line, width))
		colors = append(colors, centerColors(n.Colors[i], width))
	}
	lines = append(lines, strings.Repeat(fractionBar, width))
	bar := make([]core.Color, width)
	for i := range bar {
		bar[i] = ctx.Style.FractionColor
	}
	colors = append(colors, bar)
	for i, line := range d.Lines {
		lines = append(lines, centerText(line, width))
		colors = append(colors, centerColors(d.Colors[i], width))
	}

	return RenderResult{Lines: lines, Colors: colors, Baseline: baseline, Cursor: cursor}
}

// String renders the source form with both operands parenthesized, so
// evaluation order survives the flattening.
func (f *Fraction) String() string {
	return fmt.Sprintf("((%s) / (%s))", f.num, f.den)
}
