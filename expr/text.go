package expr

import (
	"strings"
	"unicode"

	"mathed/core"
)

// operatorRunes are the characters tagged with the operator color.
const operatorRunes = "+-*/=|&^@"

// Text is the only leaf variant and the only place the editing focus can
// live. Its contents are mutable; the shape of the tree around it is
// fixed for the session.
type Text struct {
	text []rune
}

// NewText creates a leaf with the given contents.
func NewText(s string) *Text {
	return &Text{text: []rune(s)}
}

// Children returns nil: a leaf has no children.
func (t *Text) Children() []Node { return nil }

// Len returns the number of characters in the leaf.
func (t *Text) Len() int { return len(t.text) }

// Text returns the leaf's contents.
func (t *Text) Text() string { return string(t.text) }

// InsertAt inserts r before column col. col must be within [0, Len()].
func (t *Text) InsertAt(col int, r rune) {
	if col < 0 || col > len(t.text) {
		panic("expr: insert outside text bounds")
	}
	t.text = append(t.text, 0)
	copy(t.text[col+1:], t.text[col:])
	t.text[col] = r
}

// DeleteAt removes the character at column col.
func (t *Text) DeleteAt(col int) {
	if col < 0 || col >= len(t.text) {
		panic("expr: delete outside text bounds")
	}
	t.text = append(t.text[:col], t.text[col+1:]...)
}

// Width returns the number of characters.
func (t *Text) Width(*Context) int { return len(t.text) }

// Render produces a single row with one color tag per character. The
// cursor appears when this leaf is the context's focus.
func (t *Text) Render(ctx *Context) RenderResult {
	colors := make([]core.Color, len(t.text))
	for i, r := range t.text {
		colors[i] = classify(r, ctx.Style)
	}

	var cursor *core.ScreenOffset
	if ctx.Focus == t {
		cursor = &core.ScreenOffset{Row: 0, Col: ctx.FocusCol}
	}

	return RenderResult{
		Lines:    []string{string(t.text)},
		Colors:   [][]core.Color{colors},
		Baseline: 0,
		Cursor:   cursor,
	}
}

// String returns the leaf's contents unchanged.
func (t *Text) String() string { return string(t.text) }

// classify picks the color tag for a single character.
func classify(r rune, s Style) core.Color {
	switch {
	case unicode.IsLetter(r):
		return s.TextColor
	case unicode.IsDigit(r):
		return s.NumberColor
	case strings.ContainsRune(operatorRunes, r):
		return s.OperatorColor
	default:
		return core.ColorNone
	}
}
