// Package core contains the fundamental types used throughout the mathed
// expression editor.
package core

// ScreenOffset represents a 2D position in character cells.
// Origin (0,0) is the top-left corner; Row increases downward and Col
// increases rightward. When used as a cursor position, Col may equal the
// width of the field to mean "just past the last character".
type ScreenOffset struct {
	Row, Col int
}

// Color is an opaque tag attached to a rendered character cell. The layout
// engine only compares tags for equality; mapping a tag to an actual
// terminal style is the display layer's job.
type Color int

const (
	ColorNone Color = iota // unstyled cell
	ColorNumber
	ColorText
	ColorOperator
	ColorFraction
	ColorParen
)

// String returns the string representation of a Color.
func (c Color) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorNumber:
		return "number"
	case ColorText:
		return "text"
	case ColorOperator:
		return "operator"
	case ColorFraction:
		return "fraction"
	case ColorParen:
		return "paren"
	default:
		return "unknown"
	}
}

// KeyKind identifies the keys the editor understands.
type KeyKind int

const (
	KeyNone KeyKind = iota // unrecognized; never consumed by the editor
	KeyRune
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// KeyEvent represents a single decoded keystroke: either a printable
// rune or one of the named editing keys.
type KeyEvent struct {
	Kind KeyKind
	Rune rune // valid when Kind == KeyRune
}

// RuneKey returns the key event for a printable character.
func RuneKey(r rune) KeyEvent {
	return KeyEvent{Kind: KeyRune, Rune: r}
}
