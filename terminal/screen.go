// Package terminal puts layout results on screen and decodes keystrokes
// for the editor. It is the only package that knows what a color tag
// looks like as an actual terminal style.
package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"mathed/core"
	"mathed/expr"
)

// Frame is one full repaint: the rendered expression, its source form,
// the evaluation result (or error text), and the current status-line
// diagnostic.
type Frame struct {
	Result expr.RenderResult
	Source string
	Eval   string
	Status string
}

// Screen wraps a tcell screen with the drawing the editor loop needs.
type Screen struct {
	tc       tcell.Screen
	colormap bool
}

// New initializes the terminal: raw mode, alternate buffer, hidden
// hardware cursor until the first frame places it.
func New() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := tc.Init(); err != nil {
		return nil, err
	}
	tc.HideCursor()
	return &Screen{tc: tc}, nil
}

// NewFrom wraps an already-initialized tcell screen. Tests use this
// with tcell's simulation screen.
func NewFrom(tc tcell.Screen) *Screen {
	return &Screen{tc: tc}
}

// Fini restores the terminal state.
func (s *Screen) Fini() {
	s.tc.Fini()
}

// ToggleColormap flips the color-tag debug view, which repeats the grid
// as tinted blocks below the expression.
func (s *Screen) ToggleColormap() {
	s.colormap = !s.colormap
}

// Draw paints a frame: expression grid at the top left, optional
// colormap below it, the source echo and evaluation result underneath,
// and the status line on the last terminal row. The hardware cursor
// follows the frame's cursor position.
func (s *Screen) Draw(f Frame) {
	s.tc.Clear()

	row := 0
	for ; row < len(f.Result.Lines); row++ {
		drawCells(s.tc, 0, row, f.Result.Lines[row], f.Result.Colors[row])
	}

	if s.colormap {
		row++
		for _, colorRow := range f.Result.Colors {
			x := 0
			for _, c := range colorRow {
				s.tc.SetContent(x, row, '▒', nil, styleFor(c))
				x++
			}
			row++
		}
	}

	row++
	drawText(s.tc, 0, row, ">>> "+f.Source, tcell.StyleDefault.Dim(true))
	row++
	drawText(s.tc, 0, row, f.Eval, tcell.StyleDefault)

	_, h := s.tc.Size()
	if f.Status != "" {
		drawText(s.tc, 0, h-1, f.Status, tcell.StyleDefault.Reverse(true))
	}

	if c := f.Result.Cursor; c != nil {
		s.tc.ShowCursor(c.Col, c.Row)
	} else {
		s.tc.HideCursor()
	}

	s.tc.Show()
}

// PollKey blocks until the next keystroke. It returns false when the
// user asked to quit (Escape or Ctrl+C); resize events are absorbed
// internally.
func (s *Screen) PollKey() (core.KeyEvent, bool) {
	for {
		switch ev := s.tc.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return core.KeyEvent{}, false
			}
			return DecodeKey(ev), true
		case *tcell.EventResize:
			s.tc.Sync()
		}
	}
}

// DecodeKey translates a tcell key event into the editor's taxonomy.
// Keys outside the taxonomy come back as KeyNone and are never consumed
// by the editor.
func DecodeKey(ev *tcell.EventKey) core.KeyEvent {
	switch ev.Key() {
	case tcell.KeyLeft:
		return core.KeyEvent{Kind: core.KeyLeft}
	case tcell.KeyRight:
		return core.KeyEvent{Kind: core.KeyRight}
	case tcell.KeyUp:
		return core.KeyEvent{Kind: core.KeyUp}
	case tcell.KeyDown:
		return core.KeyEvent{Kind: core.KeyDown}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return core.KeyEvent{Kind: core.KeyBackspace}
	case tcell.KeyRune:
		return core.RuneKey(ev.Rune())
	}
	return core.KeyEvent{Kind: core.KeyNone}
}

// styleFor maps a color tag to a terminal style.
func styleFor(c core.Color) tcell.Style {
	st := tcell.StyleDefault
	switch c {
	case core.ColorNumber:
		return st.Foreground(tcell.ColorRed)
	case core.ColorText:
		return st.Foreground(tcell.ColorYellow).Italic(true)
	case core.ColorOperator:
		return st.Foreground(tcell.ColorGreen)
	}
	return st
}

// drawCells paints one grid row with one style per cell, advancing by
// display width so wide runes keep the grid aligned.
func drawCells(tc tcell.Screen, x, y int, line string, colors []core.Color) {
	col := x
	i := 0
	for _, r := range line {
		st := tcell.StyleDefault
		if i < len(colors) {
			st = styleFor(colors[i])
		}
		tc.SetContent(col, y, r, nil, st)
		col += runewidth.RuneWidth(r)
		i++
	}
}

// drawText paints a plain string in a single style.
func drawText(tc tcell.Screen, x, y int, text string, st tcell.Style) {
	col := x
	for _, r := range text {
		tc.SetContent(col, y, r, nil, st)
		col += runewidth.RuneWidth(r)
	}
}
