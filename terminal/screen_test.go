package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"mathed/core"
	"mathed/expr"
)

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want core.KeyEvent
	}{
		{"Left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), core.KeyEvent{Kind: core.KeyLeft}},
		{"Right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), core.KeyEvent{Kind: core.KeyRight}},
		{"Up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.KeyEvent{Kind: core.KeyUp}},
		{"Down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), core.KeyEvent{Kind: core.KeyDown}},
		{"Backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), core.KeyEvent{Kind: core.KeyBackspace}},
		{"Rune", tcell.NewEventKey(tcell.KeyRune, '5', tcell.ModNone), core.RuneKey('5')},
		{"Unrecognized", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), core.KeyEvent{Kind: core.KeyNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeKey(tt.ev); got != tt.want {
				t.Errorf("DecodeKey = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStyleFor_StructureGlyphsUnstyled(t *testing.T) {
	for _, c := range []core.Color{core.ColorNone, core.ColorFraction, core.ColorParen} {
		if got := styleFor(c); got != tcell.StyleDefault {
			t.Errorf("styleFor(%v) styled, want default", c)
		}
	}
	for _, c := range []core.Color{core.ColorNumber, core.ColorText, core.ColorOperator} {
		if got := styleFor(c); got == tcell.StyleDefault {
			t.Errorf("styleFor(%v) = default, want a styled cell", c)
		}
	}
}

func TestDraw_Simulation(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer sim.Fini()
	sim.SetSize(40, 10)

	screen := NewFrom(sim)

	frac := expr.NewFraction(expr.NewText("1"), expr.NewText("2"))
	num := expr.Leaves(frac)[0]
	r := expr.Render(frac, &expr.Context{Style: expr.DefaultStyle(), Focus: num, FocusCol: 1})

	screen.Draw(Frame{Result: r, Source: frac.String(), Eval: "0.5", Status: "ok"})

	cells, w, _ := sim.GetContents()
	cellAt := func(x, y int) tcell.SimCell { return cells[y*w+x] }

	// The numerator digit sits centered on the first row.
	if got := cellAt(1, 0).Runes[0]; got != '1' {
		t.Errorf("cell (1,0) = %q, want '1'", got)
	}
	// The divider bar fills the second row.
	for x := 0; x < 3; x++ {
		if got := cellAt(x, 1).Runes[0]; got != '─' {
			t.Errorf("cell (%d,1) = %q, want divider", x, got)
		}
	}
	// The source echo appears below the grid.
	if got := cellAt(0, 4).Runes[0]; got != '>' {
		t.Errorf("cell (0,4) = %q, want start of source echo", got)
	}

	// The hardware cursor follows the render result's cursor.
	cx, cy, visible := sim.GetCursor()
	if !visible || cx != r.Cursor.Col || cy != r.Cursor.Row {
		t.Errorf("cursor = (%d,%d,%v), want (%d,%d,true)", cx, cy, visible, r.Cursor.Col, r.Cursor.Row)
	}
}
