package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"mathed/editor"
	"mathed/eval"
	"mathed/expr"
	"mathed/terminal"
)

func main() {
	var (
		colormap = flag.Bool("colormap", false, "Show the color-tag debug view below the expression")
		padding  = flag.Int("frac-padding", 1, "Blank cells on each side of a fraction")
	)
	flag.Parse()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "mathed: stdin is not a terminal")
		os.Exit(1)
	}

	style := expr.DefaultStyle()
	style.FracPadding = *padding

	if err := run(style, *colormap); err != nil {
		fmt.Fprintf(os.Stderr, "mathed: %v\n", err)
		os.Exit(1)
	}
}

// run owns the read-render-key loop. One keystroke is fully applied to
// the tree before the next frame is drawn and the next keystroke read.
func run(style expr.Style, colormap bool) error {
	screen, err := terminal.New()
	if err != nil {
		return err
	}
	defer screen.Fini()
	if colormap {
		screen.ToggleColormap()
	}

	root, focused := demoExpression()

	var status string
	ed := editor.New(root, style, func(msg string) { status = msg })
	ed.SetFocus(focused, 1)

	ev := eval.New(map[string]float64{"var": 10})
	defer ev.Close()

	for {
		source := root.String()
		result, err := ev.Eval(source)
		if err != nil {
			result = err.Error()
		}

		screen.Draw(terminal.Frame{
			Result: ed.Render(),
			Source: source,
			Eval:   result,
			Status: status,
		})

		key, ok := screen.PollKey()
		if !ok {
			return nil
		}
		status = ""
		ed.HandleKey(key)
	}
}

// demoExpression builds the starting tree: a couple of fractions, one
// nested, around a free variable. Returns the tree and the leaf that
// starts focused.
func demoExpression() (expr.Node, *expr.Text) {
	focused := expr.NewText("555")
	root := expr.NewRow(
		expr.NewRow(
			expr.NewText(""),
			expr.NewFraction(expr.NewText("1"), expr.NewText("2")),
			expr.NewText(""),
		),
		expr.NewText(" + "),
		expr.NewText("var"),
		expr.NewText(" + "),
		expr.NewRow(
			expr.NewText(""),
			expr.NewFraction(
				expr.NewRow(
					expr.NewText(""),
					expr.NewFraction(expr.NewText("44444"), focused),
					expr.NewText(""),
				),
				expr.NewText("6"),
			),
			expr.NewText(""),
		),
	)
	return root, focused
}
