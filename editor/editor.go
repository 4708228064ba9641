// Package editor drives cursor navigation and text editing over an
// expression tree.
//
// The tree never holds the cursor itself. The editor owns a single focus
// record, a Text leaf plus a column, and threads it through every
// render, so "exactly one live cursor" holds by construction and moving
// the focus is one assignment instead of a clear-then-set across two
// nodes.
package editor

import (
	"unicode"

	"mathed/core"
	"mathed/expr"
)

// Reporter receives non-fatal diagnostics: navigation dead ends and
// edits the editor declines to perform. The display layer typically
// routes them to a status line.
type Reporter func(msg string)

// Editor holds an expression tree, the focus record and the render
// style. The tree's shape is fixed for the editor's lifetime, so the
// pre-order flattening and the parent index are built once.
type Editor struct {
	root    expr.Node
	flat    []expr.Node
	parents map[expr.Node]expr.Node

	focus *expr.Text
	col   int

	style  expr.Style
	report Reporter
}

// New creates an editor over root, focused on the tree's first leaf at
// column 0. A nil reporter discards diagnostics.
func New(root expr.Node, style expr.Style, report Reporter) *Editor {
	if report == nil {
		report = func(string) {}
	}
	e := &Editor{
		root:    root,
		flat:    expr.Flatten(root),
		parents: expr.ParentIndex(root),
		style:   style,
		report:  report,
	}
	if leaves := expr.Leaves(root); len(leaves) > 0 {
		e.focus = leaves[0]
	}
	return e
}

// Root returns the expression tree.
func (e *Editor) Root() expr.Node { return e.root }

// Focus returns the focused leaf and cursor column.
func (e *Editor) Focus() (*expr.Text, int) { return e.focus, e.col }

// SetFocus moves the focus to the given leaf. The column is clamped to
// the leaf's length.
func (e *Editor) SetFocus(leaf *expr.Text, col int) {
	if col < 0 {
		col = 0
	}
	if col > leaf.Len() {
		col = leaf.Len()
	}
	e.focus = leaf
	e.col = col
}

// Render lays out the tree with the current focus. It is pure: repeated
// calls without intervening key events yield identical results.
func (e *Editor) Render() expr.RenderResult {
	ctx := &expr.Context{Style: e.style, Focus: e.focus, FocusCol: e.col}
	return expr.Render(e.root, ctx)
}

// HandleKey applies one key event to the tree. The focused leaf always
// gets first refusal, regardless of its depth. The return value reports
// whether the key was consumed; unrecognized keys are left for the
// caller's default handling.
func (e *Editor) HandleKey(key core.KeyEvent) bool {
	if e.focus == nil {
		return false
	}

	switch key.Kind {
	case core.KeyRune:
		if !unicode.IsPrint(key.Rune) {
			return false
		}
		e.focus.InsertAt(e.col, key.Rune)
		e.col++
		return true

	case core.KeyBackspace:
		if e.col == 0 {
			// Erasing the enclosing structure (collapsing a fraction,
			// unwrapping a group) is not implemented.
			e.report("nothing to erase here")
			return true
		}
		e.focus.DeleteAt(e.col - 1)
		e.col--
		return true

	case core.KeyLeft:
		if e.col > 0 {
			e.col--
			return true
		}
		// At the start of a leaf, left wraps to the previous leaf's end.
		return e.moveUp()

	case core.KeyRight:
		if e.col < e.focus.Len() {
			e.col++
			return true
		}
		return e.moveDown()

	case core.KeyUp:
		return e.moveUp()

	case core.KeyDown:
		return e.moveDown()
	}

	return false
}

// moveUp relocates the focus to the nearest leaf before the current one
// in pre-order, placing the cursor at its end. Hitting the front of the
// traversal consumes the key and reports a dead end.
func (e *Editor) moveUp() bool {
	if e.atRootLeaf() {
		e.report("cancelling vertical movement")
		return true
	}
	i := e.focusIndex()
	for j := i - 1; j >= 0; j-- {
		if leaf, ok := e.flat[j].(*expr.Text); ok {
			e.focus = leaf
			e.col = leaf.Len()
			return true
		}
	}
	e.report("no leaf further up")
	return true
}

// moveDown relocates the focus to the nearest leaf after the current one
// in pre-order, placing the cursor at its start.
func (e *Editor) moveDown() bool {
	if e.atRootLeaf() {
		e.report("cancelling vertical movement")
		return true
	}
	i := e.focusIndex()
	for j := i + 1; j < len(e.flat); j++ {
		if leaf, ok := e.flat[j].(*expr.Text); ok {
			e.focus = leaf
			e.col = 0
			return true
		}
	}
	e.report("no leaf further down")
	return true
}

// atRootLeaf reports whether the focused leaf is the tree root itself,
// in which case there is no enclosing structure to navigate through.
func (e *Editor) atRootLeaf() bool {
	_, hasParent := e.parents[expr.Node(e.focus)]
	return !hasParent
}

// focusIndex locates the focused leaf in the pre-order flattening.
func (e *Editor) focusIndex() int {
	for i, n := range e.flat {
		if n == expr.Node(e.focus) {
			return i
		}
	}
	panic("editor: focused leaf is not in the tree")
}
