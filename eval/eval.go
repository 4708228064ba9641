// Package eval evaluates an expression's source form through an
// embedded Lua interpreter.
package eval

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Evaluator owns a Lua state with only the safe standard libraries open
// and an optional set of predefined numeric globals.
//
// An LState is not goroutine-safe; the editor loop is single-threaded,
// so no locking is done here.
type Evaluator struct {
	state *lua.LState
}

// New creates an evaluator. Each entry in vars becomes a Lua global.
func New(vars map[string]float64) *Evaluator {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	// Base, string and math only. No io, os, debug or package: the
	// evaluator runs arbitrary typed-in source.
	lua.OpenBase(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for name, v := range vars {
		L.SetGlobal(name, lua.LNumber(v))
	}

	return &Evaluator{state: L}
}

// Close releases the Lua state.
func (e *Evaluator) Close() {
	e.state.Close()
}

// Eval evaluates source as a single Lua expression and returns the
// result's printed form. Errors come back as values, not panics; the
// caller shows them inline the way it would show a result.
func (e *Evaluator) Eval(source string) (string, error) {
	top := e.state.GetTop()
	defer e.state.SetTop(top)

	if err := e.state.DoString("return " + source); err != nil {
		return "", fmt.Errorf("eval %q: %w", source, err)
	}
	return e.state.Get(-1).String(), nil
}
