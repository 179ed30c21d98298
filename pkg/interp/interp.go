// Package interp narrows the embedded Starlark interpreter down to the
// values and operations the rest of the program binds against, so the
// canonical singletons have one stable home and callers do not reach
// into the interpreter for them.
package interp

import (
	"go.starlark.net/starlark"
)

// Value is the interpreter's value interface.
type Value = starlark.Value

// The interpreter's canonical singletons. Each is a single value for
// the lifetime of the process, so identity comparisons against them are
// as meaningful as Equal.
var (
	False     Value = starlark.False
	True      Value = starlark.True
	Undefined Value = starlark.None
)

// Equal reports whether x and y are equal, delegating to the
// interpreter's own comparison so aggregate values compare deeply.
func Equal(x, y Value) (bool, error) {
	return starlark.Equal(x, y)
}
