package eval

import (
	"fmt"
	"strconv"

	"github.com/asdfish/empl/pkg/ast"
	"github.com/asdfish/empl/pkg/token"
	"github.com/asdfish/empl/pkg/value"
)

// Arity is the argument count a callable accepts. A Max of -1 leaves
// the upper bound open.
type Arity struct {
	Min, Max int
}

func Exactly(n int) Arity {
	return Arity{Min: n, Max: n}
}

func AtLeast(n int) Arity {
	return Arity{Min: n, Max: -1}
}

func Between(lo, hi int) Arity {
	return Arity{Min: lo, Max: hi}
}

func (a Arity) Allows(n int) bool {
	return n >= a.Min && (a.Max < 0 || n <= a.Max)
}

func (a Arity) String() string {
	switch {
	case a.Max < 0:
		return fmt.Sprintf("%d..", a.Min)
	case a.Min == a.Max:
		return strconv.Itoa(a.Min)
	default:
		return fmt.Sprintf("%d..%d", a.Min, a.Max)
	}
}

// Fn is the native implementation behind a callable. Arguments arrive
// unevaluated so that special forms can decide what to evaluate.
type Fn func(scope *Scope, args []ast.Expr) (value.Value, error)

// Func is a callable value, either a prelude builtin or a closure made
// by lambda.
type Func struct {
	Name  string
	Arity Arity
	Fn    Fn
}

func (f *Func) Kind() value.Kind {
	return value.FuncKind
}

func (f *Func) NativeValue() any {
	return f
}

func (f *Func) String() string {
	if f.Name == "" {
		return "#<fn>"
	}
	return fmt.Sprintf("#<fn %s>", f.Name)
}

func (f *Func) call(scope *Scope, args []ast.Expr) (value.Value, error) {
	if !f.Arity.Allows(len(args)) {
		name := f.Name
		if name == "" {
			name = "function"
		}
		return nil, &ErrArity{Fn: name, Want: f.Arity, Got: len(args)}
	}
	return f.Fn(scope, args)
}

// Call invokes f with already evaluated arguments. No frame is pushed:
// the callee runs directly in scope, the same way builtins reinvoke the
// functions handed to them.
func (f *Func) Call(scope *Scope, args ...value.Value) (value.Value, error) {
	exprs := make([]ast.Expr, 0, len(args))
	for _, arg := range args {
		exprs = append(exprs, valueExpr{arg})
	}
	return f.call(scope, exprs)
}

// valueExpr threads an already evaluated value back through the
// expression interface.
type valueExpr struct {
	v value.Value
}

func (valueExpr) Pos() token.Position { return token.Position{} }
func (valueExpr) End() token.Position { return token.Position{} }
