// Package eval evaluates configuration dialect expressions against a
// scope stack seeded with the prelude.
package eval

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/asdfish/empl/pkg/ast"
	"github.com/asdfish/empl/pkg/parser"
	"github.com/asdfish/empl/pkg/scanner"
	"github.com/asdfish/empl/pkg/token"
	"github.com/asdfish/empl/pkg/value"
)

// Eval evaluates a single expression. A function application pushes a
// fresh frame for the duration of the call.
func Eval(scope *Scope, expr ast.Expr) (value.Value, error) {
	return evalExpr(scope, expr, true)
}

// evalTail evaluates an expression in tail position: an application
// reuses the current frame instead of pushing a new one.
func evalTail(scope *Scope, expr ast.Expr) (value.Value, error) {
	return evalExpr(scope, expr, false)
}

func evalExpr(scope *Scope, expr ast.Expr, push bool) (value.Value, error) {
	switch expr := expr.(type) {
	case valueExpr:
		return expr.v, nil
	case *ast.BasicLit:
		return evalLit(expr)
	case *ast.Ident:
		v, ok := scope.Get(expr.Name)
		if !ok {
			return nil, &Error{Pos: expr.NamePos, Err: &ErrNotFound{Name: expr.Name}}
		}
		return v, nil
	case *ast.List:
		return evalApply(scope, expr, push)
	}
	return nil, fmt.Errorf("cannot evaluate %T", expr)
}

func evalApply(scope *Scope, list *ast.List, push bool) (value.Value, error) {
	if len(list.Elems) == 0 {
		return nil, &Error{Pos: list.Lparen, Err: ErrEmptyApply}
	}
	head, err := Eval(scope, list.Elems[0])
	if err != nil {
		return nil, err
	}
	fn, ok := head.(*Func)
	if !ok {
		return nil, &Error{Pos: list.Elems[0].Pos(), Err: &ErrNotFunction{Kind: head.Kind()}}
	}
	if push {
		scope = scope.Push()
	}
	v, err := fn.call(scope, list.Elems[1:])
	if err != nil {
		return nil, at(list.Lparen, err)
	}
	return v, nil
}

// at attaches pos to err unless an inner position is already recorded.
func at(pos token.Position, err error) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Pos: pos, Err: err}
}

func evalLit(lit *ast.BasicLit) (value.Value, error) {
	switch lit.Kind {
	case token.INT:
		n, err := strconv.ParseInt(lit.Value, 10, 32)
		if err != nil {
			return nil, &Error{Pos: lit.ValuePos, Err: ErrOverflow}
		}
		return value.Int(int32(n)), nil
	case token.STRING:
		s, err := scanner.Unquote(lit.Value)
		if err != nil {
			return nil, &Error{Pos: lit.ValuePos, Err: err}
		}
		return value.String(s), nil
	case token.TRUE:
		return value.True, nil
	case token.FALSE:
		return value.False, nil
	case token.NIL:
		return value.Nil, nil
	}
	return nil, &Error{Pos: lit.ValuePos, Err: fmt.Errorf("unexpected %s literal", lit.Kind)}
}

// EvalArgs evaluates each argument expression in order.
func EvalArgs(scope *Scope, args []ast.Expr) ([]value.Value, error) {
	vals := make([]value.Value, 0, len(args))
	for _, arg := range args {
		v, err := Eval(scope, arg)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// strict evaluates all arguments before handing them to fn.
func strict(fn func(*Scope, []value.Value) (value.Value, error)) Fn {
	return func(scope *Scope, args []ast.Expr) (value.Value, error) {
		vals, err := EvalArgs(scope, args)
		if err != nil {
			return nil, err
		}
		return fn(scope, vals)
	}
}

// EvalFile evaluates every expression in file and returns the value of
// the last one, or unit for an empty file.
func EvalFile(scope *Scope, file *ast.File) (value.Value, error) {
	var last value.Value = value.Unit
	for _, expr := range file.Exprs {
		v, err := Eval(scope, expr)
		if err != nil {
			return nil, err
		}
		last = v
	}
	return last, nil
}

// EvalString parses and evaluates src. The filename only decorates
// positions in errors.
func EvalString(scope *Scope, filename, src string) (value.Value, error) {
	file, err := parser.ParseFile(filename, []byte(src))
	if err != nil {
		return nil, err
	}
	return EvalFile(scope, file)
}
