package eval

import (
	"math"
	"os"
	"strings"

	"github.com/asdfish/empl/pkg/ast"
	"github.com/asdfish/empl/pkg/value"
)

// prelude builds the root frame bindings.
func prelude() map[string]value.Value {
	fns := []*Func{
		{Name: "+", Arity: AtLeast(2), Fn: mathFn(checkedAdd)},
		{Name: "-", Arity: AtLeast(2), Fn: mathFn(checkedSub)},
		{Name: "*", Arity: AtLeast(2), Fn: mathFn(checkedMul)},
		{Name: "/", Arity: AtLeast(2), Fn: mathFn(checkedDiv)},
		{Name: "%", Arity: AtLeast(2), Fn: mathFn(checkedRem)},
		{Name: "concat", Arity: AtLeast(1), Fn: strict(concatFn)},
		{Name: "cons", Arity: Exactly(2), Fn: strict(consFn)},
		{Name: "env", Arity: Exactly(1), Fn: strict(envFn)},
		{Name: "equal?", Arity: Exactly(2), Fn: strict(equalFn)},
		{Name: "if", Arity: Between(2, 3), Fn: ifFn},
		{Name: "lambda", Arity: AtLeast(1), Fn: lambdaFn},
		{Name: "let", Arity: AtLeast(0), Fn: letFn},
		{Name: "list", Arity: AtLeast(0), Fn: strict(listFn)},
		{Name: "not", Arity: Exactly(1), Fn: strict(notFn)},
		{Name: "path", Arity: Exactly(1), Fn: strict(pathFn)},
		{Name: "path-children", Arity: Exactly(1), Fn: strict(pathChildrenFn)},
		{Name: "path-exists", Arity: AtLeast(1), Fn: pathPredicate(func(os.FileInfo) bool { return true })},
		{Name: "path-is-dir", Arity: AtLeast(1), Fn: pathPredicate(os.FileInfo.IsDir)},
		{Name: "path-is-file", Arity: AtLeast(1), Fn: pathPredicate(func(info os.FileInfo) bool { return info.Mode().IsRegular() })},
		{Name: "path-name", Arity: Exactly(1), Fn: strict(pathNameFn)},
		{Name: "path-separator", Arity: Exactly(0), Fn: strict(pathSeparatorFn)},
		{Name: "progn", Arity: AtLeast(0), Fn: prognFn},
		{Name: "seq-filter", Arity: Exactly(2), Fn: strict(seqFilterFn)},
		{Name: "seq-find", Arity: Exactly(2), Fn: strict(seqFindFn)},
		{Name: "seq-flat-map", Arity: Exactly(2), Fn: strict(seqFlatMapFn)},
		{Name: "seq-fold", Arity: Exactly(3), Fn: strict(seqFoldFn)},
		{Name: "seq-map", Arity: Exactly(2), Fn: strict(seqMapFn)},
		{Name: "seq-rev", Arity: Exactly(1), Fn: strict(seqRevFn)},
		{Name: "try-catch", Arity: Exactly(2), Fn: tryCatchFn},
	}
	symbols := make(map[string]value.Value, len(fns))
	for _, fn := range fns {
		symbols[fn.Name] = fn
	}
	return symbols
}

// mathFn folds the checked operation over two or more operands.
func mathFn(op func(a, b int32) (int32, bool)) Fn {
	return strict(func(_ *Scope, args []value.Value) (value.Value, error) {
		accum, err := value.ToInt(args[0])
		if err != nil {
			return nil, err
		}
		for _, arg := range args[1:] {
			operand, err := value.ToInt(arg)
			if err != nil {
				return nil, err
			}
			next, ok := op(accum, operand)
			if !ok {
				return nil, ErrOverflow
			}
			accum = next
		}
		return value.Int(accum), nil
	})
}

func checkedAdd(a, b int32) (int32, bool) {
	s := int64(a) + int64(b)
	return int32(s), s >= math.MinInt32 && s <= math.MaxInt32
}

func checkedSub(a, b int32) (int32, bool) {
	d := int64(a) - int64(b)
	return int32(d), d >= math.MinInt32 && d <= math.MaxInt32
}

func checkedMul(a, b int32) (int32, bool) {
	p := int64(a) * int64(b)
	return int32(p), p >= math.MinInt32 && p <= math.MaxInt32
}

func checkedDiv(a, b int32) (int32, bool) {
	if b == 0 || (a == math.MinInt32 && b == -1) {
		return 0, false
	}
	return a / b, true
}

func checkedRem(a, b int32) (int32, bool) {
	if b == 0 || (a == math.MinInt32 && b == -1) {
		return 0, false
	}
	return a % b, true
}

func concatFn(_ *Scope, args []value.Value) (value.Value, error) {
	var b strings.Builder
	for _, arg := range args {
		s, err := value.ToString(arg)
		if err != nil {
			return nil, err
		}
		b.WriteString(s)
	}
	return value.String(b.String()), nil
}

func consFn(_ *Scope, args []value.Value) (value.Value, error) {
	tail, err := value.ToList(args[1])
	if err != nil {
		return nil, err
	}
	return value.Cons(args[0], tail), nil
}

func envFn(_ *Scope, args []value.Value) (value.Value, error) {
	name, err := value.ToString(args[0])
	if err != nil {
		return nil, err
	}
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil, &ErrEnvVar{Name: name}
	}
	return value.String(v), nil
}

func equalFn(_ *Scope, args []value.Value) (value.Value, error) {
	return value.FromBool(value.Equals(args[0], args[1])), nil
}

func ifFn(scope *Scope, args []ast.Expr) (value.Value, error) {
	cond, err := evalBool(scope, args[0])
	if err != nil {
		return nil, err
	}
	if cond {
		return Eval(scope, args[1])
	}
	if len(args) == 3 {
		return Eval(scope, args[2])
	}
	return value.Unit, nil
}

func evalBool(scope *Scope, expr ast.Expr) (bool, error) {
	v, err := Eval(scope, expr)
	if err != nil {
		return false, err
	}
	return value.ToBool(v)
}

func lambdaFn(_ *Scope, args []ast.Expr) (value.Value, error) {
	params, ok := args[0].(*ast.List)
	if !ok {
		return nil, ErrNoBindings
	}
	names := make([]string, 0, len(params.Elems))
	seen := make(map[string]bool, len(params.Elems))
	for _, param := range params.Elems {
		ident, ok := param.(*ast.Ident)
		if !ok {
			return nil, &ErrBadParam{Expr: ast.Print(param)}
		}
		if seen[ident.Name] {
			return nil, &ErrDuplicateBinding{Name: ident.Name}
		}
		seen[ident.Name] = true
		names = append(names, ident.Name)
	}
	body := args[1:]
	if len(body) == 0 {
		return nil, ErrNoBody
	}
	// Arguments are evaluated at the call site and bound into the frame
	// the application pushed there.
	return &Func{
		Arity: Exactly(len(names)),
		Fn: func(scope *Scope, args []ast.Expr) (value.Value, error) {
			for i, name := range names {
				v, err := Eval(scope, args[i])
				if err != nil {
					return nil, err
				}
				scope.Define(name, v)
			}
			return progn(scope, body)
		},
	}, nil
}

func letFn(scope *Scope, args []ast.Expr) (value.Value, error) {
	if len(args) == 0 {
		return nil, ErrNoBindings
	}
	bindings, ok := args[0].(*ast.List)
	if !ok {
		return nil, &ErrBadBinding{Expr: ast.Print(args[0])}
	}
	if len(bindings.Elems) == 0 {
		return nil, ErrEmptyBindings
	}
	// Bindings are sequential: later values see earlier names.
	for _, binding := range bindings.Elems {
		pair, ok := binding.(*ast.List)
		if !ok || len(pair.Elems) != 2 {
			return nil, &ErrBadBinding{Expr: ast.Print(binding)}
		}
		ident, ok := pair.Elems[0].(*ast.Ident)
		if !ok {
			return nil, &ErrBadBinding{Expr: ast.Print(binding)}
		}
		v, err := Eval(scope, pair.Elems[1])
		if err != nil {
			return nil, err
		}
		scope.Define(ident.Name, v)
	}
	return progn(scope, args[1:])
}

func listFn(_ *Scope, args []value.Value) (value.Value, error) {
	return value.NewList(args...), nil
}

func notFn(_ *Scope, args []value.Value) (value.Value, error) {
	b, err := value.ToBool(args[0])
	if err != nil {
		return nil, err
	}
	return value.FromBool(!b), nil
}

func prognFn(scope *Scope, args []ast.Expr) (value.Value, error) {
	return progn(scope, args)
}

// progn evaluates body in order and returns the last value. Only the
// final expression is in tail position.
func progn(scope *Scope, body []ast.Expr) (value.Value, error) {
	if len(body) == 0 {
		return nil, ErrNoBody
	}
	for _, expr := range body[:len(body)-1] {
		if _, err := Eval(scope, expr); err != nil {
			return nil, err
		}
	}
	return evalTail(scope, body[len(body)-1])
}

func tryCatchFn(scope *Scope, args []ast.Expr) (value.Value, error) {
	attempt, err := evalFunc(scope, args[0])
	if err != nil {
		return nil, err
	}
	fallback, err := evalFunc(scope, args[1])
	if err != nil {
		return nil, err
	}
	v, err := attempt.call(scope, nil)
	if err != nil {
		return fallback.call(scope, nil)
	}
	return v, nil
}

func evalFunc(scope *Scope, expr ast.Expr) (*Func, error) {
	v, err := Eval(scope, expr)
	if err != nil {
		return nil, err
	}
	fn, ok := v.(*Func)
	if !ok {
		return nil, &ErrNotFunction{Kind: v.Kind()}
	}
	return fn, nil
}
