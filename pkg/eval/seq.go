package eval

import (
	"github.com/asdfish/empl/pkg/value"
)

// The seq builtins all take the function first and the list second.
// The handed function is reinvoked through Call, so it runs in the
// frame the seq application itself pushed.

func seqMapFn(scope *Scope, args []value.Value) (value.Value, error) {
	fn, seq, err := seqArgs(args)
	if err != nil {
		return nil, err
	}
	out := make([]value.Value, 0, seq.Len())
	for _, item := range seq.Slice() {
		v, err := fn.Call(scope, item)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return value.NewList(out...), nil
}

func seqFilterFn(scope *Scope, args []value.Value) (value.Value, error) {
	fn, seq, err := seqArgs(args)
	if err != nil {
		return nil, err
	}
	var out []value.Value
	for _, item := range seq.Slice() {
		keep, err := callBool(scope, fn, item)
		if err != nil {
			return nil, err
		}
		if keep {
			out = append(out, item)
		}
	}
	return value.NewList(out...), nil
}

func seqFindFn(scope *Scope, args []value.Value) (value.Value, error) {
	fn, seq, err := seqArgs(args)
	if err != nil {
		return nil, err
	}
	for _, item := range seq.Slice() {
		found, err := callBool(scope, fn, item)
		if err != nil {
			return nil, err
		}
		if found {
			return item, nil
		}
	}
	return value.Unit, nil
}

func seqFlatMapFn(scope *Scope, args []value.Value) (value.Value, error) {
	fn, seq, err := seqArgs(args)
	if err != nil {
		return nil, err
	}
	var out []value.Value
	for _, item := range seq.Slice() {
		v, err := fn.Call(scope, item)
		if err != nil {
			return nil, err
		}
		part, err := value.ToList(v)
		if err != nil {
			return nil, err
		}
		out = append(out, part.Slice()...)
	}
	return value.NewList(out...), nil
}

func seqFoldFn(scope *Scope, args []value.Value) (value.Value, error) {
	fn, seq, err := seqArgs(args[:2])
	if err != nil {
		return nil, err
	}
	accum := args[2]
	for _, item := range seq.Slice() {
		accum, err = fn.Call(scope, accum, item)
		if err != nil {
			return nil, err
		}
	}
	return accum, nil
}

func seqRevFn(_ *Scope, args []value.Value) (value.Value, error) {
	seq, err := value.ToList(args[0])
	if err != nil {
		return nil, err
	}
	out := value.Nil
	for _, item := range seq.Slice() {
		out = value.Cons(item, out)
	}
	return out, nil
}

func seqArgs(args []value.Value) (*Func, *value.List, error) {
	fn, ok := args[0].(*Func)
	if !ok {
		return nil, nil, &ErrNotFunction{Kind: args[0].Kind()}
	}
	seq, err := value.ToList(args[1])
	if err != nil {
		return nil, nil, err
	}
	return fn, seq, nil
}

func callBool(scope *Scope, fn *Func, args ...value.Value) (bool, error) {
	v, err := fn.Call(scope, args...)
	if err != nil {
		return false, err
	}
	return value.ToBool(v)
}
