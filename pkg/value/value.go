// Package value defines the runtime values of the configuration dialect.
package value

import (
	"fmt"
	"math"
)

// Kind describes the runtime type of a Value.
type Kind string

const (
	UnitKind   Kind = "unit"
	BoolKind   Kind = "bool"
	IntKind    Kind = "int"
	StringKind Kind = "string"
	PathKind   Kind = "path"
	ListKind   Kind = "list"
	FuncKind   Kind = "func"
)

// Value is a runtime value. String renders the value in source form.
type Value interface {
	Kind() Kind
	NativeValue() any
	String() string
}

// NewValue converts a Go native into a dialect value.
func NewValue(v any) (Value, error) {
	switch v := v.(type) {
	case nil:
		return Unit, nil
	case Value:
		return v, nil
	case bool:
		return FromBool(v), nil
	case int32:
		return Int(v), nil
	case int:
		return intValue(int64(v))
	case int64:
		return intValue(v)
	case string:
		return String(v), nil
	case []Value:
		return NewList(v...), nil
	case []any:
		elems := make([]Value, 0, len(v))
		for _, e := range v {
			ev, err := NewValue(e)
			if err != nil {
				return nil, err
			}
			elems = append(elems, ev)
		}
		return NewList(elems...), nil
	}
	return nil, fmt.Errorf("cannot convert %T to a value", v)
}

func intValue(n int64) (Value, error) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return nil, fmt.Errorf("integer %d does not fit in 32 bits", n)
	}
	return Int(int32(n)), nil
}
