package script

import (
	"fmt"

	"github.com/asdfish/empl/pkg/interp"
	"github.com/asdfish/empl/pkg/value"
	"go.starlark.net/starlark"
)

// pathValue is the script side of value.Path, built by the path
// builtin.
type pathValue string

func (p pathValue) String() string        { return fmt.Sprintf("path(%q)", string(p)) }
func (p pathValue) Type() string          { return "path" }
func (p pathValue) Freeze()               {}
func (p pathValue) Truth() starlark.Bool  { return starlark.Bool(p != "") }
func (p pathValue) Hash() (uint32, error) { return starlark.String(p).Hash() }

// fromValue converts an interpreter value to its native counterpart.
// The undefined sentinel becomes Unit; dicts, functions, and the
// other interpreter types have no counterpart and fail.
func fromValue(v interp.Value) (value.Value, error) {
	if ok, err := interp.Equal(v, interp.Undefined); err != nil {
		return nil, err
	} else if ok {
		return value.Unit, nil
	}
	switch v := v.(type) {
	case starlark.Bool:
		ok, err := interp.Equal(v, interp.True)
		if err != nil {
			return nil, err
		}
		return value.FromBool(ok), nil
	case starlark.Int:
		n, err := starlark.AsInt32(v)
		if err != nil {
			return nil, fmt.Errorf("integer %v does not fit in 32 bits", v)
		}
		return value.Int(n), nil
	case starlark.String:
		return value.String(v), nil
	case pathValue:
		return value.Path(v), nil
	case starlark.Tuple, *starlark.List:
		iter := starlark.Iterate(v)
		var elems []value.Value
		var elem starlark.Value
		for iter.Next(&elem) {
			converted, err := fromValue(elem)
			if err != nil {
				iter.Done()
				return nil, err
			}
			elems = append(elems, converted)
		}
		iter.Done()
		return value.NewList(elems...), nil
	}
	return nil, fmt.Errorf("cannot convert %s to a configuration value", v.Type())
}
