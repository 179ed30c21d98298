// Package script runs the Starlark configuration dialect. A main.star
// program sets fields through a predeclared set_cfg builtin, the
// counterpart of the native dialect's set-cfg!, and builds path values
// with a predeclared path builtin.
package script

import (
	"errors"
	"log/slog"

	"github.com/asdfish/empl/pkg/config"
	"github.com/asdfish/empl/pkg/interp"
	"go.starlark.net/starlark"
)

// Error carries the backtrace of a failed program. Unwrapping reaches
// the interpreter error and, through it, the configuration error that
// failed the builtin.
type Error struct {
	Backtrace string
	Err       error
}

func (e *Error) Error() string { return e.Backtrace }

func (e *Error) Unwrap() error { return e.Err }

// Exec runs a configuration program and collects the fields it sets.
// src may be a string or []byte holding the source, or nil to read
// the file at filename.
func Exec(filename string, src any) (*config.Partial, error) {
	partial := &config.Partial{}
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			slog.Debug("script print", "file", filename, "msg", msg)
		},
	}
	predeclared := starlark.StringDict{
		"set_cfg": setCfg(partial),
		"path":    starlark.NewBuiltin("path", newPath),
	}
	if _, err := starlark.ExecFile(thread, filename, src, predeclared); err != nil {
		var evalErr *starlark.EvalError
		if errors.As(err, &evalErr) {
			return nil, &Error{Backtrace: evalErr.Backtrace(), Err: err}
		}
		return nil, err
	}
	return partial, nil
}

func setCfg(partial *config.Partial) *starlark.Builtin {
	return starlark.NewBuiltin("set_cfg", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var field string
		var raw starlark.Value
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "field", &field, "value", &raw); err != nil {
			return nil, err
		}
		v, err := fromValue(raw)
		if err != nil {
			return nil, err
		}
		if err := partial.Apply(field, v); err != nil {
			return nil, err
		}
		return interp.Undef(), nil
	})
}

func newPath(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var p string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &p); err != nil {
		return nil, err
	}
	return pathValue(p), nil
}
