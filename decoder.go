// Package empl evaluates the configuration dialect of the music
// player and loads its configuration files.
package empl

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/asdfish/empl/pkg/ast"
	"github.com/asdfish/empl/pkg/eval"
	"github.com/asdfish/empl/pkg/parser"
	"github.com/asdfish/empl/pkg/value"
)

type Option struct {
	// SourceName is the file name used in error positions.
	SourceName string
	// Scope is the evaluation scope. Defaults to a fresh prelude
	// scope.
	Scope *eval.Scope
}

func (o Option) Complete() Option {
	if o.SourceName == "" {
		o.SourceName = "<inline>"
	}
	if o.Scope == nil {
		o.Scope = eval.NewScope()
	}
	return o
}

type Options []Option

func (o Options) Merge() (result Option) {
	for _, opt := range o {
		if opt.SourceName != "" {
			result.SourceName = opt.SourceName
		}
		if opt.Scope != nil {
			result.Scope = opt.Scope
		}
	}
	return
}

type Decoder struct {
	opts  Option
	input io.Reader
}

func NewDecoder(input io.Reader, opts ...Option) *Decoder {
	return &Decoder{
		opts:  Options(opts).Merge().Complete(),
		input: input,
	}
}

// Decode evaluates the source and stores the result in out. A
// *ast.File target receives the parse tree without evaluation, a
// *value.Value the evaluated value itself; *string, *int and *bool
// convert, and anything else round trips through JSON.
func (d *Decoder) Decode(out any) error {
	src, err := io.ReadAll(d.input)
	if err != nil {
		return err
	}
	parsed, err := parser.ParseFile(d.opts.SourceName, src)
	if err != nil {
		return err
	}

	switch n := out.(type) {
	case *ast.File:
		*n = *parsed
		return nil
	}

	val, err := eval.EvalFile(d.opts.Scope, parsed)
	if err != nil {
		return err
	}

	switch n := out.(type) {
	case *value.Value:
		*n = val
		return nil
	case *string:
		s, err := value.ToString(val)
		if err != nil {
			return err
		}
		*n = s
		return nil
	case *int:
		i, err := value.ToInt(val)
		if err != nil {
			return err
		}
		*n = int(i)
		return nil
	case *bool:
		b, err := value.ToBool(val)
		if err != nil {
			return err
		}
		*n = b
		return nil
	case *any:
		*n = val.NativeValue()
		return nil
	}

	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(val.NativeValue()); err != nil {
		return err
	}
	return json.NewDecoder(buf).Decode(out)
}

func Unmarshal(data []byte, out any, opts ...Option) error {
	return NewDecoder(bytes.NewReader(data), opts...).Decode(out)
}
