package empl

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/asdfish/empl/pkg/ast"
	"github.com/asdfish/empl/pkg/config"
	"github.com/asdfish/empl/pkg/config/script"
	"github.com/asdfish/empl/pkg/eval"
	"github.com/asdfish/empl/pkg/value"
)

// ConfigScope returns a prelude scope with set-cfg! bound. Applied
// fields are written into partial.
func ConfigScope(partial *config.Partial) *eval.Scope {
	return eval.WithSymbols(map[string]value.Value{
		"set-cfg!": &eval.Func{
			Name:  "set-cfg!",
			Arity: eval.Exactly(2),
			Fn: func(scope *eval.Scope, args []ast.Expr) (value.Value, error) {
				vals, err := eval.EvalArgs(scope, args)
				if err != nil {
					return nil, err
				}
				field, err := value.ToString(vals[0])
				if err != nil {
					return nil, err
				}
				if err := partial.Apply(field, vals[1]); err != nil {
					return nil, err
				}
				return value.Unit, nil
			},
		},
	})
}

// LoadPartial reads and runs one configuration file, dispatching on
// its extension: .lisp runs the native dialect, .star the script
// dialect.
func LoadPartial(path string) (*config.Partial, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &config.ErrRead{Path: path, Err: err}
	}
	switch ext := filepath.Ext(path); ext {
	case ".lisp":
		partial := &config.Partial{}
		if _, err := eval.EvalString(ConfigScope(partial), path, string(src)); err != nil {
			return nil, err
		}
		return partial, nil
	case ".star":
		return script.Exec(path, src)
	default:
		return nil, fmt.Errorf("unknown configuration dialect %q", ext)
	}
}

// LoadConfig resolves, loads, and promotes the configuration. An
// empty path searches the platform defaults.
func LoadConfig(path string) (*config.Config, error) {
	if path == "" {
		located, err := config.Locate()
		if err != nil {
			return nil, err
		}
		path = located
	}
	partial, err := LoadPartial(path)
	if err != nil {
		return nil, err
	}
	return partial.Config()
}
