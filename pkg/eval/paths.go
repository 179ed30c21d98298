package eval

import (
	"os"
	"path/filepath"

	"github.com/asdfish/empl/pkg/value"
)

func pathFn(_ *Scope, args []value.Value) (value.Value, error) {
	s, err := value.ToString(args[0])
	if err != nil {
		return nil, err
	}
	return value.Path(s), nil
}

func pathChildrenFn(_ *Scope, args []value.Value) (value.Value, error) {
	dir, err := value.ToPath(args[0])
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &ErrReadPath{Path: dir, Err: err}
	}
	children := make([]value.Value, 0, len(entries))
	for _, entry := range entries {
		children = append(children, value.Path(filepath.Join(dir, entry.Name())))
	}
	return value.NewList(children...), nil
}

// pathPredicate reports whether every path argument satisfies pred.
// Stat failures count as false, not as errors.
func pathPredicate(pred func(os.FileInfo) bool) Fn {
	return strict(func(_ *Scope, args []value.Value) (value.Value, error) {
		for _, arg := range args {
			p, err := value.ToPath(arg)
			if err != nil {
				return nil, err
			}
			info, err := os.Stat(p)
			if err != nil || !pred(info) {
				return value.False, nil
			}
		}
		return value.True, nil
	})
}

func pathNameFn(_ *Scope, args []value.Value) (value.Value, error) {
	p, err := value.ToPath(args[0])
	if err != nil {
		return nil, err
	}
	return value.String(baseName(p)), nil
}

// baseName is the final path element, or "" where the path has no real
// name such as the root or a trailing "..".
func baseName(p string) string {
	switch base := filepath.Base(p); base {
	case string(filepath.Separator), ".", "..":
		return ""
	default:
		return base
	}
}

func pathSeparatorFn(_ *Scope, _ []value.Value) (value.Value, error) {
	return value.String(string(filepath.Separator)), nil
}
