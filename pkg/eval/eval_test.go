package eval

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/asdfish/empl/pkg/value"
	"github.com/hexops/autogold/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	tests := []struct {
		src  string
		want autogold.Value
	}{
		{`42`, autogold.Expect("42")},
		{`#t`, autogold.Expect("#t")},
		{`#f`, autogold.Expect("#f")},
		{`nil`, autogold.Expect("()")},
		{`"semi\tquaver"`, autogold.Expect("\"semi\\tquaver\"")},
		{`(+ 1 2 3)`, autogold.Expect("6")},
		{`(- 10 4 3)`, autogold.Expect("3")},
		{`(* 2 3 4)`, autogold.Expect("24")},
		{`(/ 100 5 2)`, autogold.Expect("10")},
		{`(% 17 5)`, autogold.Expect("2")},
		{`(+ 1 (* 2 3))`, autogold.Expect("7")},
		{`(concat "semi" "quaver")`, autogold.Expect(`"semiquaver"`)},
		{`(concat "solo")`, autogold.Expect(`"solo"`)},
		{`(list 1 2 3)`, autogold.Expect("(1 2 3)")},
		{`(list)`, autogold.Expect("()")},
		{`(cons 1 nil)`, autogold.Expect("(1)")},
		{`(cons 1 (list 2 3))`, autogold.Expect("(1 2 3)")},
		{`(equal? (list 1 2) (list 1 2))`, autogold.Expect("#t")},
		{`(equal? 1 "1")`, autogold.Expect("#f")},
		{`(not #f)`, autogold.Expect("#t")},
		{`(if #t 1 2)`, autogold.Expect("1")},
		{`(if #f 1 2)`, autogold.Expect("2")},
		{`(if #f 1)`, autogold.Expect("unit")},
		{`(progn 1 2 3)`, autogold.Expect("3")},
		{`(let ((x 2) (y (* x 3))) (+ x y))`, autogold.Expect("8")},
		{`(let ((x 1) (x (+ x 1))) x)`, autogold.Expect("2")},
		{`((lambda () 42))`, autogold.Expect("42")},
		{`((lambda (x) (* x x)) 7)`, autogold.Expect("49")},
		{`(let ((f (lambda (a b) (+ a b)))) (f 40 2))`, autogold.Expect("42")},
		{`(let ((y 10)) ((lambda (x) (+ x y)) 1))`, autogold.Expect("11")},
		{`(let ((x 1)) (+ ((lambda (x) x) 99) x))`, autogold.Expect("100")},
		{`(seq-map (lambda (x) (* x x)) (list 1 2 3 4))`, autogold.Expect("(1 4 9 16)")},
		{`(seq-filter (lambda (x) (equal? (% x 2) 0)) (list 1 2 3 4 5 6))`, autogold.Expect("(2 4 6)")},
		{`(seq-find (lambda (x) (equal? x 3)) (list 1 2 3))`, autogold.Expect("3")},
		{`(seq-find (lambda (x) (equal? x 9)) (list 1 2 3))`, autogold.Expect("unit")},
		{`(seq-flat-map (lambda (x) (list x x)) (list 1 2))`, autogold.Expect("(1 1 2 2)")},
		{`(seq-fold + (list 1 2 3 4) 0)`, autogold.Expect("10")},
		{`(seq-rev (list 1 2 3))`, autogold.Expect("(3 2 1)")},
		{`(try-catch (lambda () (/ 1 0)) (lambda () 99))`, autogold.Expect("99")},
		{`(try-catch (lambda () 1) (lambda () 2))`, autogold.Expect("1")},
		{`(path "/music")`, autogold.Expect(`(path "/music")`)},
		{`(lambda (x) x)`, autogold.Expect("#<fn>")},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("%s%d", t.Name(), i), func(t *testing.T) {
			v, err := EvalString(NewScope(), "test.lisp", tt.src)
			require.NoError(t, err)
			tt.want.Equal(t, v.String())
		})
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`()`, "test.lisp:1:1: cannot evaluate an empty list"},
		{`(bogus 1)`, `test.lisp:1:2: unbound identifier "bogus"`},
		{`(1 2)`, "test.lisp:1:2: int is not callable"},
		{`(+ 1)`, "test.lisp:1:1: + expects 2.. arguments, got 1"},
		{`(+ 1 "x")`, "test.lisp:1:1: expected int, got string"},
		{`(/ 1 0)`, "test.lisp:1:1: integer overflow"},
		{`(% 17 0)`, "test.lisp:1:1: integer overflow"},
		{`(* 65536 65536)`, "test.lisp:1:1: integer overflow"},
		{`99999999999`, "test.lisp:1:1: integer overflow"},
		{`(if 1 2 3)`, "test.lisp:1:1: expected bool, got int"},
		{`(if #t)`, "test.lisp:1:1: if expects 2..3 arguments, got 1"},
		{`(cons 1 2)`, "test.lisp:1:1: expected list, got int"},
		{`(let () 1)`, "test.lisp:1:1: empty bindings list"},
		{`(let ((x)) x)`, "test.lisp:1:1: invalid binding (x), expected (name value)"},
		{`(let ((x 1)))`, "test.lisp:1:1: missing body"},
		{`(lambda x 1)`, "test.lisp:1:1: missing bindings list"},
		{`(lambda (1) 1)`, "test.lisp:1:1: invalid parameter 1, expected an identifier"},
		{`(lambda (x x) x)`, `test.lisp:1:1: parameter "x" is bound more than once`},
		{`((lambda (x) x) 1 2)`, "test.lisp:1:1: function expects 1 arguments, got 2"},
		{`(progn)`, "test.lisp:1:1: missing body"},
		{`(seq-map not 5)`, "test.lisp:1:1: expected list, got int"},
		{`(env "EMPL_EVAL_TEST_UNSET")`, `test.lisp:1:1: environment variable "EMPL_EVAL_TEST_UNSET" is not set`},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("%s%d", t.Name(), i), func(t *testing.T) {
			_, err := EvalString(NewScope(), "test.lisp", tt.src)
			require.Error(t, err)
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestEvalFile(t *testing.T) {
	v, err := EvalString(NewScope(), "test.lisp", "(+ 1 1)\n(+ 2 2)")
	require.NoError(t, err)
	assert.Equal(t, value.Int(4), v)

	v, err = EvalString(NewScope(), "test.lisp", "; only a comment\n")
	require.NoError(t, err)
	assert.Equal(t, value.Unit, v)
}

func TestEvalEnv(t *testing.T) {
	t.Setenv("EMPL_EVAL_TEST_VAR", "semiquaver")

	v, err := EvalString(NewScope(), "test.lisp", `(env "EMPL_EVAL_TEST_VAR")`)
	require.NoError(t, err)
	assert.Equal(t, value.String("semiquaver"), v)
}

func TestEvalPaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.flac"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.flac"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	scope := NewScope()

	v, err := EvalString(scope, "test.lisp", `(path-children (path "`+dir+`"))`)
	require.NoError(t, err)
	want := value.NewList(
		value.Path(filepath.Join(dir, "a.flac")),
		value.Path(filepath.Join(dir, "b.flac")),
		value.Path(filepath.Join(dir, "sub")),
	)
	assert.True(t, value.Equals(want, v), "got %s", v)

	v, err = EvalString(scope, "test.lisp", `(path-is-dir (path "`+dir+`"))`)
	require.NoError(t, err)
	assert.Equal(t, value.True, v)

	song := filepath.Join(dir, "a.flac")
	v, err = EvalString(scope, "test.lisp", `(path-is-file (path "`+song+`") (path "`+dir+`"))`)
	require.NoError(t, err)
	assert.Equal(t, value.False, v)

	v, err = EvalString(scope, "test.lisp", `(path-exists (path "`+song+`") (path "`+dir+`"))`)
	require.NoError(t, err)
	assert.Equal(t, value.True, v)

	v, err = EvalString(scope, "test.lisp", `(path-exists (path "`+filepath.Join(dir, "missing")+`"))`)
	require.NoError(t, err)
	assert.Equal(t, value.False, v)

	v, err = EvalString(scope, "test.lisp", `(path-name (path "`+song+`"))`)
	require.NoError(t, err)
	assert.Equal(t, value.String("a.flac"), v)

	v, err = EvalString(scope, "test.lisp", `(path-name (path "/"))`)
	require.NoError(t, err)
	assert.Equal(t, value.String(""), v)

	_, err = EvalString(scope, "test.lisp", `(path-children (path "`+filepath.Join(dir, "missing")+`"))`)
	assert.ErrorContains(t, err, "cannot read")

	v, err = EvalString(scope, "test.lisp", `(path-separator)`)
	require.NoError(t, err)
	assert.Equal(t, value.String(string(filepath.Separator)), v)
}

func TestScope(t *testing.T) {
	scope := WithSymbols(map[string]value.Value{"answer": value.Int(42)})

	v, ok := scope.Get("answer")
	require.True(t, ok)
	assert.Equal(t, value.Int(42), v)

	_, ok = scope.Get("missing")
	assert.False(t, ok)

	inner := scope.Push()
	inner.Define("answer", value.Int(7))
	v, _ = inner.Get("answer")
	assert.Equal(t, value.Int(7), v)

	v, _ = scope.Get("answer")
	assert.Equal(t, value.Int(42), v)

	_, ok = inner.Get("seq-map")
	assert.True(t, ok)
}

func TestArity(t *testing.T) {
	tests := []struct {
		arity       Arity
		str         string
		allow, deny int
	}{
		{Exactly(2), "2", 2, 3},
		{AtLeast(1), "1..", 5, 0},
		{Between(2, 3), "2..3", 3, 4},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("%s%d", t.Name(), i), func(t *testing.T) {
			assert.Equal(t, tt.str, tt.arity.String())
			assert.True(t, tt.arity.Allows(tt.allow))
			assert.False(t, tt.arity.Allows(tt.deny))
		})
	}
}

func TestFuncCall(t *testing.T) {
	scope := NewScope()
	add, ok := scope.Get("+")
	require.True(t, ok)
	require.Equal(t, value.FuncKind, add.Kind())
	assert.Equal(t, "#<fn +>", add.String())

	v, err := add.(*Func).Call(scope, value.Int(40), value.Int(2))
	require.NoError(t, err)
	assert.Equal(t, value.Int(42), v)

	_, err = add.(*Func).Call(scope, value.Int(1))
	assert.EqualError(t, err, "+ expects 2.. arguments, got 1")
}
