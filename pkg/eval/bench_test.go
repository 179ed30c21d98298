package eval

import (
	"testing"

	"github.com/asdfish/empl/pkg/parser"
)

func BenchmarkSeqFns(b *testing.B) {
	const src = `(progn
    (seq-map (lambda (x) 1) (list 2 2 2))
    (seq-filter (lambda (x) #t) (list 1 2 3))
    (seq-filter (lambda (x) #f) (list 1 2 3))
    (seq-flat-map (lambda (x) (list 1 2 3)) (list 2 2 2)))`

	file, err := parser.ParseFile("bench.lisp", []byte(src))
	if err != nil {
		b.Fatal(err)
	}
	scope := NewScope()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := EvalFile(scope, file); err != nil {
			b.Fatal(err)
		}
	}
}
