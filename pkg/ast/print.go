package ast

import "strings"

// Print renders an expression back to source text on a single line.
func Print(x Expr) string {
	var b strings.Builder
	fprint(&b, x)
	return b.String()
}

func fprint(b *strings.Builder, x Expr) {
	switch x := x.(type) {
	case *BasicLit:
		b.WriteString(x.Value)
	case *Ident:
		b.WriteString(x.Name)
	case *List:
		b.WriteByte('(')
		for i, e := range x.Elems {
			if i > 0 {
				b.WriteByte(' ')
			}
			fprint(b, e)
		}
		b.WriteByte(')')
	}
}
