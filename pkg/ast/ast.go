// Package ast declares the syntax tree of the configuration dialect.
package ast

import (
	"unicode/utf8"

	"github.com/asdfish/empl/pkg/token"
)

// Expr is implemented by all expression nodes.
type Expr interface {
	Pos() token.Position
	End() token.Position
}

// BasicLit is a literal of kind INT, STRING, TRUE, FALSE or NIL.
// Value holds the raw source text.
type BasicLit struct {
	ValuePos token.Position
	Kind     token.Token
	Value    string
}

// Ident names a binding or prelude function.
type Ident struct {
	NamePos token.Position
	Name    string
}

// List is a parenthesized sequence of expressions.
type List struct {
	Lparen token.Position
	Elems  []Expr
	Rparen token.Position
}

// File is a sequence of top-level expressions.
type File struct {
	Filename string
	Exprs    []Expr
}

func (x *BasicLit) Pos() token.Position { return x.ValuePos }
func (x *Ident) Pos() token.Position    { return x.NamePos }
func (x *List) Pos() token.Position     { return x.Lparen }

func (x *BasicLit) End() token.Position { return shift(x.ValuePos, x.Value) }
func (x *Ident) End() token.Position    { return shift(x.NamePos, x.Name) }

func (x *List) End() token.Position {
	end := x.Rparen
	end.Column++
	return end
}

func shift(pos token.Position, text string) token.Position {
	pos.Column += utf8.RuneCountInString(text)
	return pos
}
