// Package parser turns configuration dialect source into syntax trees.
package parser

import (
	"errors"
	"fmt"

	"github.com/asdfish/empl/pkg/ast"
	"github.com/asdfish/empl/pkg/scanner"
	"github.com/asdfish/empl/pkg/token"
)

// Error is a parse error at a source position.
type Error struct {
	Pos token.Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

type parser struct {
	scanner scanner.Scanner

	pos token.Position
	tok token.Token
	lit string

	errors []error
}

func (p *parser) init(filename string, src []byte) {
	p.scanner.Init(filename, src, func(pos token.Position, msg string) {
		p.errors = append(p.errors, &Error{Pos: pos, Msg: msg})
	}, 0)
	p.next()
}

func (p *parser) next() {
	p.pos, p.tok, p.lit = p.scanner.Scan()
}

func (p *parser) errorf(pos token.Position, format string, args ...any) {
	p.errors = append(p.errors, &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)})
}

// ParseFile parses zero or more top-level expressions.
func ParseFile(filename string, src []byte) (*ast.File, error) {
	var p parser
	p.init(filename, src)

	file := &ast.File{Filename: filename}
	for p.tok != token.EOF {
		if expr := p.parseExpr(); expr != nil {
			file.Exprs = append(file.Exprs, expr)
		}
	}
	return file, errors.Join(p.errors...)
}

// ParseExpr parses exactly one expression.
func ParseExpr(src string) (ast.Expr, error) {
	var p parser
	p.init("", []byte(src))

	expr := p.parseExpr()
	if expr != nil && p.tok != token.EOF {
		p.errorf(p.pos, "unexpected %s after expression", p.tok)
	}
	if err := errors.Join(p.errors...); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *parser) parseExpr() ast.Expr {
	switch p.tok {
	case token.LPAREN:
		return p.parseList()
	case token.INT, token.STRING, token.TRUE, token.FALSE, token.NIL:
		lit := &ast.BasicLit{ValuePos: p.pos, Kind: p.tok, Value: p.lit}
		p.next()
		return lit
	case token.IDENT:
		id := &ast.Ident{NamePos: p.pos, Name: p.lit}
		p.next()
		return id
	case token.RPAREN:
		p.errorf(p.pos, "unexpected ')'")
		p.next()
		return nil
	case token.ILLEGAL:
		// the scanner already reported it
		p.next()
		return nil
	default:
		p.errorf(p.pos, "unexpected end of file")
		return nil
	}
}

func (p *parser) parseList() ast.Expr {
	list := &ast.List{Lparen: p.pos}
	p.next()
	for {
		switch p.tok {
		case token.RPAREN:
			list.Rparen = p.pos
			p.next()
			return list
		case token.EOF:
			p.errorf(p.pos, "missing ')' for list opened at %s", list.Lparen)
			list.Rparen = p.pos
			return list
		}
		if expr := p.parseExpr(); expr != nil {
			list.Elems = append(list.Elems, expr)
		}
	}
}
