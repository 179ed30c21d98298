// Package token defines the lexical tokens of the configuration dialect.
package token

import "strconv"

// Token is the set of lexical tokens.
type Token int

const (
	ILLEGAL Token = iota
	EOF
	COMMENT

	IDENT  // seq-map
	INT    // 42
	STRING // "red"

	LPAREN // (
	RPAREN // )

	TRUE  // #t
	FALSE // #f
	NIL   // nil
)

var tokens = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	COMMENT: "COMMENT",
	IDENT:   "IDENT",
	INT:     "INT",
	STRING:  "STRING",
	LPAREN:  "(",
	RPAREN:  ")",
	TRUE:    "#t",
	FALSE:   "#f",
	NIL:     "nil",
}

func (tok Token) String() string {
	if 0 <= int(tok) && int(tok) < len(tokens) {
		return tokens[tok]
	}
	return "token(" + strconv.Itoa(int(tok)) + ")"
}

// Lookup maps an identifier to its keyword token or IDENT.
func Lookup(ident string) Token {
	if ident == "nil" {
		return NIL
	}
	return IDENT
}
