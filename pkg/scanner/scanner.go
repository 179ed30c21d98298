// Package scanner tokenizes configuration dialect source.
package scanner

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/asdfish/empl/pkg/token"
)

// ErrorHandler is called with the position and message of each syntax error.
type ErrorHandler func(pos token.Position, msg string)

// Mode controls optional scanner behavior.
type Mode uint

const (
	// ScanComments causes COMMENT tokens to be returned instead of skipped.
	ScanComments Mode = 1 << iota
)

// Scanner holds the state of a single source file scan. Init must be called
// before the first use of Scan.
type Scanner struct {
	filename string
	src      []byte
	err      ErrorHandler
	mode     Mode

	ch       rune // current character, eof at end of source
	offset   int  // byte offset of ch
	rdOffset int  // next read offset
	line     int  // line of ch
	col      int  // column of ch, in runes

	// ErrorCount is the number of errors reported so far.
	ErrorCount int
}

const eof = -1

// Init readies the scanner for src. The error handler may be nil.
func (s *Scanner) Init(filename string, src []byte, err ErrorHandler, mode Mode) {
	s.filename = filename
	s.src = src
	s.err = err
	s.mode = mode
	s.ch = 0
	s.offset = 0
	s.rdOffset = 0
	s.line = 1
	s.col = 0
	s.ErrorCount = 0
	s.next()
}

func (s *Scanner) next() {
	if s.ch == '\n' {
		s.line++
		s.col = 0
	}
	if s.rdOffset >= len(s.src) {
		s.offset = len(s.src)
		s.ch = eof
		s.col++
		return
	}
	r, w := rune(s.src[s.rdOffset]), 1
	if r >= utf8.RuneSelf {
		r, w = utf8.DecodeRune(s.src[s.rdOffset:])
	}
	s.offset = s.rdOffset
	s.rdOffset += w
	s.ch = r
	s.col++
	if r == utf8.RuneError && w == 1 {
		s.error(s.pos(), "invalid UTF-8 encoding")
	}
}

func (s *Scanner) pos() token.Position {
	return token.Position{Filename: s.filename, Line: s.line, Column: s.col}
}

func (s *Scanner) error(pos token.Position, msg string) {
	s.ErrorCount++
	if s.err != nil {
		s.err(pos, msg)
	}
}

func isIdentStart(ch rune) bool {
	switch ch {
	case '+', '-', '*', '/', '%', '<', '>', '=', '!', '?', '_':
		return true
	}
	return unicode.IsLetter(ch)
}

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }

func isHex(ch rune) bool {
	return isDigit(ch) || 'a' <= ch && ch <= 'f' || 'A' <= ch && ch <= 'F'
}

func (s *Scanner) skipWhitespace() {
	for unicode.IsSpace(s.ch) {
		s.next()
	}
}

// Scan returns the next token with its position and raw literal text.
// STRING literals include their quotes; use Unquote to decode them.
// Scanning continues after errors, reporting each through the handler.
func (s *Scanner) Scan() (pos token.Position, tok token.Token, lit string) {
scanAgain:
	s.skipWhitespace()
	pos = s.pos()

	switch ch := s.ch; {
	case isIdentStart(ch):
		lit = s.scanIdent()
		tok = token.Lookup(lit)
	case isDigit(ch):
		tok, lit = s.scanInt(pos)
	default:
		s.next()
		switch ch {
		case eof:
			tok = token.EOF
		case '(':
			tok, lit = token.LPAREN, "("
		case ')':
			tok, lit = token.RPAREN, ")"
		case '"':
			tok = token.STRING
			lit = s.scanString(pos)
		case ';':
			lit = s.scanComment()
			if s.mode&ScanComments == 0 {
				goto scanAgain
			}
			tok = token.COMMENT
		case '#':
			tok, lit = s.scanHash(pos)
		default:
			s.error(pos, fmt.Sprintf("illegal character %#U", ch))
			tok, lit = token.ILLEGAL, string(ch)
		}
	}
	return pos, tok, lit
}

func (s *Scanner) scanIdent() string {
	offs := s.offset
	for isIdentStart(s.ch) || unicode.IsDigit(s.ch) {
		s.next()
	}
	return string(s.src[offs:s.offset])
}

func (s *Scanner) scanInt(pos token.Position) (token.Token, string) {
	offs := s.offset
	for isDigit(s.ch) {
		s.next()
	}
	if isIdentStart(s.ch) {
		for isIdentStart(s.ch) || unicode.IsDigit(s.ch) {
			s.next()
		}
		lit := string(s.src[offs:s.offset])
		s.error(pos, fmt.Sprintf("invalid integer literal %q", lit))
		return token.ILLEGAL, lit
	}
	return token.INT, string(s.src[offs:s.offset])
}

func (s *Scanner) scanString(pos token.Position) string {
	// opening quote already consumed
	offs := s.offset - 1
	for {
		ch := s.ch
		if ch == eof {
			s.error(pos, "string literal not terminated")
			break
		}
		s.next()
		if ch == '"' {
			break
		}
		if ch == '\\' {
			s.scanEscape(pos)
		}
	}
	return string(s.src[offs:s.offset])
}

func (s *Scanner) scanEscape(pos token.Position) {
	switch s.ch {
	case '0', 'n', 'r', 't', '\'', '"', '\\':
		s.next()
	case 'u':
		s.next()
		if s.ch != '{' {
			s.error(s.pos(), "expected '{' after \\u")
			return
		}
		s.next()
		n := 0
		for isHex(s.ch) {
			s.next()
			n++
		}
		if n == 0 {
			s.error(s.pos(), "empty unicode escape")
		}
		if s.ch != '}' {
			s.error(s.pos(), "unicode escape not terminated")
			return
		}
		s.next()
	case eof:
		s.error(pos, "string literal not terminated")
	default:
		s.error(s.pos(), fmt.Sprintf("unknown escape character %#U", s.ch))
		s.next()
	}
}

func (s *Scanner) scanComment() string {
	// ';' already consumed
	offs := s.offset - 1
	for s.ch != '\n' && s.ch != eof {
		s.next()
	}
	return string(s.src[offs:s.offset])
}

func (s *Scanner) scanHash(pos token.Position) (token.Token, string) {
	switch s.ch {
	case 't':
		s.next()
		return token.TRUE, "#t"
	case 'f':
		s.next()
		return token.FALSE, "#f"
	}
	s.error(pos, "expected 't' or 'f' after '#'")
	return token.ILLEGAL, "#"
}
