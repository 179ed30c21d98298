package scanner

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Unquote decodes a STRING literal as returned by Scan, including its
// surrounding quotes. Recognized escapes are \0 \n \r \t \' \" \\ and
// \u{HEX} for an arbitrary Unicode scalar.
func Unquote(lit string) (string, error) {
	if len(lit) < 2 || lit[0] != '"' || lit[len(lit)-1] != '"' {
		return "", fmt.Errorf("invalid string literal %s", lit)
	}
	s := lit[1 : len(lit)-1]
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			i++
			continue
		}
		i++
		if i >= len(s) {
			return "", fmt.Errorf("trailing backslash in string literal")
		}
		switch s[i] {
		case '0':
			b.WriteByte(0)
			i++
		case 'n':
			b.WriteByte('\n')
			i++
		case 'r':
			b.WriteByte('\r')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case '\'':
			b.WriteByte('\'')
			i++
		case '"':
			b.WriteByte('"')
			i++
		case '\\':
			b.WriteByte('\\')
			i++
		case 'u':
			i++
			if i >= len(s) || s[i] != '{' {
				return "", fmt.Errorf("expected '{' after \\u")
			}
			i++
			j := strings.IndexByte(s[i:], '}')
			if j < 0 {
				return "", fmt.Errorf("unicode escape not terminated")
			}
			digits := s[i : i+j]
			if digits == "" {
				return "", fmt.Errorf("empty unicode escape")
			}
			v, err := strconv.ParseUint(digits, 16, 32)
			if err != nil {
				return "", fmt.Errorf("invalid unicode escape \\u{%s}: %w", digits, err)
			}
			if !utf8.ValidRune(rune(v)) {
				return "", fmt.Errorf("%#x is not a valid unicode scalar", v)
			}
			b.WriteRune(rune(v))
			i += j + 1
		default:
			r, _ := utf8.DecodeRuneInString(s[i:])
			return "", fmt.Errorf("unknown escape character %q", r)
		}
	}
	return b.String(), nil
}
