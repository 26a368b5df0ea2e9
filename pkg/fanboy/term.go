package fanboy

import (
	"strings"
	"unicode"
)

const upperhex = "0123456789ABCDEF"

// EncodeTerm validates a search or suggestion term and encodes it for use
// as a single URL path segment.
//
// Leading and trailing whitespace is trimmed, inner whitespace is kept and
// every space is encoded on its own, so " abc  def" becomes "abc%20%20def".
// Literal double quotes are escaped as \" before encoding.
func EncodeTerm(term string) (string, error) {
	trimmed := strings.TrimFunc(term, unicode.IsSpace)
	if trimmed == "" {
		return "", ErrInvalidTerm
	}

	escaped := strings.ReplaceAll(trimmed, `"`, `\"`)

	var b strings.Builder
	b.Grow(len(escaped) * 3)
	for i := 0; i < len(escaped); i++ {
		c := escaped[i]
		if hostAllowed(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String(), nil
}

// hostAllowed reports whether c may appear unencoded in a URL host.
func hostAllowed(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '.', '_', '~',
		'!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=',
		':', '[', ']':
		return true
	}
	return false
}
