package text

import (
	"unicode"
	"unicode/utf8"
)

// Capitalize returns a copy of s with the first rune uppercased and the
// remainder unchanged. The empty string is returned unchanged.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}
