package text

import (
	"strings"
	"unicode"

	"github.com/tokpipe/tokpipe/pkg/list"
)

// Splitter divides a source string into an ordered sequence of tokens.
//
// Delimiters is the set of characters that separate tokens. When empty,
// Unicode whitespace is used. Runs of consecutive delimiters count as a
// single separation, so no empty tokens are ever produced.
type Splitter struct {
	Delimiters string
}

// DefaultSplitter returns a Splitter that splits on Unicode whitespace.
func DefaultSplitter() Splitter {
	return Splitter{}
}

// Split divides source into tokens. It is a total function: every input,
// including the empty string, yields a valid (possibly empty) list.
func (s Splitter) Split(source string) *list.List {
	tokens := list.New()
	isDelim := s.delimFunc()

	var current strings.Builder
	for _, r := range source {
		if isDelim(r) {
			if current.Len() > 0 {
				tokens.Append(current.String())
				current.Reset()
			}
			continue
		}
		current.WriteRune(r)
	}
	if current.Len() > 0 {
		tokens.Append(current.String())
	}
	return tokens
}

func (s Splitter) delimFunc() func(rune) bool {
	if s.Delimiters == "" {
		return unicode.IsSpace
	}
	return func(r rune) bool {
		return strings.ContainsRune(s.Delimiters, r)
	}
}
