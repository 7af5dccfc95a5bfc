package text

import (
	"strings"

	"github.com/tokpipe/tokpipe/pkg/list"
)

// DefaultSeparator is inserted between consecutive tokens when joining.
// A single space mirrors the default splitter policy, so split followed by
// join is idempotent for whitespace-normalized input.
const DefaultSeparator = " "

// Joiner concatenates an ordered sequence of tokens into a single string.
type Joiner struct {
	Separator string
}

// DefaultJoiner returns a Joiner using DefaultSeparator.
func DefaultJoiner() Joiner {
	return Joiner{Separator: DefaultSeparator}
}

// Join concatenates the tokens with the separator between consecutive tokens.
// An empty or nil list yields the empty string. Total function.
func (j Joiner) Join(tokens *list.List) string {
	if tokens.Empty() {
		return ""
	}

	var b strings.Builder
	first := true
	tokens.Each(func(token string) bool {
		if !first {
			b.WriteString(j.Separator)
		}
		b.WriteString(token)
		first = false
		return true
	})
	return b.String()
}
