// Package text implements the tokpipe transformation primitives: splitting a
// string into tokens, joining tokens back into a string, and capitalizing a
// result.
//
// All operations are pure, synchronous, total functions. There are no error
// conditions: every string input maps to a valid output.
//
// # Usage
//
//	tokens := text.DefaultSplitter().Split("the   quick brown fox")
//	out := text.Capitalize(text.DefaultJoiner().Join(tokens))
//	// out == "The quick brown fox"
//
// The splitter's delimiter set and the joiner's separator are configurable;
// the defaults (Unicode whitespace in, single space out) make split followed
// by join normalize runs of whitespace to single spaces.
//
// # Version
//
// Current version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package text
