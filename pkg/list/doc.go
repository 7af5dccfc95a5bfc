// Package list provides the token sequence container used by the tokpipe
// transformation pipeline.
//
// A [List] is an ordered, mutable sequence of string tokens supporting append
// and iteration. The splitter produces a List and the joiner consumes one;
// append order is preserved end to end (no reordering, no deduplication).
//
// # Usage
//
//	l := list.New()
//	l.Append("the")
//	l.Append("quick")
//	l.Each(func(token string) bool {
//	    fmt.Println(token)
//	    return true
//	})
//
// # Version
//
// Current version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package list
