package domain

import "time"

// Message is an immutable input string with metadata about where it came from.
// A message is sourced once per pipeline pass and never mutated.
type Message struct {
	// Text is the raw message content.
	Text string

	// Source names the origin (e.g. "static", "file", "stdin").
	Source string

	// FetchedAt is when the source produced the message.
	FetchedAt time.Time
}

// NewMessage creates a message stamped with the current time.
func NewMessage(text, source string) Message {
	return Message{
		Text:      text,
		Source:    source,
		FetchedAt: time.Now(),
	}
}

// Result is the output of one pipeline pass over a message.
type Result struct {
	// Output is the normalized, capitalized text.
	Output string

	// TokenCount is the number of tokens the splitter produced.
	TokenCount int

	// Message is the input that produced this result.
	Message Message
}
