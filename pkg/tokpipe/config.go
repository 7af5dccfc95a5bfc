package tokpipe

import (
	"fmt"
	"time"

	"github.com/tokpipe/tokpipe/internal/domain"
	"github.com/tokpipe/tokpipe/pkg/text"
)

// DefaultMessage is processed when no message, file, or custom source is
// configured.
const DefaultMessage = "hello,      world!"

// Config holds the configuration for a Tokpipe instance.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config struct {
	// Message is the fixed input processed when MessageFile is empty.
	Message string

	// MessageFile, when set, is read for the input message instead of Message.
	MessageFile string

	// Delimiters is the splitter's delimiter character set.
	// Empty means Unicode whitespace.
	Delimiters string

	// Separator is inserted between tokens when joining. Defaults to a
	// single space.
	Separator string

	// Capitalize uppercases the first rune of the joined result.
	Capitalize bool

	// Output, when set, appends results to this file instead of stdout.
	Output string

	// Watch keeps the instance running and reprocesses MessageFile when it
	// changes. Requires MessageFile.
	Watch bool

	// DebounceDelay is the quiet period after a file change before the
	// message is reprocessed.
	DebounceDelay time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Message:       DefaultMessage,
		Separator:     text.DefaultSeparator,
		Capitalize:    true,
		DebounceDelay: 100 * time.Millisecond,
	}
}

// SetDefaults fills zero-valued fields with defaults.
// Capitalize is left alone: false is a valid setting.
func (c *Config) SetDefaults() {
	if c.Message == "" && c.MessageFile == "" {
		c.Message = DefaultMessage
	}
	if c.Separator == "" {
		c.Separator = text.DefaultSeparator
	}
	if c.DebounceDelay <= 0 {
		c.DebounceDelay = 100 * time.Millisecond
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Watch && c.MessageFile == "" {
		return fmt.Errorf("%w: watch requires a message file", domain.ErrInvalidConfig)
	}
	return nil
}
