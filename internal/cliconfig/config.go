package cliconfig

import (
	"fmt"
	"time"

	"github.com/tokpipe/tokpipe/pkg/tokpipe"
)

// Config holds CLI configuration for tokpipe.
type Config struct {
	Message     string
	MessageFile string
	Stdin       bool

	Delimiters string
	Separator  string
	Capitalize bool

	Output        string
	Watch         bool
	DebounceDelay time.Duration

	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Message:       tokpipe.DefaultMessage,
		Separator:     " ",
		Capitalize:    true,
		DebounceDelay: 100 * time.Millisecond,
		LogLevel:      "info",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Stdin && c.MessageFile != "" {
		return fmt.Errorf("stdin and message-file are mutually exclusive")
	}
	if c.Watch {
		if c.MessageFile == "" {
			return fmt.Errorf("watch requires message-file")
		}
		if c.Stdin {
			return fmt.Errorf("watch cannot read from stdin")
		}
	}
	if c.DebounceDelay <= 0 {
		return fmt.Errorf("debounce delay must be positive")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
