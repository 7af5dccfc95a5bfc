package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (TOKPIPE_*).
// It respects flags that have been explicitly set (changed map).
// Returns an error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("message", os.Getenv("TOKPIPE_MESSAGE"), &cfg.Message)
	s.setString("message-file", os.Getenv("TOKPIPE_MESSAGE_FILE"), &cfg.MessageFile)
	s.setString("delimiters", os.Getenv("TOKPIPE_DELIMITERS"), &cfg.Delimiters)
	s.setString("separator", os.Getenv("TOKPIPE_SEPARATOR"), &cfg.Separator)
	s.setString("output", os.Getenv("TOKPIPE_OUTPUT"), &cfg.Output)
	s.setString("log-level", os.Getenv("TOKPIPE_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDuration("debounce", os.Getenv("TOKPIPE_DEBOUNCE_DELAY"), &cfg.DebounceDelay); err != nil {
		return err
	}

	s.setBoolFromString("stdin", os.Getenv("TOKPIPE_STDIN"), &cfg.Stdin)
	s.setBoolFromString("capitalize", os.Getenv("TOKPIPE_CAPITALIZE"), &cfg.Capitalize)
	s.setBoolFromString("watch", os.Getenv("TOKPIPE_WATCH"), &cfg.Watch)

	return nil
}
