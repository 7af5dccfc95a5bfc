package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Message       string `toml:"message"`
	MessageFile   string `toml:"message_file"`
	Stdin         *bool  `toml:"stdin"`
	Delimiters    string `toml:"delimiters"`
	Separator     string `toml:"separator"`
	Capitalize    *bool  `toml:"capitalize"`
	Output        string `toml:"output"`
	Watch         *bool  `toml:"watch"`
	DebounceDelay string `toml:"debounce_delay"`
	LogLevel      string `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.tokpipe/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".tokpipe", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("message", fc.Message, &cfg.Message)
	s.setString("message-file", fc.MessageFile, &cfg.MessageFile)
	s.setString("delimiters", fc.Delimiters, &cfg.Delimiters)
	s.setString("separator", fc.Separator, &cfg.Separator)
	s.setString("output", fc.Output, &cfg.Output)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	if err := s.setDuration("debounce", fc.DebounceDelay, &cfg.DebounceDelay); err != nil {
		return err
	}

	s.setBool("stdin", fc.Stdin, &cfg.Stdin)
	s.setBool("capitalize", fc.Capitalize, &cfg.Capitalize)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
