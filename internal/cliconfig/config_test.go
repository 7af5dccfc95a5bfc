package cliconfig

import (
	"testing"
	"time"

	"github.com/tokpipe/tokpipe/pkg/tokpipe"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Message != tokpipe.DefaultMessage {
		t.Errorf("Message = %q, want default message", cfg.Message)
	}
	if cfg.Separator != " " {
		t.Errorf("Separator = %q, want single space", cfg.Separator)
	}
	if !cfg.Capitalize {
		t.Error("Capitalize = false, want true")
	}
	if cfg.DebounceDelay != 100*time.Millisecond {
		t.Errorf("DebounceDelay = %v, want 100ms", cfg.DebounceDelay)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "stdin source",
			mutate: func(c *Config) {
				c.Stdin = true
			},
			wantErr: false,
		},
		{
			name: "stdin and message-file conflict",
			mutate: func(c *Config) {
				c.Stdin = true
				c.MessageFile = "/tmp/message.txt"
			},
			wantErr: true,
		},
		{
			name: "watch without message-file",
			mutate: func(c *Config) {
				c.Watch = true
			},
			wantErr: true,
		},
		{
			name: "watch with message-file",
			mutate: func(c *Config) {
				c.Watch = true
				c.MessageFile = "/tmp/message.txt"
			},
			wantErr: false,
		},
		{
			name: "non-positive debounce",
			mutate: func(c *Config) {
				c.DebounceDelay = 0
			},
			wantErr: true,
		},
		{
			name: "unknown log level",
			mutate: func(c *Config) {
				c.LogLevel = "loud"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
