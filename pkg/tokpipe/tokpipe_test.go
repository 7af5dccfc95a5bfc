package tokpipe

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tokpipe/tokpipe/internal/adapters/sink"
	"github.com/tokpipe/tokpipe/internal/domain"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name:    "watch without message file",
			config:  Config{Watch: true},
			wantErr: true,
		},
		{
			name:    "watch with message file",
			config:  Config{Watch: true, MessageFile: "/tmp/message.txt"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, domain.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_SetDefaults(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()

	if cfg.Message != DefaultMessage {
		t.Errorf("Message = %q, want DefaultMessage", cfg.Message)
	}
	if cfg.Separator != " " {
		t.Errorf("Separator = %q, want single space", cfg.Separator)
	}
	if cfg.DebounceDelay <= 0 {
		t.Errorf("DebounceDelay = %v, want positive", cfg.DebounceDelay)
	}

	// A message file suppresses the default message.
	cfg = Config{MessageFile: "/tmp/message.txt"}
	cfg.SetDefaults()
	if cfg.Message != "" {
		t.Errorf("Message = %q, want empty when MessageFile set", cfg.Message)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	if _, err := New(Config{Watch: true}); !errors.Is(err, domain.ErrInvalidConfig) {
		t.Errorf("New() error = %v, want ErrInvalidConfig", err)
	}
}

func TestTokpipe_RunOnce(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Message = "a   b"

	p, err := New(cfg, WithSink(sink.NewWriter(&buf)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := p.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce failed: %v", err)
	}
	if got := buf.String(); got != "A b\n" {
		t.Errorf("output = %q, want %q", got, "A b\n")
	}
}

func TestTokpipe_OneShotLifecycle(t *testing.T) {
	var buf bytes.Buffer
	p, err := New(DefaultConfig(), WithSink(sink.NewWriter(&buf)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if p.Status() != StateStopped {
		t.Fatalf("Status = %v, want Stopped", p.Status())
	}
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	waitForState(t, p, StateStopped)
	if got := buf.String(); got != "Hello, world!\n" {
		t.Errorf("output = %q, want %q", got, "Hello, world!\n")
	}
}

func TestTokpipe_StartTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "message.txt")
	if err := os.WriteFile(path, []byte("hi there\n"), 0644); err != nil {
		t.Fatalf("write message file: %v", err)
	}

	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.MessageFile = path
	cfg.Watch = true

	p, err := New(cfg, WithSink(sink.NewWriter(&buf)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer func() { _ = p.Stop() }()

	waitForState(t, p, StateRunning)
	if err := p.Start(context.Background()); !errors.Is(err, domain.ErrAlreadyRunning) {
		t.Errorf("second Start = %v, want ErrAlreadyRunning", err)
	}
}

func TestTokpipe_StopWhenStopped(t *testing.T) {
	p, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := p.Stop(); !errors.Is(err, domain.ErrNotRunning) {
		t.Errorf("Stop = %v, want ErrNotRunning", err)
	}
}

func waitForState(t *testing.T, p *Tokpipe, want State) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if p.Status() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Status = %v, want %v", p.Status(), want)
}
