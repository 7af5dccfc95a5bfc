// Package tokpipe provides a small message normalization pipeline: split a
// message into tokens, rejoin them with a single separator, and capitalize
// the result.
//
// Example usage:
//
//	cfg := tokpipe.DefaultConfig()
//	cfg.Message = "the quick   brown fox"
//	if err := tokpipe.Run(context.Background(), cfg); err != nil {
//	    log.Fatal(err)
//	}
package tokpipe

import (
	"context"

	pipe "github.com/tokpipe/tokpipe/pkg/tokpipe"
)

// Config holds the configuration for the pipeline.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = pipe.Config

// Option configures optional behavior of the pipeline.
type Option = pipe.Option

// Run performs a single pipeline pass with the given configuration:
// fetch the message, transform it, and emit the result.
func Run(ctx context.Context, cfg Config, opts ...Option) error {
	p, err := pipe.New(cfg, opts...)
	if err != nil {
		return err
	}
	return p.RunOnce(ctx)
}

// Process runs the pure transformation over s with default settings.
func Process(s string) (string, error) {
	p, err := pipe.New(DefaultConfig())
	if err != nil {
		return "", err
	}
	return p.Process(s), nil
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return pipe.DefaultConfig()
}

// DefaultMessage is the message processed when none is configured.
const DefaultMessage = pipe.DefaultMessage
