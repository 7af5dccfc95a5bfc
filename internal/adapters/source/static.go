// Package source provides MessageSource adapters for the pipeline.
package source

import (
	"context"

	"github.com/tokpipe/tokpipe/internal/domain"
)

// Static supplies a fixed message from configuration.
type Static struct {
	text string
}

// NewStatic creates a source that always returns text.
func NewStatic(text string) *Static {
	return &Static{text: text}
}

// Fetch returns the configured message.
func (s *Static) Fetch(ctx context.Context) (domain.Message, error) {
	return domain.NewMessage(s.text, s.Name()), nil
}

// Name identifies this source in logs.
func (s *Static) Name() string { return "static" }
