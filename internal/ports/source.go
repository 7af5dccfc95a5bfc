package ports

import (
	"context"

	"github.com/tokpipe/tokpipe/internal/domain"
)

// MessageSource supplies the input message for a pipeline pass.
// Implementations read from configuration, files, or standard input.
type MessageSource interface {
	// Fetch returns the current message. A failure here is fatal to the
	// run: the pipeline does not retry sources.
	Fetch(ctx context.Context) (domain.Message, error)

	// Name identifies the source in logs (e.g. "static", "file", "stdin").
	Name() string
}
