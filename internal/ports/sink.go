package ports

import (
	"context"

	"github.com/tokpipe/tokpipe/internal/domain"
)

// ResultSink receives the transformed output of a pipeline pass.
type ResultSink interface {
	// Write emits one result. Implementations append a trailing newline.
	Write(ctx context.Context, result domain.Result) error
}
