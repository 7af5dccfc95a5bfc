// Package app contains the application layer: the pipeline orchestration and
// the lifecycle state machine backing the embeddable library.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/tokpipe/tokpipe/internal/domain"
	"github.com/tokpipe/tokpipe/internal/ports"
	"github.com/tokpipe/tokpipe/pkg/text"
)

// PipelineConfig holds the transformation settings for a pipeline.
type PipelineConfig struct {
	// Delimiters is the splitter's delimiter set; empty means whitespace.
	Delimiters string

	// Separator is inserted between tokens when joining.
	Separator string

	// Capitalize uppercases the first rune of the joined result.
	Capitalize bool
}

// Pipeline orchestrates one transformation pass:
// fetch -> split -> join -> capitalize -> sink.
type Pipeline struct {
	cfg      PipelineConfig
	splitter text.Splitter
	joiner   text.Joiner
	source   ports.MessageSource
	sink     ports.ResultSink
	logger   ports.Logger
}

// NewPipeline creates a pipeline with the given source, sink and settings.
func NewPipeline(cfg PipelineConfig, source ports.MessageSource, sink ports.ResultSink, logger ports.Logger) *Pipeline {
	if cfg.Separator == "" {
		cfg.Separator = text.DefaultSeparator
	}
	return &Pipeline{
		cfg:      cfg,
		splitter: text.Splitter{Delimiters: cfg.Delimiters},
		joiner:   text.Joiner{Separator: cfg.Separator},
		source:   source,
		sink:     sink,
		logger:   logger,
	}
}

// Transform runs the pure transformation over a message. It never fails:
// split, join and capitalize are total functions.
func (p *Pipeline) Transform(msg domain.Message) domain.Result {
	tokens := p.splitter.Split(msg.Text)
	out := p.joiner.Join(tokens)
	if p.cfg.Capitalize {
		out = text.Capitalize(out)
	}
	return domain.Result{
		Output:     out,
		TokenCount: tokens.Len(),
		Message:    msg,
	}
}

// RunOnce performs a single pass: fetch the message, transform it, and write
// the result. Source and sink failures are returned unrecovered.
func (p *Pipeline) RunOnce(ctx context.Context) error {
	start := time.Now()

	msg, err := p.source.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch message: %w", err)
	}

	result := p.Transform(msg)

	if err := p.sink.Write(ctx, result); err != nil {
		return fmt.Errorf("emit result: %w", err)
	}

	p.logger.Debug("pipeline pass complete",
		ports.String("source", msg.Source),
		ports.Int("tokens", result.TokenCount),
		ports.Duration("elapsed", time.Since(start)))
	return nil
}
