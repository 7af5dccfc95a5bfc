// Package sink provides ResultSink adapters for the pipeline.
package sink

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/tokpipe/tokpipe/internal/domain"
)

// Writer emits results to an io.Writer, one line per result.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter creates a sink writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// NewStdout creates a sink writing to standard output.
func NewStdout() *Writer {
	return NewWriter(os.Stdout)
}

// Write emits the result output followed by a newline.
func (s *Writer) Write(ctx context.Context, result domain.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintln(s.w, result.Output); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

// FileSink appends results to a file, creating it if needed.
type FileSink struct {
	mu   sync.Mutex
	path string
}

// NewFile creates a sink appending to path.
func NewFile(path string) *FileSink {
	return &FileSink{path: path}
}

// Write appends the result output followed by a newline.
func (s *FileSink) Write(ctx context.Context, result domain.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open output file %s: %w", s.path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, result.Output); err != nil {
		return fmt.Errorf("write output file %s: %w", s.path, err)
	}
	return nil
}
