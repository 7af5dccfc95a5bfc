package source

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tokpipe/tokpipe/internal/domain"
)

// File reads the message from a file on every Fetch.
// The whole file is the message; a trailing newline is trimmed so that
// conventional text files round-trip cleanly.
type File struct {
	path string
}

// NewFile creates a source reading from path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Fetch reads the file. Errors are fatal to the run and carry the path.
func (f *File) Fetch(ctx context.Context) (domain.Message, error) {
	b, err := os.ReadFile(f.path)
	if err != nil {
		return domain.Message{}, fmt.Errorf("read message file %s: %w", f.path, err)
	}
	text := strings.TrimRight(string(b), "\r\n")
	return domain.NewMessage(text, f.Name()), nil
}

// Name identifies this source in logs.
func (f *File) Name() string { return "file" }

// Path returns the watched file path.
func (f *File) Path() string { return f.path }
