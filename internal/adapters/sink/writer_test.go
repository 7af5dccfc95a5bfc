package sink

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/tokpipe/tokpipe/internal/domain"
)

func TestWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriter(&buf)

	if err := s.Write(context.Background(), domain.Result{Output: "The quick brown fox"}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if got := buf.String(); got != "The quick brown fox\n" {
		t.Errorf("output = %q, want %q", got, "The quick brown fox\n")
	}
}

func TestFileSink_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	s := NewFile(path)
	ctx := context.Background()

	if err := s.Write(ctx, domain.Result{Output: "first"}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := s.Write(ctx, domain.Result{Output: "second"}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output file: %v", err)
	}
	if got := string(b); got != "first\nsecond\n" {
		t.Errorf("file contents = %q, want %q", got, "first\nsecond\n")
	}
}
