package source

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/tokpipe/tokpipe/internal/domain"
)

// Stdin reads the entire message from a reader, normally os.Stdin.
// It reads at most once; subsequent fetches return the same message.
type Stdin struct {
	r       io.Reader
	fetched bool
	cached  domain.Message
}

// NewStdin creates a source that consumes r in full on first Fetch.
func NewStdin(r io.Reader) *Stdin {
	return &Stdin{r: r}
}

// Fetch reads all of the reader on the first call and caches the result.
func (s *Stdin) Fetch(ctx context.Context) (domain.Message, error) {
	if s.fetched {
		return s.cached, nil
	}
	b, err := io.ReadAll(s.r)
	if err != nil {
		return domain.Message{}, fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimRight(string(b), "\r\n")
	s.cached = domain.NewMessage(text, s.Name())
	s.fetched = true
	return s.cached, nil
}

// Name identifies this source in logs.
func (s *Stdin) Name() string { return "stdin" }
