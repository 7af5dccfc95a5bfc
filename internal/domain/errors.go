package domain

import "errors"

// Domain errors represent error conditions in the tokpipe domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrAlreadyRunning is returned when Start() is called on a running instance.
	ErrAlreadyRunning = errors.New("tokpipe: already running")

	// ErrNotRunning is returned when Stop() is called on a stopped instance.
	ErrNotRunning = errors.New("tokpipe: not running")

	// ErrShutdownTimeout is returned when graceful shutdown times out.
	ErrShutdownTimeout = errors.New("tokpipe: shutdown timeout")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("tokpipe: invalid configuration")

	// ErrNoMessage is returned when a source has no message to provide.
	ErrNoMessage = errors.New("tokpipe: no message available")
)
