package ports

import "github.com/tokpipe/tokpipe/pkg/log"

// Logger is the structured logging abstraction used across the application
// layer. It is the Logger interface from pkg/log.
type Logger = log.Logger

// Field is a structured log field.
type Field = log.Field

// Re-exported field constructors so application code only imports ports.
var (
	String   = log.String
	Int      = log.Int
	Bool     = log.Bool
	Duration = log.Duration
	Err      = log.Err
	Any      = log.Any
)
