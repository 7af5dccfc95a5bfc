package tokpipe

import (
	"context"
	"time"
)

// Plugin extends a Tokpipe instance with optional behavior, such as watching
// the message file for changes.
type Plugin interface {
	// Name returns the plugin identifier used in logs.
	Name() string

	// Initialize starts the plugin. The context is cancelled when the
	// instance stops.
	Initialize(ctx context.Context, cfg PluginConfig) error

	// Shutdown stops the plugin and releases its resources.
	Shutdown(ctx context.Context) error
}

// PluginConfig carries the instance configuration plugins need.
type PluginConfig struct {
	// MessageFile is the configured message file path, if any.
	MessageFile string

	// DebounceDelay is the configured quiet period for file events.
	DebounceDelay time.Duration

	// Logger is the instance logger.
	Logger Logger

	// Reprocess runs one pipeline pass. Plugins call this to re-emit the
	// result after an external change.
	Reprocess func(ctx context.Context) error
}
