package tokpipe

import (
	"github.com/tokpipe/tokpipe/internal/ports"
	"github.com/tokpipe/tokpipe/pkg/log"
)

// Logger is the structured logging interface from pkg/log.
type Logger = log.Logger

// Field is the structured log field type from pkg/log.
type Field = log.Field

// MessageSource supplies the input message for a pipeline pass.
type MessageSource = ports.MessageSource

// ResultSink receives transformed results.
type ResultSink = ports.ResultSink

// Option configures optional behavior of Tokpipe.
type Option func(*options)

// options holds the optional configuration for a Tokpipe instance.
type options struct {
	logger  ports.Logger
	source  ports.MessageSource
	sink    ports.ResultSink
	plugins []Plugin
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSource overrides the message source derived from Config.
// Use this to feed messages from custom origins when embedding.
func WithSource(source MessageSource) Option {
	return func(o *options) {
		o.source = source
	}
}

// WithSink overrides the result sink derived from Config.
func WithSink(sink ResultSink) Option {
	return func(o *options) {
		o.sink = sink
	}
}

// WithPlugin registers a plugin to be initialized when Tokpipe starts.
// Plugins are initialized in registration order and shut down in reverse order.
func WithPlugin(plugin Plugin) Option {
	return func(o *options) {
		o.plugins = append(o.plugins, plugin)
	}
}
