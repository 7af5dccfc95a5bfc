package filewatcher

import "github.com/tokpipe/tokpipe/pkg/tokpipe"

// WithFileWatcher returns a tokpipe Option that enables message file
// watching. When enabled, the plugin monitors the configured message file and
// reruns the pipeline after each change.
//
// Usage:
//
//	p, err := tokpipe.New(cfg,
//	    filewatcher.WithFileWatcher(filewatcher.Config{
//	        DebounceDelay: 100 * time.Millisecond,
//	    }),
//	)
func WithFileWatcher(cfg Config) tokpipe.Option {
	return tokpipe.WithPlugin(New(cfg))
}

// WithDefaultFileWatcher returns a tokpipe Option that enables message file
// watching with default settings (debounce 100ms).
//
// Usage:
//
//	p, err := tokpipe.New(cfg, filewatcher.WithDefaultFileWatcher())
func WithDefaultFileWatcher() tokpipe.Option {
	return WithFileWatcher(DefaultConfig())
}
