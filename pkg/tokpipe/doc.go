// Package tokpipe provides an embeddable message transformation pipeline.
//
// Tokpipe fetches a message, splits it into tokens, rejoins the tokens with a
// separator, and capitalizes the result before emitting it. It can be used as
// a standalone CLI application or embedded as a library in other Go programs.
//
// # Basic Usage
//
// To embed tokpipe in your application:
//
//	cfg := tokpipe.DefaultConfig()
//	cfg.Message = "the quick   brown fox"
//
//	p, err := tokpipe.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out := p.Process(cfg.Message)
//	// out == "The quick brown fox"
//
// Or run the full fetch/transform/emit pass:
//
//	if err := p.RunOnce(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration
//
// Create a [Config] with [DefaultConfig]. The splitter's delimiter set, the
// joiner's separator, and capitalization are all configurable; the defaults
// split on Unicode whitespace, join with single spaces, and capitalize.
//
// # Dependency Injection
//
// For testing or custom embedding, inject your own boundaries:
//
//	p, err := tokpipe.New(cfg,
//	    tokpipe.WithSource(mySource),
//	    tokpipe.WithSink(mySink),
//	    tokpipe.WithLogger(myLogger),
//	)
//
// # Lifecycle States
//
// An instance can be in one of five states: [StateStopped], [StateStarting],
// [StateRunning], [StateStopping], or [StateCrashed]. Use [Tokpipe.Status] to
// query the current state. The default one-shot mode processes the message
// once and returns to [StateStopped]; watch mode stays in [StateRunning]
// until stopped.
//
// # Plugins
//
// Optional plugins extend a running instance:
//
//	import "github.com/tokpipe/tokpipe/plugins/filewatcher"
//
//	p, err := tokpipe.New(cfg,
//	    filewatcher.WithFileWatcher(filewatcher.DefaultConfig()),
//	)
//
// # Version
//
// Current version: 1.0.0
package tokpipe
