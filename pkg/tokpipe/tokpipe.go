package tokpipe

import (
	"context"
	"sync"

	"github.com/tokpipe/tokpipe/internal/adapters/sink"
	"github.com/tokpipe/tokpipe/internal/adapters/source"
	"github.com/tokpipe/tokpipe/internal/app"
	"github.com/tokpipe/tokpipe/internal/domain"
	"github.com/tokpipe/tokpipe/internal/ports"
)

// State represents the lifecycle state of a Tokpipe instance.
type State = app.State

// Lifecycle states. An instance starts in StateStopped.
const (
	StateStopped  = app.StateStopped
	StateStarting = app.StateStarting
	StateRunning  = app.StateRunning
	StateStopping = app.StateStopping
	StateCrashed  = app.StateCrashed
)

// Tokpipe is a message transformation pipeline that can be embedded in other
// applications. Use New() to create an instance, then Start() to run it.
type Tokpipe struct {
	config    Config
	opts      options
	lifecycle *app.Lifecycle
	pipeline  *app.Pipeline
	logger    ports.Logger
	plugins   []Plugin

	mu     sync.Mutex
	cancel context.CancelFunc
}

// New creates a new Tokpipe instance with the given configuration.
// The instance is created in StateStopped; call Start() to run it.
// Returns an error if configuration is invalid.
func New(cfg Config, opts ...Option) (*Tokpipe, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	src := o.source
	if src == nil {
		if cfg.MessageFile != "" {
			src = source.NewFile(cfg.MessageFile)
		} else {
			src = source.NewStatic(cfg.Message)
		}
	}

	out := o.sink
	if out == nil {
		if cfg.Output != "" {
			out = sink.NewFile(cfg.Output)
		} else {
			out = sink.NewStdout()
		}
	}

	pipeline := app.NewPipeline(app.PipelineConfig{
		Delimiters: cfg.Delimiters,
		Separator:  cfg.Separator,
		Capitalize: cfg.Capitalize,
	}, src, out, o.logger)

	return &Tokpipe{
		config:    cfg,
		opts:      o,
		lifecycle: app.NewLifecycle(o.logger),
		pipeline:  pipeline,
		logger:    o.logger,
		plugins:   o.plugins,
	}, nil
}

// Process runs the pure transformation over s and returns the result.
// It does not touch the configured source or sink.
func (t *Tokpipe) Process(s string) string {
	return t.pipeline.Transform(domain.NewMessage(s, "direct")).Output
}

// RunOnce performs a single pass synchronously: fetch, transform, emit.
// It does not change the lifecycle state.
func (t *Tokpipe) RunOnce(ctx context.Context) error {
	return t.pipeline.RunOnce(ctx)
}

// Start runs the pipeline in the background.
// In the default one-shot mode the instance processes the message once and
// transitions back to StateStopped. With Config.Watch it stays running and
// reprocesses the message file on change until Stop() is called.
// Returns an error if already running or if a plugin fails to initialize.
func (t *Tokpipe) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.lifecycle.CanStart() {
		return domain.ErrAlreadyRunning
	}
	if err := t.lifecycle.TransitionTo(app.StateStarting, "Start() called"); err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.lifecycle.SetCancel(cancel)

	pluginCfg := PluginConfig{
		MessageFile:   t.config.MessageFile,
		DebounceDelay: t.config.DebounceDelay,
		Logger:        t.logger,
		Reprocess:     t.pipeline.RunOnce,
	}
	for _, p := range t.plugins {
		if err := p.Initialize(runCtx, pluginCfg); err != nil {
			t.logger.Error("plugin initialization failed",
				ports.String("plugin", p.Name()),
				ports.Err(err))
			cancel()
			_ = t.lifecycle.TransitionTo(app.StateCrashed, "plugin init failed: "+p.Name())
			return err
		}
		t.logger.Info("plugin initialized", ports.String("plugin", p.Name()))
	}

	t.lifecycle.AddWorker()
	go func() {
		defer t.lifecycle.WorkerDone()

		if err := t.lifecycle.TransitionTo(app.StateRunning, "pipeline starting"); err != nil {
			t.logger.Error("failed to transition to running", ports.Err(err))
			return
		}

		if err := t.pipeline.RunOnce(runCtx); err != nil {
			t.logger.Error("pipeline error", ports.Err(err))
			_ = t.lifecycle.TransitionTo(app.StateCrashed, err.Error())
			return
		}

		if t.config.Watch {
			// Plugins drive further passes; hold until cancelled.
			<-runCtx.Done()
			return
		}

		_ = t.lifecycle.TransitionTo(app.StateStopping, "one-shot complete")
		_ = t.lifecycle.TransitionTo(app.StateStopped, "one-shot complete")
	}()

	return nil
}

// Stop gracefully shuts down the instance.
// Waits up to app.ShutdownTimeout for the worker to finish.
// Returns nil on graceful shutdown, ErrShutdownTimeout if forced.
func (t *Tokpipe) Stop() error {
	t.mu.Lock()

	if !t.lifecycle.CanStop() {
		t.mu.Unlock()
		return domain.ErrNotRunning
	}
	if err := t.lifecycle.TransitionTo(app.StateStopping, "Stop() called"); err != nil {
		t.mu.Unlock()
		return err
	}
	if t.cancel != nil {
		t.cancel()
	}
	t.mu.Unlock()

	err := t.lifecycle.WaitWithTimeout(app.ShutdownTimeout)

	shutdownCtx := context.Background()
	for i := len(t.plugins) - 1; i >= 0; i-- {
		p := t.plugins[i]
		if shutdownErr := p.Shutdown(shutdownCtx); shutdownErr != nil {
			t.logger.Error("plugin shutdown failed",
				ports.String("plugin", p.Name()),
				ports.Err(shutdownErr))
		} else {
			t.logger.Info("plugin shutdown complete", ports.String("plugin", p.Name()))
		}
	}

	if err != nil {
		_ = t.lifecycle.TransitionTo(app.StateCrashed, "shutdown timeout")
	} else {
		_ = t.lifecycle.TransitionTo(app.StateStopped, "graceful shutdown")
	}
	return err
}

// Status returns the current lifecycle state.
// Safe to call concurrently from any goroutine.
func (t *Tokpipe) Status() State {
	return t.lifecycle.State()
}
