// Package filewatcher provides message file monitoring for tokpipe.
// When enabled, it watches the configured message file for changes and
// reruns the pipeline so the transformed result stays current.
package filewatcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tokpipe/tokpipe/pkg/log"
	"github.com/tokpipe/tokpipe/pkg/tokpipe"
)

// Plugin implements message file watching.
// It monitors the directory containing the message file and reprocesses the
// message after write or create events, debounced to absorb editor save
// sequences.
type Plugin struct {
	mu sync.Mutex

	// Configuration
	debounceDelay time.Duration

	// Runtime state
	path      string
	logger    log.Logger
	reprocess func(ctx context.Context) error
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	debounce  *time.Timer
}

// Config holds configuration options for the file watcher plugin.
type Config struct {
	// DebounceDelay is the quiet period after a file change before the
	// message is reprocessed. Default: 100 milliseconds. Overridden by the
	// instance's DebounceDelay when that is set.
	DebounceDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DebounceDelay: 100 * time.Millisecond,
	}
}

// New creates a new file watcher plugin with the given configuration.
func New(cfg Config) *Plugin {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = 100 * time.Millisecond
	}
	return &Plugin{debounceDelay: cfg.DebounceDelay}
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string {
	return "filewatcher"
}

// Initialize sets up the plugin and starts the watch loop.
func (p *Plugin) Initialize(ctx context.Context, cfg tokpipe.PluginConfig) error {
	p.mu.Lock()
	p.path = cfg.MessageFile
	p.logger = cfg.Logger
	p.reprocess = cfg.Reprocess
	if cfg.DebounceDelay > 0 {
		p.debounceDelay = cfg.DebounceDelay
	}
	p.mu.Unlock()

	if p.path == "" {
		p.logger.Warn("file watcher disabled: no message file configured")
		return nil
	}
	if p.reprocess == nil {
		return fmt.Errorf("filewatcher: no reprocess hook provided")
	}

	watchCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	// Watch the directory, not the file: editors replace files on save and
	// a watch on the old inode would go stale.
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		cancel()
		return fmt.Errorf("filewatcher: create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(p.path)); err != nil {
		watcher.Close()
		cancel()
		return fmt.Errorf("filewatcher: watch %s: %w", filepath.Dir(p.path), err)
	}

	p.logger.Info("file watcher initialized", log.String("path", p.path))

	p.wg.Add(1)
	go p.watchLoop(watchCtx, watcher)

	return nil
}

// Shutdown stops the watch loop.
func (p *Plugin) Shutdown(ctx context.Context) error {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
	return nil
}

// watchLoop reacts to file system events until the context is cancelled.
func (p *Plugin) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer p.wg.Done()
	defer watcher.Close()

	target := filepath.Base(p.path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			p.debounceReprocess(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			p.logger.Error("file watcher error", log.Err(err))
		}
	}
}

func (p *Plugin) debounceReprocess(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.debounce != nil {
		p.debounce.Stop()
	}

	p.debounce = time.AfterFunc(p.debounceDelay, func() {
		if ctx.Err() != nil {
			return
		}
		if err := p.reprocess(ctx); err != nil {
			p.logger.Error("reprocess failed", log.Err(err))
			return
		}
		p.logger.Info("message reprocessed", log.String("path", p.path))
	})
}

// Ensure Plugin implements tokpipe.Plugin.
var _ tokpipe.Plugin = (*Plugin)(nil)
