package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/tokpipe/tokpipe/internal/adapters/source"
	"github.com/tokpipe/tokpipe/internal/cliconfig"
	"github.com/tokpipe/tokpipe/pkg/log"
	"github.com/tokpipe/tokpipe/pkg/tokpipe"
	"github.com/tokpipe/tokpipe/plugins/filewatcher"
)

const helpBanner = `
 _          _           _
| |_   ___  | | __ _ __  (_) _ __    ___
| __| / _ \ | |/ /| '_ \ | || '_ \  / _ \
| |_ | (_) ||   < | |_) || || |_) ||  __/
 \__| \___/ |_|\_\| .__/ |_|| .__/  \___|
                  |_|       |_|
`

const helpDescription = `
Normalize a message: split it into tokens, rejoin with a single separator,
and capitalize the result.

Highlights:
  - Splits on whitespace by default; delimiter set and separator are tunable.
  - Reads the message from a flag, a file, or stdin; configure via file, env, or flags.
  - Watch mode reprocesses a message file whenever it changes.
`

var longHelp = strings.TrimSpace(helpBanner) + "\n\n" + strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  tokpipe
  tokpipe --message "the quick   brown fox"
  echo "a   b" | tokpipe --stdin
  tokpipe --message-file note.txt --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	zl := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "tokpipe",
		Short:   "Normalize and capitalize a message through the split/join pipeline",
		Long:    longHelp,
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.tokpipe/config.toml), then apply flag overrides
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// Apply environment variables (TOKPIPE_*)
			// These override file config but are overridden by flags (checked via changed map)
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			zl = zl.Level(cliconfig.ParseLevel(cfg.LogLevel))
			zl.Debug().Interface("config", cfg).Msg("configuration")

			libCfg := tokpipe.Config{
				Message:       cfg.Message,
				MessageFile:   cfg.MessageFile,
				Delimiters:    cfg.Delimiters,
				Separator:     cfg.Separator,
				Capitalize:    cfg.Capitalize,
				Output:        cfg.Output,
				Watch:         cfg.Watch,
				DebounceDelay: cfg.DebounceDelay,
			}

			opts := []tokpipe.Option{
				tokpipe.WithLogger(log.NewZerologAdapterWithLogger(zl)),
			}
			if cfg.Stdin {
				opts = append(opts, tokpipe.WithSource(source.NewStdin(os.Stdin)))
			}
			if cfg.Watch {
				opts = append(opts, filewatcher.WithFileWatcher(filewatcher.DefaultConfig()))
			}

			p, err := tokpipe.New(libCfg, opts...)
			if err != nil {
				return fmt.Errorf("create tokpipe: %w", err)
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			// One-shot mode runs synchronously; only watch mode needs
			// signal handling and the lifecycle machinery.
			if !cfg.Watch {
				return p.RunOnce(ctx)
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			if err := p.Start(ctx); err != nil {
				return fmt.Errorf("start tokpipe: %w", err)
			}

			// Poll for crash so a broken watcher does not hang the process
			doneCh := make(chan struct{})
			go func() {
				ticker := time.NewTicker(100 * time.Millisecond)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						if p.Status() == tokpipe.StateCrashed {
							close(doneCh)
							return
						}
					}
				}
			}()

			select {
			case <-sigCh:
				zl.Info().Msg("received signal, stopping...")
			case <-doneCh:
				zl.Error().Msg("tokpipe crashed")
			}

			if p.Status() == tokpipe.StateRunning || p.Status() == tokpipe.StateStarting {
				if err := p.Stop(); err != nil {
					return fmt.Errorf("stop tokpipe: %w", err)
				}
			}
			return nil
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.tokpipe/config.toml)")
	root.Flags().StringVar(&cfg.Message, "message", cfg.Message, "message to process")
	root.Flags().StringVar(&cfg.MessageFile, "message-file", cfg.MessageFile, "read the message from this file")
	root.Flags().BoolVar(&cfg.Stdin, "stdin", cfg.Stdin, "read the message from standard input")

	root.Flags().StringVar(&cfg.Delimiters, "delimiters", cfg.Delimiters, "delimiter character set for splitting (default: whitespace)")
	root.Flags().StringVar(&cfg.Separator, "separator", cfg.Separator, "separator inserted between tokens when joining")
	root.Flags().BoolVar(&cfg.Capitalize, "capitalize", cfg.Capitalize, "uppercase the first character of the result")

	root.Flags().StringVar(&cfg.Output, "output", cfg.Output, "append results to this file instead of stdout")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "watch the message file and reprocess on change")
	root.Flags().DurationVar(&cfg.DebounceDelay, "debounce", cfg.DebounceDelay, "quiet period after a file change before reprocessing")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := root.Execute(); err != nil {
		zl.Error().Err(err).Msg("tokpipe")
		os.Exit(1)
	}
}
