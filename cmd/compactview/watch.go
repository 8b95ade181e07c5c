package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Dicklesworthstone/compactview/pkg/config"
	"github.com/Dicklesworthstone/compactview/pkg/viewport"
)

func newWatchCmd(e env, opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the classification and every change until interrupted",
		Long: `Print the current classification, then one line per change. The config file
is reloaded when it changes; a reload replaces the classifier with one built
from the new settings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.LogLevel, e.errOut)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := &watcher{
				host:   e.host(),
				logger: logger,
				out:    cmd.OutOrStdout(),
				json:   asJSON,
				events: make(chan report, 16),
			}
			return w.run(ctx, cfg, func(reloaded config.Config) (config.Config, error) {
				return applyFlags(cmd, opts, reloaded)
			}, opts.configPath)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON lines")
	return cmd
}

// watcher owns the classifier slot for the watch command.
type watcher struct {
	host   viewport.Host
	logger *zap.Logger
	out    io.Writer
	json   bool
	events chan report

	mu   sync.Mutex
	slot viewport.Slot
}

func (w *watcher) run(ctx context.Context, cfg config.Config, merge func(config.Config) (config.Config, error), configPath string) error {
	g, ctx := errgroup.WithContext(ctx)

	w.install(ctx, cfg)

	g.Go(func() error {
		return w.print(ctx)
	})

	if configPath != "" {
		g.Go(func() error {
			err := config.Watch(ctx, configPath, func(reloaded config.Config) {
				merged, err := merge(reloaded)
				if err != nil {
					w.logger.Warn("ignoring config reload", zap.Error(err))
					return
				}
				w.logger.Info("config reloaded",
					zap.String("path", configPath),
					zap.Int("threshold", merged.Threshold),
					zap.Bool("orientation", merged.Orientation))
				w.install(ctx, merged)
			}, func(err error) {
				w.logger.Warn("config reload failed", zap.Error(err))
			})
			if err != nil {
				// Running without hot reload is still useful.
				w.logger.Warn("config watch disabled", zap.Error(err))
			}
			return nil
		})
	}

	err := g.Wait()

	// ctx is done here, so install will not add another classifier.
	w.mu.Lock()
	w.slot.Close()
	w.mu.Unlock()
	return err
}

// install replaces the active classifier and emits its initial value.
func (w *watcher) install(ctx context.Context, cfg config.Config) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if ctx.Err() != nil {
		return
	}

	c := viewport.New(w.host, append(cfg.Options(), viewport.WithLogger(w.logger))...)
	c.OnChange(func(bool) {
		w.emit(ctx, newReport(c))
	})
	w.slot.Replace(c)
	w.emit(ctx, newReport(c))
}

func (w *watcher) emit(ctx context.Context, r report) {
	select {
	case w.events <- r:
	case <-ctx.Done():
	}
}

func (w *watcher) print(ctx context.Context) error {
	enc := json.NewEncoder(w.out)
	for {
		select {
		case <-ctx.Done():
			return nil
		case r := <-w.events:
			var err error
			if w.json {
				err = enc.Encode(r)
			} else {
				_, err = fmt.Fprintln(w.out, r.text())
			}
			if err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}
}
