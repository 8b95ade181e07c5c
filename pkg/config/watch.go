package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Dicklesworthstone/compactview/pkg/debounce"
)

// DefaultReloadDelay coalesces the several writes editors make when saving.
const DefaultReloadDelay = 250 * time.Millisecond

// Watch reloads the configuration at path whenever it changes and calls
// onChange with each valid result. Reload failures go to onError and leave
// the previous configuration in force; deleting the file reverts to
// Default(). Watch blocks until ctx is done.
//
// The parent directory is watched rather than the file so that editors that
// save by renaming a temporary file are still seen.
func Watch(ctx context.Context, path string, onChange func(Config), onError func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	if onError == nil {
		onError = func(error) {}
	}

	reload := debounce.NewDebouncer(DefaultReloadDelay, nil)
	defer reload.Cancel()

	apply := func() {
		cfg, err := Load(abs)
		if err != nil {
			onError(err)
			return
		}
		onChange(cfg)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				reload.Trigger(apply)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			onError(fmt.Errorf("config watcher: %w", err))
		}
	}
}
