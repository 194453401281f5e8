package file

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/caopengau/aiready-skills/internal/logger"
)

// Watcher reloads a ConfigStore when its TOML file changes on disk.
// Long-running surfaces use it so edits to the config file take effect
// without a restart.
type Watcher struct {
	store    *ConfigStore
	onReload func()
}

// NewWatcher creates a watcher over the given store. onReload may be
// nil; when set it runs after each successful reload.
func NewWatcher(store *ConfigStore, onReload func()) *Watcher {
	return &Watcher{store: store, onReload: onReload}
}

// Watch blocks until ctx is cancelled, reloading the store whenever
// the config file is rewritten.
func (w *Watcher) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file. Editors and Save replace the
	// file, and a watch on the old inode goes stale after the swap.
	if err := watcher.Add(filepath.Dir(w.store.Path())); err != nil {
		return fmt.Errorf("watch config dir: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.shouldReload(event) {
				continue
			}
			if err := w.store.Load(); err != nil {
				logger.Warn("Config reload failed: %v", err)
				continue
			}
			logger.Debug("Config reloaded from %s", w.store.Path())
			if w.onReload != nil {
				w.onReload()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Config watch error: %v", err)
		}
	}
}

// shouldReload reports whether the event is a rewrite of the config
// file itself. Removals are ignored; Load would just clear the store
// mid-edit when an editor deletes before rewriting.
func (w *Watcher) shouldReload(event fsnotify.Event) bool {
	if event.Name != w.store.Path() {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create)
}
