package file

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/mathop-labs/mathop-cli/internal/logger"
)

// Watcher reloads a ConfigStore when its file changes on disk.
// It lets a long-running `mathop mcp serve` pick up settings edits
// (e.g. toggling logging.verbose) without a restart.
type Watcher struct {
	store    *ConfigStore
	onReload func()
	watcher  *fsnotify.Watcher
}

// NewWatcher creates a watcher for the given store. onReload is called
// after every successful reload; it may be nil.
func NewWatcher(store *ConfigStore, onReload func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file: editors and the store itself
	// replace the file, which would drop a direct file watch.
	if err := fsw.Add(filepath.Dir(store.Path())); err != nil {
		fsw.Close() //nolint:errcheck
		return nil, err
	}

	return &Watcher{
		store:    store,
		onReload: onReload,
		watcher:  fsw,
	}, nil
}

// Run processes file events until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close() //nolint:errcheck

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != w.store.Path() {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if err := w.store.Load(); err != nil {
				logger.Warn("config reload failed: %v", err)
				continue
			}
			logger.Debug("config reloaded from %s", w.store.Path())
			if w.onReload != nil {
				w.onReload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher: %v", err)
		}
	}
}
