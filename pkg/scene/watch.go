package scene

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a scene file whenever it changes on disk.
//
// The file's directory is watched rather than the file itself so that
// editors which save by renaming a temporary file are still seen.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	logger  *slog.Logger
	updates chan Snapshot
}

// NewWatcher starts watching path. Call Run to begin delivering snapshots.
func NewWatcher(path string, logger *slog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		path:    abs,
		watcher: fw,
		logger:  logger,
		updates: make(chan Snapshot, 1),
	}, nil
}

// Updates delivers a snapshot after every successful reload. The channel is
// closed when Run returns.
func (w *Watcher) Updates() <-chan Snapshot {
	return w.updates
}

// Run processes file events until ctx is done. Files that fail to parse are
// logged and skipped.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.updates)
	defer w.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			snap, err := Load(w.path)
			if err != nil {
				w.logger.Error("reload scene", "path", w.path, "err", err)
				continue
			}
			w.logger.Debug("scene reloaded", "path", w.path, "items", len(snap.Items))
			select {
			case w.updates <- snap:
			case <-ctx.Done():
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch scene", "path", w.path, "err", err)
		}
	}
}
