package record

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherFailed indicates the filesystem watcher failed to initialize.
var ErrWatcherFailed = errors.New("failed to initialize filesystem watcher")

// Watcher signals when the data file changes on disk so a long-lived UI can
// reload instead of rendering stale state. The parent directory is watched
// rather than the file itself: editors and full-overwrite saves replace the
// inode, which would silently detach a file-level watch.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	changes chan struct{}
	stop    chan struct{}
}

// NewWatcher creates a watcher for the data file at path.
func NewWatcher(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWatcherFailed, err)
	}
	return &Watcher{
		path:    path,
		watcher: w,
		changes: make(chan struct{}, 1),
		stop:    make(chan struct{}),
	}, nil
}

// Start begins watching the data file's directory. Change signals are
// delivered on Changes() until Stop is called or ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and cleans up resources.
func (w *Watcher) Stop() {
	select {
	case <-w.stop:
		// Already stopped
	default:
		close(w.stop)
		_ = w.watcher.Close() // Best-effort cleanup, ignore error
	}
}

// Changes returns the channel receiving data file change signals.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

func (w *Watcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-w.stop:
			return
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// Coalescing send: one pending signal is enough.
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
