// Package watch re-runs a callback when a config file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"boardpos/internal/logging"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a single file. The parent directory is watched rather than
// the file itself: editors that save by renaming a temp file over the
// watched path would drop a file-level watch.
type Watcher struct {
	mu        sync.Mutex
	closeOnce sync.Once
	closeErr  error
	watcher   *fsnotify.Watcher
	path      string
	dir       string
	debounce  time.Duration
	onChange  func(context.Context) error

	stats Stats
}

// Stats tracks watcher activity.
type Stats struct {
	Events        int
	Regenerations int
	Errors        int
	LastEventTime time.Time
	LastEventType string
	LastError     error
}

// New creates a Watcher for path. onChange runs once per debounced burst of
// events; its errors are logged and counted, never fatal.
func New(path string, debounce time.Duration, onChange func(context.Context) error) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		watcher:  fsw,
		path:     abs,
		dir:      filepath.Dir(abs),
		debounce: debounce,
		onChange: onChange,
	}, nil
}

// Stats returns a snapshot of the watcher counters.
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

// Close releases the fsnotify watcher. Run calls it on return; a Watcher
// that is never run must be closed by its owner. Close is idempotent.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		w.closeErr = w.watcher.Close()
	})
	return w.closeErr
}

// Run blocks until ctx is done. The Watcher is closed on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.Close()

	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	logging.Watch("watching %s", w.path)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			logging.WatchDebug("watcher stopped: %v", ctx.Err())
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.handleEvent(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logging.Get(logging.CategoryWatch).Errorw("watcher error", "error", err)
			w.recordError(err)

		case <-fire:
			fire = nil
			w.regenerate(ctx)
		}
	}
}

// handleEvent records event and reports whether it concerns the watched file.
func (w *Watcher) handleEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}

	var eventType string
	switch {
	case event.Op&fsnotify.Create != 0:
		eventType = "create"
	case event.Op&fsnotify.Write != 0:
		eventType = "modify"
	case event.Op&fsnotify.Rename != 0:
		eventType = "rename"
	case event.Op&fsnotify.Remove != 0:
		eventType = "delete"
	default:
		return false
	}

	logging.WatchDebug("%s event for %s", eventType, event.Name)

	w.mu.Lock()
	w.stats.Events++
	w.stats.LastEventTime = time.Now()
	w.stats.LastEventType = eventType
	w.mu.Unlock()

	// Delete and rename come before the replacement's create event.
	return eventType != "delete" && eventType != "rename"
}

func (w *Watcher) regenerate(ctx context.Context) {
	if err := w.onChange(ctx); err != nil {
		logging.Get(logging.CategoryWatch).Errorw("regeneration failed", "path", w.path, "error", err)
		w.recordError(err)
		return
	}
	w.mu.Lock()
	w.stats.Regenerations++
	w.mu.Unlock()
	logging.Watch("regenerated after change to %s", filepath.Base(w.path))
}

func (w *Watcher) recordError(err error) {
	w.mu.Lock()
	w.stats.Errors++
	w.stats.LastError = err
	w.mu.Unlock()
}
