// Package watcher reports drawings dropped into a directory.
// The watch command uses it to rename every new drawing automatically.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/prelayn/prelayn/internal/core/domain"
	"github.com/prelayn/prelayn/internal/logger"
)

// settleDelay is how long a file must stay quiet before it is reported.
// Copying a drawing into the folder produces a create followed by a
// burst of writes; we want the path once, after the copy finishes.
const settleDelay = 500 * time.Millisecond

// Watcher reports new drawing files appearing in a directory.
type Watcher struct {
	dir string
	fsw *fsnotify.Watcher

	mu      sync.Mutex
	pending map[string]*time.Timer
}

// New creates a watcher for the given directory.
func New(dir string) (*Watcher, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("watch directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch path %s is not a directory", dir)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	return &Watcher{
		dir:     dir,
		fsw:     fsw,
		pending: make(map[string]*time.Timer),
	}, nil
}

// Run delivers the paths of new drawings to handler until the context
// is cancelled. Each drawing is reported once, after its writes settle.
func (w *Watcher) Run(ctx context.Context, handler func(path string)) error {
	logger.Info("watching %s for drawings", w.dir)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			path := w.handleFsEvent(event)
			if path == "" {
				continue
			}
			w.schedule(path, handler)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// Close stops the watcher and any pending deliveries.
func (w *Watcher) Close() error {
	w.mu.Lock()
	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}
	w.mu.Unlock()
	return w.fsw.Close()
}

// handleFsEvent filters an event down to a drawing path, or "" to skip.
func (w *Watcher) handleFsEvent(event fsnotify.Event) string {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
		return ""
	}
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return ""
	}
	if domain.FormatOf(event.Name) == domain.FormatUnknown {
		return ""
	}
	if info, err := os.Stat(event.Name); err != nil || info.IsDir() {
		return ""
	}
	return event.Name
}

// schedule arms (or re-arms) the settle timer for a path.
func (w *Watcher) schedule(path string, handler func(path string)) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.pending[path]; ok {
		timer.Reset(settleDelay)
		return
	}
	w.pending[path] = time.AfterFunc(settleDelay, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()
		handler(path)
	})
}
