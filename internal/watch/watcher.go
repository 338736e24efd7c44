// Package watch reports changes to individual files using
// github.com/fsnotify/fsnotify.
//
// The parent directory is watched rather than the file itself, so editors
// that save by writing a temp file and renaming it over the original keep
// triggering callbacks. Bursts of events for one file are collapsed into a
// single callback fired once the file has been quiet for the debounce interval.
package watch

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period used by New.
const DefaultDebounce = 100 * time.Millisecond

// ErrStopped is returned by Watch after Stop.
var ErrStopped = errors.New("watch: watcher stopped")

// Watcher calls back when watched files change.
type Watcher struct {
	fw       *fsnotify.Watcher
	log      *slog.Logger
	debounce time.Duration

	mu       sync.Mutex
	handlers map[string]func(string) // absolute file path -> callback
	dirs     map[string]bool
	stopped  bool

	timers map[string]*time.Timer // owned by loop
	fire   chan string
	done   chan struct{}
	wg     sync.WaitGroup
}

// New creates a watcher with DefaultDebounce.
func New(logger *slog.Logger) (*Watcher, error) {
	return NewWithDebounce(logger, DefaultDebounce)
}

// NewWithDebounce creates a watcher that waits d after the last event for a
// file before calling its callback.
func NewWithDebounce(logger *slog.Logger, d time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create watcher: %w", err)
	}
	w := &Watcher{
		fw:       fw,
		log:      logger.With("component", "watch"),
		debounce: d,
		handlers: make(map[string]func(string)),
		dirs:     make(map[string]bool),
		timers:   make(map[string]*time.Timer),
		fire:     make(chan string),
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Watch registers onChange for path, replacing any earlier callback for it.
// Callbacks receive the absolute path and run one at a time on the
// watcher's goroutine, so a slow callback delays later notifications.
func (w *Watcher) Watch(path string, onChange func(path string)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch: resolve %s: %w", path, err)
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return ErrStopped
	}
	if !w.dirs[dir] {
		if err := w.fw.Add(dir); err != nil {
			return fmt.Errorf("watch: add %s: %w", dir, err)
		}
		w.dirs[dir] = true
	}
	w.handlers[abs] = onChange
	return nil
}

// Stop ends monitoring and releases all resources. No callback runs after
// Stop returns. Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	close(w.done)
	w.mu.Unlock()

	err := w.fw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	defer func() {
		for _, t := range w.timers {
			t.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				w.schedule(filepath.Clean(event.Name))
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", slog.String("error", err.Error()))

		case path := <-w.fire:
			delete(w.timers, path)
			if fn := w.handler(path); fn != nil {
				fn(path)
			}

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) handler(path string) func(string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.handlers[path]
}

// schedule (re)arms the debounce timer for path if it has a handler.
func (w *Watcher) schedule(path string) {
	if w.handler(path) == nil {
		return
	}
	if t, ok := w.timers[path]; ok {
		t.Reset(w.debounce)
		return
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		select {
		case w.fire <- path:
		case <-w.done:
		}
	})
}
