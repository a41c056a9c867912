// Package watcher provides debounced file-change notification, used for
// live preferences reload while the editor runs.
package watcher

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches files and fires a callback per change, debounced so a
// burst of writes from a single save collapses into one notification.
type Watcher struct {
	fs       *fsnotify.Watcher
	mu       sync.Mutex
	handlers map[string]func(string)
	debounce time.Duration
	timers   map[string]*time.Timer
	done     chan struct{}
}

// New creates a watcher with the given debounce window.
func New(debounce time.Duration) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	return &Watcher{
		fs:       fs,
		handlers: make(map[string]func(string)),
		debounce: debounce,
		timers:   make(map[string]*time.Timer),
		done:     make(chan struct{}),
	}, nil
}

// Watch registers files with a shared change handler. Paths are resolved
// to absolute form before registration.
func (w *Watcher) Watch(files []string, handler func(string)) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}
		if err := w.fs.Add(abs); err != nil {
			return fmt.Errorf("failed to watch %s: %w", abs, err)
		}
		w.handlers[abs] = handler
	}
	return nil
}

// Start runs the event loop in a goroutine until Close.
func (w *Watcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-w.fs.Events:
				if !ok {
					return
				}
				if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
					w.changed(event.Name)
				}
			case err, ok := <-w.fs.Errors:
				if !ok {
					return
				}
				log.Printf("watcher: %v", err)
			case <-w.done:
				return
			}
		}
	}()
}

// changed schedules the debounced handler for one file.
func (w *Watcher) changed(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	handler, ok := w.handlers[path]
	if !ok {
		return
	}
	if timer, ok := w.timers[path]; ok {
		timer.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		handler(path)
	})
}

// Close stops the event loop and releases the underlying watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}
