// Package watch invalidates the disk index cache when the configured
// pictures root changes on disk, so long-running hosts pick up new files
// without a restart.
package watch

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"pinacoteca/internal/application"
)

// Watcher observes the pictures root and drops the cached disk index on
// create, remove and rename events. The cache contract is unchanged: the
// rebuild itself still happens lazily on the next Get.
type Watcher struct {
	fw     *fsnotify.Watcher
	cache  *application.DiskCache
	closed chan struct{}

	// onInvalidate runs after each cache invalidation. Set before the
	// event loop starts so the loop goroutine reads it race-free.
	onInvalidate func()
}

// New starts watching root. onInvalidate, when non-nil, is called after
// each cache invalidation; the TUI uses it to trigger a reload. The caller
// must Close the watcher.
func New(root string, cache *application.DiskCache, onInvalidate func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := fw.Add(root); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch pictures root: %w", err)
	}

	w := &Watcher{fw: fw, cache: cache, closed: make(chan struct{}), onInvalidate: onInvalidate}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.closed:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.cache.Invalidate()
			if w.onInvalidate != nil {
				w.onInvalidate()
			}
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the cache still rebuilds on
			// root changes.
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.closed)
	return w.fw.Close()
}
