package app

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// docWatcher reports edits to the document file. It watches the parent
// directory so editors that replace the file on save are still seen.
type docWatcher struct {
	watcher *fsnotify.Watcher

	path string
	dir  string

	onChanged func()
	debounce  time.Duration

	mu        sync.Mutex
	timer     *time.Timer
	closed    bool
	closeOnce sync.Once
}

func newDocWatcher(path string, onChanged func()) (*docWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dw := &docWatcher{
		watcher:   watcher,
		path:      filepath.Clean(path),
		onChanged: onChanged,
		debounce:  watcherDebounce,
	}
	dw.dir = filepath.Dir(dw.path)
	if err := watcher.Add(dw.dir); err != nil {
		_ = watcher.Close()
		return nil, err
	}
	return dw, nil
}

// Run forwards matching events until ctx is done or the watcher closes.
func (dw *docWatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-dw.watcher.Events:
			if !ok {
				return nil
			}
			if dw.isDocumentEvent(event) {
				dw.scheduleNotify()
			}
		case err, ok := <-dw.watcher.Errors:
			if !ok {
				return nil
			}
			if err != nil {
				return err
			}
		}
	}
}

func (dw *docWatcher) Close() error {
	var err error
	dw.closeOnce.Do(func() {
		dw.mu.Lock()
		dw.closed = true
		if dw.timer != nil {
			dw.timer.Stop()
			dw.timer = nil
		}
		dw.mu.Unlock()
		err = dw.watcher.Close()
	})
	return err
}

func (dw *docWatcher) isDocumentEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != dw.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

func (dw *docWatcher) scheduleNotify() {
	if dw.onChanged == nil {
		return
	}
	dw.mu.Lock()
	defer dw.mu.Unlock()
	if dw.closed {
		return
	}
	if dw.timer == nil {
		dw.timer = time.AfterFunc(dw.debounce, dw.fire)
	} else {
		dw.timer.Reset(dw.debounce)
	}
}

func (dw *docWatcher) fire() {
	dw.mu.Lock()
	if dw.closed {
		dw.mu.Unlock()
		return
	}
	dw.timer = nil
	dw.mu.Unlock()
	dw.onChanged()
}
