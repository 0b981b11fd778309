package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a single file. The parent directory is
// watched so editors that replace the file by renaming are handled.
type Watcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	onChange func()
	mtime    time.Time
	path     string
	stopped  bool
}

func NewWatcher(path string, onChange func()) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		onChange: onChange,
	}
}

// Start blocks until Stop is called or the underlying watcher fails. It
// returns immediately when Stop was already called.
func (me *Watcher) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	if err := watcher.Add(filepath.Dir(me.path)); err != nil {
		watcher.Close()
		return err
	}

	me.mu.Lock()
	if me.stopped {
		me.mu.Unlock()
		watcher.Close()
		return nil
	}

	me.watcher = watcher
	if fileinfo, err := os.Stat(me.path); err == nil {
		me.mtime = fileinfo.ModTime()
	}
	me.mu.Unlock()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != me.path {
				continue
			}

			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}

			if !me.changed() {
				continue
			}

			me.onChange()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			if err != nil {
				return fmt.Errorf("watching %s: %w", me.path, err)
			}
		}
	}
}

// changed records the current mtime and reports whether it moved. Removal
// always counts as a change.
func (me *Watcher) changed() bool {
	me.mu.Lock()
	defer me.mu.Unlock()

	fileinfo, err := os.Stat(me.path)
	if err != nil {
		if me.mtime.IsZero() {
			return false
		}

		me.mtime = time.Time{}
		return true
	}

	if fileinfo.ModTime().Equal(me.mtime) {
		return false
	}

	me.mtime = fileinfo.ModTime()
	return true
}

func (me *Watcher) Stop() {
	me.mu.Lock()
	defer me.mu.Unlock()

	me.stopped = true
	if me.watcher == nil {
		return
	}

	me.watcher.Close()
	me.watcher = nil
}
