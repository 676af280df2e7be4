// Package fsnotify implements the ports.Watcher interface using github.com/fsnotify/fsnotify.
// It watches the directories holding local dictionary files, filters events down
// to those files, and debounces bursts (editors often write several times per
// save, or replace the file through a rename).
package fsnotify

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jladdjr/typey-type/internal/ports"
)

// DebounceInterval is how long a file must stay quiet before onChange fires.
const DebounceInterval = 100 * time.Millisecond

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fw      *fsnotify.Watcher
	done    chan struct{}
	stopped bool
	mu      sync.Mutex

	timers map[string]*time.Timer
	tmu    sync.Mutex
}

var _ ports.Watcher = (*Watcher)(nil)

// NewWatcher creates a new file system watcher.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fw:     fw,
		done:   make(chan struct{}),
		timers: make(map[string]*time.Timer),
	}, nil
}

// Watch starts monitoring the given files.
// onChange is called with the absolute path of a file once it settles after
// a write, create, remove or rename.
func (w *Watcher) Watch(paths []string, onChange func(filePath string)) error {
	files := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.fw.Add(dir); err != nil {
			return err
		}
	}

	go func() {
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				path := filepath.Clean(event.Name)
				if !files[path] {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
					event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					w.schedule(path, onChange)
				}

			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				// Errors are swallowed; fsnotify recovers automatically

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// schedule (re)arms the per-file debounce timer. A timer that already
// fired is replaced rather than reset, so each quiet period fires once.
func (w *Watcher) schedule(path string, onChange func(string)) {
	w.tmu.Lock()
	defer w.tmu.Unlock()

	if t, ok := w.timers[path]; ok && t.Stop() {
		t.Reset(DebounceInterval)
		return
	}
	var t *time.Timer
	t = time.AfterFunc(DebounceInterval, func() {
		w.tmu.Lock()
		if w.timers[path] != t {
			w.tmu.Unlock()
			return
		}
		delete(w.timers, path)
		w.tmu.Unlock()

		select {
		case <-w.done:
			return
		default:
		}
		onChange(path)
	})
	w.timers[path] = t
}

// Stop ends monitoring and releases all resources.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)

	w.tmu.Lock()
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
	w.tmu.Unlock()

	return w.fw.Close()
}
