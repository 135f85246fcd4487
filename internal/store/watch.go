package store

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces the burst of events a single save produces.
const watchDebounce = 200 * time.Millisecond

// Watcher reports writes to a store's backing files so other processes'
// changes can be picked up.
type Watcher struct {
	watcher  *fsnotify.Watcher
	match    func(name string) bool
	onChange func()

	mu    sync.Mutex
	timer *time.Timer
}

// Watch starts watching the files behind backend at path. onChange runs on
// its own goroutine after each debounced burst of changes.
func Watch(backend Backend, path string, onChange func()) (*Watcher, error) {
	var dir string
	var match func(string) bool

	switch backend {
	case BackendSQLite, "":
		dir = filepath.Dir(path)
		base := filepath.Base(path)
		// The database plus its -wal and -journal siblings.
		match = func(name string) bool { return strings.HasPrefix(filepath.Base(name), base) }
	case BackendFile:
		dir = path
		keyFile := url.PathEscape(Key) + ".json"
		match = func(name string) bool { return filepath.Base(name) == keyFile }
	default:
		return nil, fmt.Errorf("store backend %q cannot be watched", backend)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	return &Watcher{watcher: fw, match: match, onChange: onChange}, nil
}

// Start delivers events until Stop is called. It blocks.
func (w *Watcher) Start() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
		return
	}
	if !w.match(event.Name) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(watchDebounce, w.onChange)
}

// Stop ends watching. A pending notification may still fire.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}
