package browser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// DefaultDebounce groups bursts of filesystem events into one refresh
const DefaultDebounce = 500 * time.Millisecond

// Watcher calls onChange when files below the watched directory change
type Watcher struct {
	watcher  *fsnotify.Watcher
	onChange func()
	debounce time.Duration
	log      log.FieldLogger

	mu      sync.Mutex
	timer   *time.Timer
	watched []string
	closed  bool

	done chan struct{}
}

// NewWatcher starts a watcher. Nothing is watched until Watch is called.
func NewWatcher(onChange func(), debounce time.Duration, logger log.FieldLogger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		watcher:  fw,
		onChange: onChange,
		debounce: debounce,
		log:      logger,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Watch replaces the watched tree with dir and its subdirectories
func (w *Watcher) Watch(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, d := range w.watched {
		_ = w.watcher.Remove(d)
	}
	w.watched = nil

	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("watch directory %s: %w", path, err)
		}
		w.watched = append(w.watched, path)
		return nil
	})
}

// Close stops the watcher and any pending refresh
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if !errors.Is(err, fsnotify.ErrEventOverflow) {
				w.log.WithError(err).Warn("file watcher error")
			}
			w.schedule()
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	if event.Has(fsnotify.Create) && isDir(event.Name) {
		w.mu.Lock()
		if !w.closed {
			if err := w.watcher.Add(event.Name); err == nil {
				w.watched = append(w.watched, event.Name)
			}
		}
		w.mu.Unlock()
	}

	w.log.WithFields(log.Fields{"path": event.Name, "op": event.Op.String()}).Debug("file changed")
	w.schedule()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// schedule debounces onChange: every event restarts the timer
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.onChange)
}
