package config

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/prowl-browser/prowl/internal/logging"
	"go.uber.org/zap"
)

// Watcher observes a configuration file on disk and emits a tick on Changes
// after each write, debounced so editor save storms collapse into one
// reload. The consumer decides when to call Config.Load; the reload itself
// stays all-or-nothing.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	changes  chan struct{}
	debounce time.Duration
	log      *logging.Logger
	stop     chan struct{}
	done     chan struct{}
}

// NewWatcher watches the directory containing path. Watching the directory
// rather than the file survives the rename-and-replace write pattern most
// editors use.
func NewWatcher(path string, log *logging.Logger) (*Watcher, error) {
	if log == nil {
		log = logging.NewNop()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     path,
		watcher:  fsw,
		changes:  make(chan struct{}, 1),
		debounce: 250 * time.Millisecond,
		log:      log,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Changes delivers one tick per settled burst of writes to the watched file.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	close(w.stop)
	<-w.done
	return w.watcher.Close()
}

func (w *Watcher) run() {
	defer close(w.done)

	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C
		case <-pending:
			pending = nil
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("config watcher error", zap.Error(err))
		case <-w.stop:
			return
		}
	}
}
