package config

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned when watching after Close.
var ErrWatcherClosed = errors.New("watcher closed")

// Update is the result of reloading the watched file.
type Update struct {
	Config *Config
	Err    error
}

// Watcher reloads a config file whenever it changes on disk.
//
// The directory holding the file is watched rather than the file itself,
// so editors that save by renaming a new file into place are noticed.
type Watcher struct {
	path   string
	loader *Loader

	fsw      *fsnotify.Watcher
	updates  chan Update
	notify   func()
	debounce time.Duration

	mu      sync.Mutex
	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithNotify calls fn after each update is queued, e.g. to wake an
// event loop blocked on input.
func WithNotify(fn func()) WatcherOption {
	return func(w *Watcher) {
		w.notify = fn
	}
}

// WithDebounce sets how long the file must stay quiet before a reload.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// NewWatcher starts watching path, reloading it through loader.
func NewWatcher(path string, loader *Loader, opts ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		loader:   loader,
		fsw:      fsw,
		updates:  make(chan Update, 1),
		debounce: 100 * time.Millisecond,
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.processLoop()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Updates delivers reload results. Only the latest pending update is
// kept; an unread older one is replaced.
func (w *Watcher) Updates() <-chan Update {
	return w.updates
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

// processLoop handles incoming fsnotify events.
func (w *Watcher) processLoop() {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.send(Update{Err: err})

		case <-fire:
			fire = nil
			cfg, err := w.loader.Load(w.path)
			w.send(Update{Config: cfg, Err: err})
		}
	}
}

// relevant reports whether ev may have changed the watched file.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

// send queues u, dropping an unread older update.
func (w *Watcher) send(u Update) {
	for {
		select {
		case w.updates <- u:
			if w.notify != nil {
				w.notify()
			}
			return
		default:
		}
		select {
		case <-w.updates:
		default:
		}
	}
}
