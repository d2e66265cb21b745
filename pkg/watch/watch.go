// Package watch emits Reload messages when watched files change, powering
// hot reload during development.
//
// This is the one deliberately soft edge of the system: if the watcher
// cannot be created or a path does not exist, the feature logs a warning
// and disables itself instead of failing the program. Everything inside the
// core fails loud; losing live reload is the only degradation worth
// tolerating.
package watch

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"gitlab.com/tinyland/lab/weft/pkg/message"
)

// Sink is where reload notifications go; the runtime's Enqueue satisfies it.
type Sink interface {
	Enqueue(msg message.Message)
}

// Watcher debounces filesystem events on a set of paths into Reload
// messages. Change bursts (editors write, rename, and chmod in quick
// succession) collapse into a single message per quiet period.
type Watcher struct {
	paths    []string
	debounce time.Duration
	sink     Sink
	log      *zap.Logger

	mu sync.Mutex
	fs *fsnotify.Watcher
}

// New creates a watcher over paths. A zero debounce defaults to 100ms.
// A nil logger is replaced by a no-op one.
func New(paths []string, debounce time.Duration, sink Sink, log *zap.Logger) *Watcher {
	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{
		paths:    paths,
		debounce: debounce,
		sink:     sink,
		log:      log,
	}
}

// Start begins watching. It never returns an error: any failure to set up
// disables the watcher with a logged warning and the program carries on
// without live reload.
func (w *Watcher) Start(ctx context.Context) {
	if len(w.paths) == 0 {
		return
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		w.log.Warn("file watcher unavailable, live reload disabled", zap.Error(err))
		return
	}

	added := 0
	for _, p := range w.paths {
		if _, err := os.Stat(p); err != nil {
			w.log.Warn("watch path missing, skipping", zap.String("path", p), zap.Error(err))
			continue
		}
		if err := fs.Add(p); err != nil {
			w.log.Warn("cannot watch path, skipping", zap.String("path", p), zap.Error(err))
			continue
		}
		added++
	}
	if added == 0 {
		w.log.Warn("no watchable paths, live reload disabled")
		fs.Close()
		return
	}

	w.mu.Lock()
	w.fs = fs
	w.mu.Unlock()
	go w.loop(ctx, fs)
}

// Stop closes the underlying watcher. Safe when Start failed or never ran.
// Closing unblocks the loop goroutine through its channel closes.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fs != nil {
		w.fs.Close()
		w.fs = nil
	}
}

// loop collects events and emits one Reload per quiet period. It holds its
// own reference to the fsnotify watcher so Stop can clear w.fs without
// racing the select below.
func (w *Watcher) loop(ctx context.Context, fs *fsnotify.Watcher) {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-fs.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.log.Debug("file event", zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case err, ok := <-fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("file watcher error", zap.Error(err))

		case <-fire:
			timer = nil
			fire = nil
			w.sink.Enqueue(message.Reload{})
		}
	}
}
