package reload

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// defaultDebounce coalesces bursts of filesystem events (a build
// rewriting many files) into one reload signal.
const defaultDebounce = 300 * time.Millisecond

// Watcher observes a directory and signals the hub on changes.
type Watcher struct {
	fsw      *fsnotify.Watcher
	hub      *Hub
	logger   *zap.Logger
	debounce time.Duration

	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewWatcher starts watching dir. debounce <= 0 selects the default.
func NewWatcher(dir string, hub *Hub, logger *zap.Logger, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	w := &Watcher{
		fsw:      fsw,
		hub:      hub,
		logger:   logger,
		debounce: debounce,
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer w.wg.Done()

	var timer *time.Timer
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			// Chmod fires on reads and touches, never on content changes
			if event.Op&fsnotify.Chmod != 0 {
				continue
			}
			if timer != nil {
				timer.Reset(w.debounce)
			} else {
				timer = time.AfterFunc(w.debounce, func() {
					w.logger.Debug("Broadcasting reload")
					w.hub.Broadcast()
				})
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Watcher error", zap.Error(err))
		}
	}
}

// Close stops the watcher and waits for the event loop to exit.
// Idempotent.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}
