package deck

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce collapses editor write bursts into one reload
const DefaultDebounce = 150 * time.Millisecond

// ReloadFunc receives the freshly parsed deck or the error that prevented it
type ReloadFunc func(*Deck, error)

// Watcher reloads a deck file whenever it changes on disk
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *zap.Logger
	fw       *fsnotify.Watcher

	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

// NewWatcher watches the directory holding path so that editors that
// replace files by rename are still picked up
func NewWatcher(path string, debounce time.Duration, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve deck path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		debounce: debounce,
		logger:   logger,
		fw:       fw,
	}, nil
}

// Path returns the absolute path being watched
func (w *Watcher) Path() string {
	return w.path
}

// Start begins delivering reloads to fn until ctx is done or Close is called
func (w *Watcher) Start(ctx context.Context, fn ReloadFunc) {
	ctx, w.cancel = context.WithCancel(ctx)
	w.wg.Add(1)
	go w.loop(ctx, fn)
}

// Close stops the watcher and waits for its goroutine to exit
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		if w.cancel != nil {
			w.cancel()
		}
		w.wg.Wait()
		err = w.fw.Close()
	})
	return err
}

func (w *Watcher) loop(ctx context.Context, fn ReloadFunc) {
	defer w.wg.Done()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("deck file changed", zap.String("path", w.path), zap.String("op", event.Op.String()))
			timer.Reset(w.debounce)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("deck watcher error", zap.Error(err))

		case <-timer.C:
			d, err := Load(w.path)
			if err != nil {
				w.logger.Warn("deck reload failed", zap.String("path", w.path), zap.Error(err))
			} else {
				w.logger.Info("deck reloaded", zap.String("path", w.path), zap.Int("slides", len(d.Slides)))
			}
			fn(d, err)
		}
	}
}
