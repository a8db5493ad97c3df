package server

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"docket/internal/log"
)

// DefaultDebounce is how long the watcher waits after the last change before reloading.
const DefaultDebounce = 500 * time.Millisecond

// ProfileWatcher reloads court profiles when YAML files in a directory change.
type ProfileWatcher struct {
	dir      string
	reload   func() error
	debounce time.Duration
	logger   zerolog.Logger
	done     chan struct{}
}

// NewProfileWatcher watches dir and calls reload after changes settle.
func NewProfileWatcher(dir string, reload func() error, debounce time.Duration) *ProfileWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &ProfileWatcher{
		dir:      dir,
		reload:   reload,
		debounce: debounce,
		logger:   log.WithComponent("watcher"),
		done:     make(chan struct{}),
	}
}

// Start begins watching. The watch loop stops when ctx is cancelled; Done
// is closed once it has.
func (w *ProfileWatcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(w.dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.logger.Info().Str("dir", w.dir).Msg("watching court profiles")
	go w.loop(ctx, watcher)
	return nil
}

// Done is closed when the watch loop has exited.
func (w *ProfileWatcher) Done() <-chan struct{} { return w.done }

func (w *ProfileWatcher) loop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer close(w.done)
	defer watcher.Close()

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !isProfileFile(event.Name) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("profile changed")
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				if ctx.Err() != nil {
					return
				}
				if err := w.reload(); err != nil {
					w.logger.Error().Err(err).Msg("court profile reload failed; keeping previous profiles")
					return
				}
				w.logger.Info().Msg("court profiles reloaded")
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error().Err(err).Msg("watcher error")
		}
	}
}

func isProfileFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
