package dev

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/NayanVR/tuono/internal/errors"
)

// ChangeCallback is called with the paths that changed since the last
// debounce window elapsed.
type ChangeCallback func(paths []string)

// WatcherConfig configures the route file watcher.
type WatcherConfig struct {
	// Root is the directory to watch, recursively.
	Root string

	// Ignore patterns to skip, matched against the base name.
	Ignore []string

	// Debounce is the quiet period before changes are reported.
	Debounce time.Duration
}

// DefaultIgnore contains default patterns to ignore.
var DefaultIgnore = []string{
	"*_test.go",
	".git",
	".tuono",
	"node_modules",
	"*.tmp",
	"*.swp",
	"*~",
}

// Watcher reports changes under a directory tree. It is built on
// fsnotify, which watches single directories, so every subdirectory is
// added explicitly and newly created ones are picked up from events.
type Watcher struct {
	config   WatcherConfig
	fsw      *fsnotify.Watcher
	callback ChangeCallback
	logger   *zap.Logger

	mu        sync.Mutex
	running   bool
	stopCh    chan struct{}
	stoppedCh chan struct{}
}

// WatcherOption is a functional option for configuring the watcher.
type WatcherOption func(*Watcher)

// WithLogger sets the logger for the watcher.
func WithLogger(logger *zap.Logger) WatcherOption {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// NewWatcher creates a watcher for the given root.
func NewWatcher(config WatcherConfig, opts ...WatcherOption) (*Watcher, error) {
	if config.Debounce == 0 {
		config.Debounce = 100 * time.Millisecond
	}
	if len(config.Ignore) == 0 {
		config.Ignore = DefaultIgnore
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.New("E120").Wrap(err)
	}

	w := &Watcher{
		config:    config,
		fsw:       fsw,
		logger:    zap.NewNop(),
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// OnChange sets the callback for file changes.
func (w *Watcher) OnChange(fn ChangeCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callback = fn
}

// Start registers the directory tree and begins watching. It returns
// once the watch loop is running.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.addTree(w.config.Root); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return errors.New("E120").
			WithDetail("watching " + w.config.Root).
			Wrap(err)
	}

	w.logger.Info("watching for route changes",
		zap.String("root", w.config.Root),
		zap.Duration("debounce", w.config.Debounce),
	)

	go w.watch(ctx)

	return nil
}

// Stop stops the watcher and waits for the watch loop to exit.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.stoppedCh

	return w.fsw.Close()
}

// addTree adds root and every subdirectory to the fsnotify watcher.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if w.shouldIgnore(p) {
			return filepath.SkipDir
		}
		return w.fsw.Add(p)
	})
}

func (w *Watcher) watch(ctx context.Context) {
	defer close(w.stoppedCh)

	var (
		debounceTimer *time.Timer
		debounceCh    <-chan time.Time
		pending       []string
	)

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if w.shouldIgnore(event.Name) {
				continue
			}

			// New directories must be watched before files land in them.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						w.logger.Warn("failed to watch new directory",
							zap.String("path", event.Name),
							zap.Error(err),
						)
					}
					continue
				}
			}

			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			w.logger.Debug("file changed",
				zap.String("path", event.Name),
				zap.String("op", event.Op.String()),
			)

			pending = append(pending, event.Name)
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.NewTimer(w.config.Debounce)
			debounceCh = debounceTimer.C

		case <-debounceCh:
			debounceCh = nil

			w.mu.Lock()
			callback := w.callback
			w.mu.Unlock()

			if callback != nil && len(pending) > 0 {
				callback(dedupe(pending))
			}
			pending = nil

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", zap.Error(err))
		}
	}
}

// shouldIgnore checks the path's base name against the ignore patterns.
func (w *Watcher) shouldIgnore(fullPath string) bool {
	name := filepath.Base(fullPath)
	for _, pattern := range w.config.Ignore {
		if name == pattern {
			return true
		}
		if strings.ContainsAny(pattern, "*?[") {
			if matched, _ := filepath.Match(pattern, name); matched {
				return true
			}
		}
	}
	return false
}

func dedupe(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := paths[:0]
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
