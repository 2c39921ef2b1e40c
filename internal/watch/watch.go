// Package watch reruns opticgen when its input files change.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDelay is how long a burst of events has to settle before the
// callback runs.
const DefaultDelay = 100 * time.Millisecond

// Watcher calls onChange with the changed files after they are written.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	delay    time.Duration
	onChange func([]string) error
	logger   *zap.Logger
}

// New creates a Watcher for files. Directories are watched rather than the files
// themselves so that editors saving through a rename are still seen.
func New(files []string, delay time.Duration, onChange func([]string) error, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		watcher:  watcher,
		files:    make(map[string]bool),
		delay:    delay,
		onChange: onChange,
		logger:   logger,
	}

	var dirs []string
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to resolve %s: %w", f, err)
		}
		w.files[abs] = true
		if dir := filepath.Dir(abs); !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
		logger.Debug("watching directory", zap.String("dir", dir))
	}
	return w, nil
}

// Run handles events until ctx is done. Errors from onChange are logged and do
// not stop the loop.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	pending := make(map[string]bool)
	var settle <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !w.files[name] {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pending[name] = true
				settle = time.After(w.delay)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))

		case <-settle:
			settle = nil
			changed := make([]string, 0, len(pending))
			for name := range pending {
				changed = append(changed, name)
			}
			clear(pending)
			slices.Sort(changed)

			w.logger.Debug("files changed", zap.Strings("files", changed))
			if err := w.onChange(changed); err != nil {
				w.logger.Error("regeneration failed", zap.Error(err))
			}
		}
	}
}
