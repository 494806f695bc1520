package watcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/paulohenriquegf/garmin-statistics/internal/core/domain"
	"github.com/paulohenriquegf/garmin-statistics/internal/core/ports"
	"go.trai.ch/zerr"
)

// debounceWindow is how long the watcher waits for an event burst to settle
// before notifying.
const debounceWindow = 500 * time.Millisecond

// Watcher notifies a callback when an export path changes on disk.
type Watcher struct {
	logger ports.Logger
}

// NewWatcher creates a new Watcher.
func NewWatcher(logger ports.Logger) *Watcher {
	return &Watcher{logger: logger}
}

// Watch blocks until ctx is canceled, invoking onChange after each settled
// burst of events touching path. For a file path the containing directory is
// watched, since downloads replace the file rather than modify it in place.
// A directory export is watched directly and any entry under it counts.
func (w *Watcher) Watch(ctx context.Context, path string, onChange func()) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	defer func() { _ = fsw.Close() }()

	target := filepath.Clean(path)
	watchTarget := filepath.Dir(target)
	isDir := false
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		watchTarget = target
		isDir = true
	}

	if err := fsw.Add(watchTarget); err != nil {
		return zerr.With(
			zerr.Wrap(err, domain.ErrWatchFailed.Error()),
			"path", watchTarget,
		)
	}

	debouncer := NewDebouncer(debounceWindow, func(paths []string) {
		w.logger.Info("export changed, reloading")
		onChange()
	})
	defer debouncer.Flush()

	w.logger.Info("watching " + path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename) {
				continue
			}
			if !w.matches(target, isDir, event.Name) {
				continue
			}
			debouncer.Add(event.Name)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error(zerr.Wrap(err, "watch error"))
		}
	}
}

// matches reports whether an event name concerns the export. For a file
// export only the file itself matters, not siblings in its directory.
func (w *Watcher) matches(target string, isDir bool, name string) bool {
	name = filepath.Clean(name)
	if name == target {
		return true
	}
	return isDir && strings.HasPrefix(name, target+string(os.PathSeparator))
}
