// SPDX-License-Identifier: Unlicense OR MIT

package triangle

import (
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher signals changes to a set of shader files.
type Watcher struct {
	w     *fsnotify.Watcher
	files map[string]bool
	log   *slog.Logger

	// Changed receives a value after one or more of the files changed.
	Changed chan struct{}
	done    chan struct{}
}

// WatchShaders watches the directories of paths, since editors often
// replace a file rather than write to it.
func WatchShaders(paths []string, log *slog.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	sw := &Watcher{
		w:       w,
		files:   make(map[string]bool),
		log:     log,
		Changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			w.Close()
			return nil, err
		}
		sw.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, err
		}
	}
	go sw.run()
	return sw, nil
}

func (sw *Watcher) run() {
	defer close(sw.done)
	for {
		select {
		case ev, ok := <-sw.w.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name, err := filepath.Abs(ev.Name)
			if err != nil || !sw.files[name] {
				continue
			}
			sw.log.Debug("shader changed", "file", name, "op", ev.Op.String())
			select {
			case sw.Changed <- struct{}{}:
			default:
			}
		case err, ok := <-sw.w.Errors:
			if !ok {
				return
			}
			sw.log.Warn("shader watcher", "err", err)
		}
	}
}

func (sw *Watcher) Close() error {
	err := sw.w.Close()
	<-sw.done
	return err
}
