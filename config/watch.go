package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/automoto/rockclimber/climb"
	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// TuningUpdate is one reload result delivered by a TuningWatcher.
type TuningUpdate struct {
	Tuning climb.Tuning
	Err    error
}

// TuningWatcher reloads a tuning file whenever it changes on disk. Updates
// arrive on a buffered channel so the frame loop can poll without blocking.
type TuningWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	base    climb.Tuning
	Updates chan TuningUpdate
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// WatchTuning watches the directory holding path; editors often replace
// files rather than write them in place.
func WatchTuning(path string, base climb.Tuning) (*TuningWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	tw := &TuningWatcher{
		watcher: w,
		path:    abs,
		base:    base,
		Updates: make(chan TuningUpdate, 4),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

func (w *TuningWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

// run reloads once the file has been quiet for reloadDebounce, so a
// truncate-then-write lands as one update carrying the final content.
func (w *TuningWatcher) run() {
	defer close(w.done)
	defer close(w.Updates)

	quiet := time.NewTimer(reloadDebounce)
	quiet.Stop()
	defer quiet.Stop()

	var pending <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if name, err := filepath.Abs(event.Name); err != nil || name != w.path {
				continue
			}
			quiet.Reset(reloadDebounce)
			pending = quiet.C
		case <-pending:
			pending = nil
			t, err := LoadTuning(w.path, w.base)
			w.send(TuningUpdate{Tuning: t, Err: err})
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(TuningUpdate{Tuning: w.base, Err: err})
		case <-w.closeCh:
			return
		}
	}
}

func (w *TuningWatcher) send(u TuningUpdate) {
	select {
	case w.Updates <- u:
	case <-w.closeCh:
	}
}
