package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports reloaded tuning files. Reloads are parsed on the watcher
// goroutine and handed over on Reloads; the game applies them between frames.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Reloads chan Tuning
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// Watch starts watching the directory containing path. Only events for path
// itself are reported. Every reload is decoded on top of base, so removing a
// key from the file restores its default.
func Watch(path string, base Tuning) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}

	// Watch the directory: editors often replace the file instead of writing it.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		path:    abs,
		Reloads: make(chan Tuning, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	watcher.wg.Add(1)
	go watcher.run(base)
	return watcher, nil
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		w.wg.Wait()
		close(w.Reloads)
		close(w.Errors)
	})
	return err
}

// Poll returns the most recent reload, if any, without blocking.
func (w *Watcher) Poll() (Tuning, bool) {
	select {
	case t, ok := <-w.Reloads:
		return t, ok
	default:
		return Tuning{}, false
	}
}

// reloadDelay is how long the file must stay quiet before it is read.
const reloadDelay = 100 * time.Millisecond

func (w *Watcher) run(base Tuning) {
	defer w.wg.Done()

	// Editors save in several steps (truncate then write, or rename then
	// create); the file is read once the events stop.
	timer := time.NewTimer(reloadDelay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			timer.Reset(reloadDelay)
		case <-timer.C:
			w.reload(base)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendErr(err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload(base Tuning) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		w.sendErr(fmt.Errorf("config: read %s: %w", w.path, err))
		return
	}
	t, err := Parse(data, base)
	if err != nil {
		w.sendErr(err)
		return
	}
	w.send(t)
}

// send replaces any unread reload so the game always sees the newest file.
func (w *Watcher) send(t Tuning) {
	select {
	case <-w.Reloads:
	default:
	}
	select {
	case w.Reloads <- t:
	case <-w.closeCh:
	}
}

func (w *Watcher) sendErr(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}

// PollError returns a pending watch or parse error, if any, without blocking.
func (w *Watcher) PollError() error {
	select {
	case err := <-w.Errors:
		return err
	default:
		return nil
	}
}
