// SPDX-License-Identifier: Unlicense OR MIT

package hotreload

import (
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a directory for a rebuilt dynamic library, reports
// each rebuild to the OnReload callback, and offers Dial to reach the
// configured host:port for handing the new build off. It never dials
// on its own. Both the directory's contents and the wire protocol
// spoken over the dial are unspecified by design (spec.md §6); this
// type only provides the plumbing a concrete embedding fills in via
// OnReload.
type Watcher struct {
	mu       sync.Mutex
	dir      string
	addr     string
	fsw      *fsnotify.Watcher
	onReload func(event string)
	done     chan struct{}
}

// NewWatcher returns an idle Watcher. Call SetDir and SetAddr (in
// either order) to configure it, then Start.
func NewWatcher() *Watcher {
	return &Watcher{}
}

// SetDir sets the directory to watch for filesystem events signaling a
// rebuilt artifact is ready. Safe to call before or after Start; a
// change while running restarts the underlying fsnotify watch.
func (w *Watcher) SetDir(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	old := w.dir
	w.dir = dir
	if w.fsw != nil {
		if old != "" && old != dir {
			_ = w.fsw.Remove(old)
		}
		return w.rewatchLocked()
	}
	return nil
}

// SetAddr sets the host:port Dial connects to.
func (w *Watcher) SetAddr(addr string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.addr = addr
}

// OnReload registers the callback invoked (with the triggering
// filesystem event's name) once a rebuild is observed. Only one
// callback is held at a time; a later call replaces the former.
func (w *Watcher) OnReload(fn func(event string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onReload = fn
}

// Start begins watching the configured directory in a background
// goroutine. Calling Start twice without an intervening Stop is a
// no-op.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fsw != nil {
		return nil
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("hotreload: %w", err)
	}
	w.fsw = fsw
	w.done = make(chan struct{})
	if err := w.rewatchLocked(); err != nil {
		return err
	}
	go w.run(fsw, w.done)
	return nil
}

func (w *Watcher) rewatchLocked() error {
	if w.dir == "" {
		return nil
	}
	return w.fsw.Add(w.dir)
}

func (w *Watcher) run(fsw *fsnotify.Watcher, done chan struct{}) {
	for {
		select {
		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.mu.Lock()
			cb := w.onReload
			w.mu.Unlock()
			if cb != nil {
				cb(ev.Name)
			}
		case <-fsw.Errors:
			// Surfacing watch errors isn't part of the public contract
			// (§6 keeps the whole mechanism opaque); drop and keep watching.
		case <-done:
			return
		}
	}
}

// Stop releases the underlying filesystem watch. Safe to call on an
// unstarted or already-stopped Watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fsw == nil {
		return nil
	}
	close(w.done)
	err := w.fsw.Close()
	w.fsw = nil
	return err
}

// Dial reaches the configured host:port with the platform-appropriate
// socket options applied (see dial_unix.go/dial_other.go), returning
// the connection for the caller to hand the rebuilt artifact over.
func (w *Watcher) Dial(timeout time.Duration) (net.Conn, error) {
	w.mu.Lock()
	addr := w.addr
	w.mu.Unlock()
	if addr == "" {
		return nil, fmt.Errorf("hotreload: no address configured")
	}
	return dialTimeout(addr, timeout)
}
