// SPDX-License-Identifier: Unlicense OR MIT

package ffi

import (
	"waterui.dev/core/reactive"
	"waterui.dev/core/view"
)

// WatcherTrampoline adapts a reactive.Source[view.AnyView] — the shape
// every watchable core value is erased to at the boundary — into the
// plain functions a cgo shim exports as native callbacks: Read for the
// native side's initial poll, Connect to register a notify callback
// invoked on every change, and Disconnect to detach it.
type WatcherTrampoline struct {
	handles *Handles
	source  reactive.Source[view.AnyView]
}

// NewWatcherTrampoline wires source through handles, so that every
// AnyView it ever delivers crosses the boundary as a Handle rather
// than a Go pointer that would collect garbage prematurely if native
// code outlived the call that produced it.
func NewWatcherTrampoline(handles *Handles, source reactive.Source[view.AnyView]) *WatcherTrampoline {
	return &WatcherTrampoline{handles: handles, source: source}
}

// Read pins the current value and returns its Handle.
func (w *WatcherTrampoline) Read() Handle {
	return w.handles.Pin(w.source.Read())
}

// Connect registers a native-callable notify function, invoked with a
// freshly pinned Handle on every change; it returns the Handle for the
// reactive.Guard that detaches the watcher, so native code can drop it
// through the same Handles.Drop path as any other pinned value.
func (w *WatcherTrampoline) Connect(notify func(Handle)) Handle {
	g := w.source.Watch(func(v view.AnyView, _ reactive.Metadata) {
		notify(w.handles.Pin(v))
	})
	return w.handles.Pin(g)
}

// Disconnect resolves guardHandle back to the reactive.Guard Connect
// pinned and closes it, then drops the handle itself.
func (w *WatcherTrampoline) Disconnect(guardHandle Handle) error {
	v, err := w.handles.Resolve(guardHandle)
	if err != nil {
		return err
	}
	g, ok := v.(reactive.Guard)
	if !ok {
		return ErrTypeMismatch
	}
	g.Close()
	w.handles.Drop(guardHandle)
	return nil
}
