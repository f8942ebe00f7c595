// SPDX-License-Identifier: Unlicense OR MIT

package reactive

import "sync"

// Runtime stands in for the "designated UI thread" §5 requires: Set,
// Watch registration, watcher invocation and body evaluation must all
// happen on it. Go has no first-class notion of "the current thread is
// X", so Runtime instead enforces mutual exclusion the same way gio's
// app.Window assumes single-threaded access without policing it on
// every call: RunOnUI panics if it is ever entered while another
// RunOnUI on the same Runtime is in flight, catching genuine
// cross-goroutine misuse without the overhead of a goroutine-id check
// on every reactive operation.
type Runtime struct {
	mu sync.Mutex
}

// NewRuntime returns a Runtime with no work in flight.
func NewRuntime() *Runtime {
	return &Runtime{}
}

// RunOnUI runs fn as if dispatched on the UI thread. Backend adapters
// that receive results from a user-supplied executor on some other
// goroutine call this to hand the result back for a Binding.Set, per
// §5's "boundary adapter (e.g. post-to-main)".
func (r *Runtime) RunOnUI(fn func()) {
	if !r.mu.TryLock() {
		panic("waterui/reactive: concurrent entry into a single-threaded Runtime")
	}
	defer r.mu.Unlock()
	fn()
}
