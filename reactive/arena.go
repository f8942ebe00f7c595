// SPDX-License-Identifier: Unlicense OR MIT

package reactive

import "sync"

// Guard is returned by every Watch call. Destroying it (Close) is the
// only way to unsubscribe; it is safe to Close a Guard more than once,
// and safe to Close it from a goroutine other than the one driving the
// reactive graph (watchers "must tolerate being dropped from any
// thread").
type Guard struct {
	drop func()
}

// Close unsubscribes the associated watcher. A no-op if the watcher is
// already gone (binding dropped, guard already closed).
func (g Guard) Close() {
	if g.drop != nil {
		g.drop()
	}
}

// NewGuard builds a Guard around an arbitrary teardown function, for
// callers composing several subscriptions (or other cleanup) behind
// one Guard value — e.g. action.Connector chaining a Dynamic's
// subscription Guard with its own teardown-on-detach behavior.
func NewGuard(drop func()) Guard {
	return Guard{drop: drop}
}

// Join returns a single Guard whose Close closes every guard in
// guards, in order. Useful for a composed view that accumulates
// several child subscriptions and wants one teardown call.
func Join(guards ...Guard) Guard {
	return NewGuard(func() {
		for _, g := range guards {
			g.Close()
		}
	})
}

// slot holds one watcher registration. generation is bumped on every
// reuse, the same version-stamp trick gio's op.Ops uses on Reset to
// invalidate stale MacroOp handles (op/op.go) so that a Guard built
// from a freed slot's generation can never silently unsubscribe a
// newer occupant.
type slot[T any] struct {
	generation uint32
	callback   func(T, Metadata)
}

// arena is a flat, generation-tagged watcher list. A Guard is the pair
// (index, generation); destroying it is an O(1) lookup plus an O(n)
// removal from the registration-order list. n is expected to stay
// small (a handful of backend watchers per reactive source).
type arena[T any] struct {
	mu       sync.Mutex
	slots    []slot[T]
	freeList []int
	order    []int // active slot indices, oldest registration first
}

func (a *arena[T]) register(cb func(T, Metadata)) Guard {
	a.mu.Lock()
	defer a.mu.Unlock()

	var idx int
	if n := len(a.freeList); n > 0 {
		idx = a.freeList[n-1]
		a.freeList = a.freeList[:n-1]
		a.slots[idx].generation++
		a.slots[idx].callback = cb
	} else {
		idx = len(a.slots)
		a.slots = append(a.slots, slot[T]{generation: 1, callback: cb})
	}
	gen := a.slots[idx].generation
	a.order = append(a.order, idx)

	return Guard{drop: func() { a.remove(idx, gen) }}
}

func (a *arena[T]) remove(idx int, gen uint32) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if idx >= len(a.slots) || a.slots[idx].generation != gen {
		return // stale guard, slot already recycled or never existed
	}
	a.slots[idx].callback = nil
	a.slots[idx].generation++
	a.freeList = append(a.freeList, idx)
	for i, v := range a.order {
		if v == idx {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

// notify invokes every active watcher, in registration order, with a
// snapshot of the order taken under lock so that a watcher re-entrantly
// registering or unsubscribing another watcher (the "synchronous
// depth-first cascade" §5 allows) never corrupts this pass.
func (a *arena[T]) notify(v T, meta Metadata) {
	a.mu.Lock()
	order := append([]int(nil), a.order...)
	a.mu.Unlock()

	for _, idx := range order {
		a.mu.Lock()
		cb := a.slots[idx].callback
		gen := a.slots[idx].generation
		a.mu.Unlock()
		if cb == nil {
			continue
		}
		if panicked := invokeWatcher(cb, v, meta); panicked {
			a.remove(idx, gen)
		}
	}
}

func (a *arena[T]) len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.order)
}

// invokeWatcher isolates a panicking callback: the runtime drops the
// offending watcher and continues propagation to the rest (the
// WatcherPanic error kind, §7). Reports whether cb panicked.
func invokeWatcher[T any](cb func(T, Metadata), v T, meta Metadata) (panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			logDiagnostic("reactive: watcher panicked, dropping it: %v", r)
		}
	}()
	cb(v, meta)
	return false
}
