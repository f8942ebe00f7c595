// SPDX-License-Identifier: Unlicense OR MIT

package action

import (
	"waterui.dev/core/env"
	"waterui.dev/core/view"
)

// OnLifecycle drives a view.Metadata[view.LifecycleHook] node's phases
// for a backend: call Appear exactly once when the decorated subtree
// becomes visible, Disappear exactly once when it is torn down. Calling
// either out of order, or calling Appear twice without an intervening
// Disappear, is a programming error the backend is responsible for
// avoiding; this type does not re-derive the phase itself, it only
// dispatches to whichever hook the metadata carries.
type OnLifecycle struct {
	hook view.LifecycleHook
}

// NewOnLifecycle wraps hook for dispatch.
func NewOnLifecycle(hook view.LifecycleHook) OnLifecycle {
	return OnLifecycle{hook: hook}
}

// Appear fires the OnAppear callback, if any, with e.
func (o OnLifecycle) Appear(e env.Env) {
	if o.hook.OnAppear != nil {
		o.hook.OnAppear(e)
	}
}

// Disappear fires the OnDisappear callback, if any, with e.
func (o OnLifecycle) Disappear(e env.Env) {
	if o.hook.OnDisappear != nil {
		o.hook.OnDisappear(e)
	}
}

// EventDispatcher drives a view.Metadata[view.EventHook] node. Unlike
// OnLifecycle it is repeatable and re-entrancy-safe: Fire may be called
// from within a callback it is itself dispatching (a watcher reacting
// to its own event by emitting another), guarded by depth rather than a
// single-shot flag.
type EventDispatcher struct {
	name  string
	fire  func(env.Env)
	depth int
}

// NewEventDispatcher wraps hook for repeated dispatch, matching on Name.
func NewEventDispatcher(hook view.EventHook) *EventDispatcher {
	return &EventDispatcher{name: hook.Name, fire: hook.OnEvent}
}

// Name reports the event name this dispatcher answers to.
func (d *EventDispatcher) Name() string { return d.name }

// Fire invokes the hook's callback with e. Re-entrant calls (the
// callback itself triggering another Fire on the same dispatcher) are
// tolerated and simply recurse; the depth counter exists so a future
// caller can detect runaway recursion rather than to block it, since
// the spec does not bound nesting.
func (d *EventDispatcher) Fire(e env.Env) {
	if d.fire == nil {
		return
	}
	d.depth++
	defer func() { d.depth-- }()
	d.fire(e)
}
