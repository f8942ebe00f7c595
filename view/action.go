// SPDX-License-Identifier: Unlicense OR MIT

package view

import "waterui.dev/core/env"

// Action is a single-shot callable consuming an environment handle
// (§3). Invoking it does not consume it; dropping it without invoking
// is always legal. No package here reference-counts actions; an
// Action crossing the FFI is pinned like any other value through
// ffi.Handles, and inside Go its lifetime is ordinary garbage
// collection.
type Action struct {
	call func(env.Env)
}

// NewAction wraps fn as an Action.
func NewAction(fn func(env.Env)) Action {
	return Action{call: fn}
}

// Invoke calls the wrapped function, if any.
func (a Action) Invoke(e env.Env) {
	if a.call != nil {
		a.call(e)
	}
}

// IsZero reports whether a carries no callable.
func (a Action) IsZero() bool {
	return a.call == nil
}
