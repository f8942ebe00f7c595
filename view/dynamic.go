// SPDX-License-Identifier: Unlicense OR MIT

package view

import (
	"waterui.dev/core/env"
	"waterui.dev/core/reactive"
)

// DynamicWatcher receives a fresh AnyView on every emission, including
// the initial one (§4.C). Ownership of each emitted AnyView transfers
// to the watcher: it is responsible for dropping each one it receives
// and tearing down the previously rendered subtree before installing
// the new one. Package action provides the Connect glue that drives
// this contract from a reactive.Source[AnyView].
type DynamicWatcher func(AnyView)

// Dynamic is a raw view carrying a reactive source that yields
// AnyViews over time (§3, §4.C).
type Dynamic struct {
	Stretched
	Source reactive.Source[AnyView]
}

func (d Dynamic) Body(env.Env) View { return d }

// Connect registers w against d's source, delivering the current value
// immediately and every subsequent change; it returns the Guard that
// detaches w. This is the Go-level primitive the FFI's
// dynamic_connect(dyn, watcher) entry point (§4.F) wraps.
func (d Dynamic) Connect(w DynamicWatcher) reactive.Guard {
	w(d.Source.Read())
	return d.Source.Watch(func(v AnyView, _ reactive.Metadata) {
		w(v)
	})
}
