// SPDX-License-Identifier: Unlicense OR MIT

// Package core is the WaterUI runtime core: a cross-platform,
// declarative, reactive UI tree (package view) over a fine-grained
// reactive graph (package reactive) and a persistent, type-keyed
// environment (package env), with layout negotiation (package
// wlayout), styled text and resolved values (package style), action
// and lifecycle glue (package action), and a C-ABI boundary (package
// ffi). This package itself holds only the handful of process-wide
// entry points too small to deserve their own package: hot-reload
// configuration.
package core

import "waterui.dev/core/internal/hotreload"

var reloadWatcher = hotreload.NewWatcher()

// SetHotReloadDir points the runtime at a directory to watch for a
// freshly rebuilt dynamic library. The directory's expected contents
// are intentionally undocumented (spec.md §6); callers outside a
// development workflow should never need this.
func SetHotReloadDir(dir string) error {
	return reloadWatcher.SetDir(dir)
}

// SetHotReloadAddr points the runtime at the host:port a rebuilt
// library hands itself off to. Like SetHotReloadDir, the wire format
// spoken over this address is unspecified.
func SetHotReloadAddr(addr string) {
	reloadWatcher.SetAddr(addr)
}
