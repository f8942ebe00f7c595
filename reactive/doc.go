// SPDX-License-Identifier: Unlicense OR MIT

// Package reactive implements WaterUI's fine-grained reactive graph:
// bindings, computed values, watchers and the animation metadata that
// rides along with every change.
//
// The graph is single-threaded and push-based, mirroring the
// cooperative event-loop discipline gio's app.Window uses for its own
// platform callbacks: every Set, Watch registration and watcher
// invocation is expected to happen on one designated UI thread, and
// Runtime only ever catches genuine cross-goroutine misuse, not a
// same-goroutine ordering mistake.
package reactive
