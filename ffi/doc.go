// SPDX-License-Identifier: Unlicense OR MIT

// Package ffi exposes the pure-Go surface a cgo shim wraps to cross
// the C ABI boundary (§4.F): opaque handles pinning Go values for
// native code, a vtable-backed array shape, watcher trampolines that
// adapt a reactive.Source into a pair of C-callable function pointers,
// and the *_id() identifier table every recognized terminal answers
// to. Nothing here is //export-able as written; the CGO preamble and
// build tooling that would make it so are a backend's concern, not the
// core's.
package ffi
