// SPDX-License-Identifier: Unlicense OR MIT

package ffi

import "errors"

// Sentinel errors mirroring four of the five diagnostic kinds spec.md
// §7 enumerates, for the pure-Go surface under this package;
// WatcherPanic has no sentinel, package reactive recovers and logs it
// internally. None of
// these ever cross the actual C ABI as a value (§7: "no errors cross
// the ABI as values"); a cgo shim wrapping these functions is expected
// to log and fall back per its kind rather than propagate the Go
// error through an extern entry point.
var (
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrUseAfterDrop      = errors.New("use after drop")
	ErrReentrantCompute  = errors.New("reentrant compute")
	ErrMissingEnvironment = errors.New("missing environment value")
)
