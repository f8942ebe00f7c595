// SPDX-License-Identifier: Unlicense OR MIT

package ffi

import (
	"unsafe"

	"waterui.dev/core/internal/wunsafe"
)

// Array is the vtable-backed shape every FFI array crosses the
// boundary as: a data pointer plus two function pointers rather than a
// Go slice header, since a slice header has no meaning outside the Go
// runtime. Slice reinterprets Data as a byte view of length*elemSize
// bytes; Drop releases whatever ownership Data represents (a pinned Go
// slice, or a native allocation the producer owns).
type Array struct {
	Data  unsafe.Pointer
	Slice func(data unsafe.Pointer) (ptr unsafe.Pointer, length int)
	Drop  func(data unsafe.Pointer)
}

// Bytes returns a view of the array's bytes. Safe to call repeatedly;
// it does not consume the array.
func (a Array) Bytes() []byte {
	if a.Slice == nil {
		return nil
	}
	ptr, n := a.Slice(a.Data)
	if ptr == nil || n == 0 {
		return nil
	}
	return wunsafe.SliceOf(uintptr(ptr), n)
}

// Close invokes Drop, if any. Safe to call more than once; Drop is
// expected to be idempotent the same way a reactive.Guard's Close is.
func (a Array) Close() {
	if a.Drop != nil {
		a.Drop(a.Data)
	}
}

// ArrayOf builds an Array view over a Go slice of fixed-size elements
// without copying. The Array's closures keep elems reachable; release,
// if non-nil, is called by every Close so the caller can free whatever
// else backs the array.
func ArrayOf[T any](elems []T, release func()) Array {
	bytes := wunsafe.BytesView(elems)
	ptr := unsafe.Pointer(nil)
	if len(bytes) > 0 {
		ptr = unsafe.Pointer(&bytes[0])
	}
	n := len(elems)
	var sz int
	if n > 0 {
		sz = len(bytes) / n
	}
	return Array{
		Data: ptr,
		Slice: func(unsafe.Pointer) (unsafe.Pointer, int) {
			return ptr, n * sz
		},
		Drop: func(unsafe.Pointer) {
			if release != nil {
				release()
			}
		},
	}
}
