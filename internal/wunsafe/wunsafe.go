// SPDX-License-Identifier: Unlicense OR MIT

// Package wunsafe holds the byte-view helpers the ffi package uses to
// expose Go-owned slices to native code without a copy, adapted from
// gio's internal/unsafe for WaterUI's array and string entry points.
package wunsafe

import (
	"reflect"
	"unsafe"
)

// BytesView returns a byte slice view over s, a slice of fixed-size
// elements, without copying. The returned slice aliases s's backing
// array; it must not outlive s.
func BytesView(s interface{}) []byte {
	v := reflect.ValueOf(s)
	if v.Len() == 0 {
		return nil
	}
	first := v.Index(0)
	sz := int(first.Type().Size())
	var res []byte
	h := (*reflect.SliceHeader)(unsafe.Pointer(&res))
	h.Data = first.UnsafeAddr()
	h.Cap = v.Cap() * sz
	h.Len = v.Len() * sz
	return res
}

// SliceOf builds a byte slice view over a native buffer handed across
// the FFI boundary: ptr is the buffer's address, n its length in bytes.
// The returned slice aliases foreign memory; the caller is responsible
// for the buffer outliving every read.
func SliceOf(ptr uintptr, n int) []byte {
	if ptr == 0 || n == 0 {
		return nil
	}
	var res []byte
	h := (*reflect.SliceHeader)(unsafe.Pointer(&res))
	h.Data = ptr
	h.Cap = n
	h.Len = n
	return res
}

// GoString converts a NUL-terminated byte buffer (the shape a C string
// crosses the boundary in) to a Go string, stopping at the first NUL or
// at the end of buf if none is found.
func GoString(buf []byte) string {
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}
