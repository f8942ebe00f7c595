// SPDX-License-Identifier: Unlicense OR MIT

package ffi

import (
	"fmt"
	"sync"
)

// Handle is the opaque, uintptr-sized token native code holds in place
// of a Go value. It is only ever meaningful back through the Handles
// slab that minted it; a Handle from one slab fed to another's methods
// is a programming error (reported as UseAfterDrop, the closest of the
// five diagnostic kinds to "the handle doesn't mean what you think").
type Handle uintptr

// Handles is a generation-tagged slab pinning arbitrary Go values
// behind a Handle, the same arena/generation idea reactive's watcher
// arena uses for Guards: a slot's generation increments on every
// reuse, so a stale Handle can never silently resolve to a value that
// replaced the one it was minted for.
type Handles struct {
	mu       sync.Mutex
	slots    []handleSlot
	freeList []int
}

type handleSlot struct {
	generation uint32
	value      any
	live       bool
}

// packHandle/unpackHandle fold (index, generation) into and out of a
// single uintptr-sized token: generation in the high 32 bits, index in
// the low 32, so a 64-bit Handle covers slabs far larger than any
// single process needs while staying a single scalar across the ABI.
func packHandle(idx int, gen uint32) Handle {
	return Handle(uint64(gen)<<32 | uint64(uint32(idx)))
}

func unpackHandle(h Handle) (idx int, gen uint32) {
	return int(uint32(h)), uint32(uint64(h) >> 32)
}

// Pin stores value and returns the Handle native code should hold.
func (h *Handles) Pin(value any) Handle {
	h.mu.Lock()
	defer h.mu.Unlock()

	var idx int
	if n := len(h.freeList); n > 0 {
		idx = h.freeList[n-1]
		h.freeList = h.freeList[:n-1]
		h.slots[idx].generation++
	} else {
		idx = len(h.slots)
		h.slots = append(h.slots, handleSlot{generation: 1})
	}
	h.slots[idx].value = value
	h.slots[idx].live = true
	return packHandle(idx, h.slots[idx].generation)
}

// Resolve returns the value pinned under handle, or an error if the
// handle is out of range or stale (UseAfterDrop: the Go value it once
// named has been released).
func (h *Handles) Resolve(handle Handle) (any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	idx, gen := unpackHandle(handle)
	if idx < 0 || idx >= len(h.slots) || !h.slots[idx].live || h.slots[idx].generation != gen {
		return nil, fmt.Errorf("ffi: %w: handle %#x does not resolve to a live value", ErrUseAfterDrop, handle)
	}
	return h.slots[idx].value, nil
}

// Drop releases the value pinned under handle. Dropping an
// already-dropped or never-minted handle is a no-op, matching the
// Guards invariant's "safe to destroy more than once" discipline the
// rest of the core holds itself to.
func (h *Handles) Drop(handle Handle) {
	h.mu.Lock()
	defer h.mu.Unlock()

	idx, gen := unpackHandle(handle)
	if idx < 0 || idx >= len(h.slots) || h.slots[idx].generation != gen || !h.slots[idx].live {
		return
	}
	h.slots[idx].value = nil
	h.slots[idx].live = false
	h.freeList = append(h.freeList, idx)
}

// Len reports the number of currently pinned handles, for diagnostics.
func (h *Handles) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, s := range h.slots {
		if s.live {
			n++
		}
	}
	return n
}
