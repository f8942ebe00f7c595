// SPDX-License-Identifier: Unlicense OR MIT

package action

import "waterui.dev/core/view"

// RetainHandle owns one view.Retain metadata node's payload and
// guarantees Drop fires exactly once, however the node is destroyed —
// by an explicit Release call or a second Release being a no-op.
type RetainHandle struct {
	payload  any
	drop     func(any)
	released bool
}

// NewRetainHandle takes ownership of r.Payload.
func NewRetainHandle(r view.Retain) *RetainHandle {
	return &RetainHandle{payload: r.Payload, drop: r.Drop}
}

// Payload returns the retained value for as long as the handle is live.
func (h *RetainHandle) Payload() any { return h.payload }

// Release invokes Drop with the payload exactly once; subsequent calls
// are no-ops, matching the "dropped ... exactly once when the metadata
// node is destroyed" contract.
func (h *RetainHandle) Release() {
	if h.released {
		return
	}
	h.released = true
	if h.drop != nil {
		h.drop(h.payload)
	}
	h.payload = nil
}
