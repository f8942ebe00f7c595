// SPDX-License-Identifier: Unlicense OR MIT

package wlayout

// ChildMeta describes one child as seen by its container's Layout,
// per §4.D: "(intrinsic proposal, priority byte, stretch bool)".
type ChildMeta struct {
	Intrinsic ProposalSize
	Priority  byte
	Stretch   bool
}

// Layout is the external collaborator a Container/FixedContainer
// terminal carries. Every method is a pure function over the parent
// proposal and the child metadata sequence — no side effects, no
// drawing — unlike gio's Widget (a closure that draws as a side
// effect, layout/layout.go); the spec's two-phase negotiation is
// queried by a backend, not executed by the core.
type Layout interface {
	// Propose returns one ProposalSize per child, the hint the
	// container wishes to forward to each.
	Propose(parent ProposalSize, children []ChildMeta) []ProposalSize
	// Size returns the container's own size once children have been
	// queried (via Propose, by the backend, against each child's own
	// layout).
	Size(parent ProposalSize, children []ChildMeta) Size
	// Place returns final placement rectangles, one per child, within
	// bounds.
	Place(bounds Rect, parent ProposalSize, children []ChildMeta) []Rect
}

// Axis is the main axis of a stack-like container.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// CrossAxisAlignment is the alignment of children along a stack's
// cross axis, configured at stack construction (§4.D conventions).
type CrossAxisAlignment uint8

const (
	AlignStart CrossAxisAlignment = iota
	AlignCenter
	AlignEnd
	AlignStretch
)
