// SPDX-License-Identifier: Unlicense OR MIT

package wlayout

import "math"

// DIP is a length in density-independent points, gio's unit.Dp
// (unit/unit.go) renamed to match §4.D's "lengths are in
// density-independent points; backend adapters convert to/from device
// pixels at the edge." The core never performs that conversion itself.
type DIP float64

// Unbounded is the "+∞" sentinel ProposalSize uses for "unbounded
// along this axis".
var Unbounded = DIP(math.Inf(1))

// Point is a 2D location in DIPs.
type Point struct {
	X, Y DIP
}

// Size is a resolved width/height pair in DIPs.
type Size struct {
	Width, Height DIP
}

// Rect is an axis-aligned rectangle in DIPs.
type Rect struct {
	Origin Point
	Size   Size
}

// Contains reports whether r fully contains other, up to tol of
// rounding tolerance (the Layout roundtrip property in §8 allows one).
func (r Rect) Contains(other Rect, tol DIP) bool {
	return other.Origin.X >= r.Origin.X-tol &&
		other.Origin.Y >= r.Origin.Y-tol &&
		other.Origin.X+other.Size.Width <= r.Origin.X+r.Size.Width+tol &&
		other.Origin.Y+other.Size.Height <= r.Origin.Y+r.Size.Height+tol
}

// Path is a sequence of points describing a filled shape's outline,
// the geometry a FilledShape terminal (§3) carries.
type Path struct {
	Points []Point
	Closed bool
}

// ProposalSize is the optional width/height hint a parent forwards to
// a child. A nil component means "unconstrained"; Unbounded means
// "unbounded along this axis"; any other finite value is a firm hint.
// This generalizes gio's Constraints{Min, Max image.Point} (which only
// ever carries firm bounds) to the spec's three-state optional
// proposal.
type ProposalSize struct {
	Width  *DIP
	Height *DIP
}

// Firm returns a ProposalSize with both axes pinned to size.
func Firm(size Size) ProposalSize {
	w, h := size.Width, size.Height
	return ProposalSize{Width: &w, Height: &h}
}

// UnboundedBoth returns a ProposalSize unbounded along both axes, the
// proposal a scroll view forwards along its scroll axis (axes), per
// §4.D's "Scroll views always forward unbounded proposals along the
// scroll axis(es)."
func UnboundedBoth() ProposalSize {
	w, h := Unbounded, Unbounded
	return ProposalSize{Width: &w, Height: &h}
}

// WidthOr and HeightOr return the proposal's width/height if present,
// else fallback. Convenience for Layout implementations resolving an
// "unconstrained" axis to a concrete value.
func (p ProposalSize) WidthOr(fallback DIP) DIP {
	if p.Width == nil {
		return fallback
	}
	return *p.Width
}

func (p ProposalSize) HeightOr(fallback DIP) DIP {
	if p.Height == nil {
		return fallback
	}
	return *p.Height
}
