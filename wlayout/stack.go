// SPDX-License-Identifier: Unlicense OR MIT

package wlayout

// Stack lays out children along Axis, distributing any leftover
// main-axis space equally among children whose stretch axis matches
// the stack's main axis (§4.D conventions). It generalizes gio's Flex
// (layout/flex.go) — which accumulates Rigid/Flex children
// imperatively as a side effect of drawing — into the spec's pure
// three-function Layout contract.
type Stack struct {
	Axis  Axis
	Cross CrossAxisAlignment
}

var _ Layout = Stack{}

// distribution is the fixed-size sum, stretch-child count, and the
// main-axis length each stretch child receives once leftover space is
// split evenly among them (§4.D: "Stacks distribute any leftover
// main-axis space equally among children whose stretch axis matches
// the stack's main axis").
func (s Stack) distribution(mainLimit *DIP, children []ChildMeta) (fixed DIP, stretchCount int, perStretch DIP) {
	for _, c := range children {
		if c.Stretch {
			stretchCount++
			continue
		}
		fixed += s.mainOf(c.Intrinsic, mainLimit)
	}
	if stretchCount > 0 && mainLimit != nil {
		remaining := *mainLimit - fixed
		if remaining < 0 {
			remaining = 0
		}
		perStretch = remaining / DIP(stretchCount)
	}
	return fixed, stretchCount, perStretch
}

func (s Stack) Propose(parent ProposalSize, children []ChildMeta) []ProposalSize {
	mainLimit, crossLimit := s.axisSplit(parent)
	_, _, perStretch := s.distribution(mainLimit, children)

	out := make([]ProposalSize, len(children))
	for i, c := range children {
		if c.Stretch {
			out[i] = s.compose(&perStretch, crossLimit)
			continue
		}
		m := s.mainOf(c.Intrinsic, mainLimit)
		out[i] = s.compose(&m, crossLimit)
	}
	return out
}

func (s Stack) Size(parent ProposalSize, children []ChildMeta) Size {
	mainLimit, crossLimit := s.axisSplit(parent)
	fixed, stretchCount, perStretch := s.distribution(mainLimit, children)

	total := fixed + DIP(stretchCount)*perStretch

	var cross DIP
	for _, c := range children {
		if cr := s.crossOf(c.Intrinsic, crossLimit); cr > cross {
			cross = cr
		}
	}
	if crossLimit != nil {
		cross = *crossLimit
	}
	return s.composeSize(total, cross)
}

func (s Stack) Place(bounds Rect, parent ProposalSize, children []ChildMeta) []Rect {
	proposals := s.Propose(parent, children)
	rects := make([]Rect, len(children))

	var cursor DIP
	for i, p := range proposals {
		main := s.mainOf(p, nil)
		cross := s.crossOf(p, nil)
		boundsCross := s.crossOf(Size{Width: bounds.Size.Width, Height: bounds.Size.Height}.asProposal(), nil)
		crossOffset := s.crossOffset(cross, boundsCross)

		rects[i] = s.place(bounds.Origin, cursor, crossOffset, main, cross)
		cursor += main
	}
	return rects
}

func (s Stack) axisSplit(p ProposalSize) (main, cross *DIP) {
	if s.Axis == Horizontal {
		return p.Width, p.Height
	}
	return p.Height, p.Width
}

func (s Stack) mainOf(p ProposalSize, limit *DIP) DIP {
	if s.Axis == Horizontal {
		return p.WidthOr(valueOr(limit, 0))
	}
	return p.HeightOr(valueOr(limit, 0))
}

func (s Stack) crossOf(p ProposalSize, limit *DIP) DIP {
	if s.Axis == Horizontal {
		return p.HeightOr(valueOr(limit, 0))
	}
	return p.WidthOr(valueOr(limit, 0))
}

func (s Stack) compose(main, cross *DIP) ProposalSize {
	if s.Axis == Horizontal {
		return ProposalSize{Width: main, Height: cross}
	}
	return ProposalSize{Width: cross, Height: main}
}

func (s Stack) composeSize(main, cross DIP) Size {
	if s.Axis == Horizontal {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

func (s Stack) crossOffset(childCross, boundsCross DIP) DIP {
	switch s.Cross {
	case AlignCenter:
		return (boundsCross - childCross) / 2
	case AlignEnd:
		return boundsCross - childCross
	default:
		return 0
	}
}

func (s Stack) place(origin Point, cursorMain, crossOffset, main, cross DIP) Rect {
	if s.Axis == Horizontal {
		return Rect{
			Origin: Point{X: origin.X + cursorMain, Y: origin.Y + crossOffset},
			Size:   Size{Width: main, Height: cross},
		}
	}
	return Rect{
		Origin: Point{X: origin.X + crossOffset, Y: origin.Y + cursorMain},
		Size:   Size{Width: cross, Height: main},
	}
}

func (sz Size) asProposal() ProposalSize {
	return Firm(sz)
}

func valueOr(v *DIP, fallback DIP) DIP {
	if v == nil {
		return fallback
	}
	return *v
}
