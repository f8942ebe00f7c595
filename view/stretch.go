// SPDX-License-Identifier: Unlicense OR MIT

package view

// StretchAxis is the intent of a non-metadata terminal to expand along
// none/one/both axes of its parent (§4.C). It is read once, at
// instantiation time.
type StretchAxis uint8

const (
	StretchNone StretchAxis = iota
	StretchHorizontal
	StretchVertical
	StretchBoth
	// StretchMainAxis and StretchCrossAxis are resolved by the nearest
	// stack ancestor; with no stack ancestor both fall back to
	// StretchNone.
	StretchMainAxis
	StretchCrossAxis
)

// Stretched is embedded by every non-metadata terminal to carry its
// stretch axis.
type Stretched struct {
	Axis StretchAxis
}

func (s Stretched) StretchAxis() StretchAxis {
	return s.Axis
}
