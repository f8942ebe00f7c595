// SPDX-License-Identifier: Unlicense OR MIT

package style

import (
	"math"

	"golang.org/x/image/math/fixed"

	"waterui.dev/core/env"
	"waterui.dev/core/reactive"
)

// FontWeight is the resolved weight index, 0 (thin) .. 8 (black), per
// §3's "Resolved font: (size in points, weight index 0..8 →
// thin..black)".
type FontWeight uint8

const (
	Thin FontWeight = iota
	ExtraLight
	Light
	Regular
	Medium
	SemiBold
	Bold
	ExtraBold
	Black
)

// ResolvedFont is a concrete, displayable font description.
type ResolvedFont struct {
	SizePoints float64
	Weight     FontWeight
}

// Advance26_6 converts SizePoints to the 26.6 fixed-point
// representation gio's text shaper uses internally (text/text.go,
// golang.org/x/image/math/fixed.Int26_6), so a backend's shaping layer
// can consume a ResolvedFont without its own float-to-fixed
// conversion.
func (f ResolvedFont) Advance26_6() fixed.Int26_6 {
	return fixed.Int26_6(math.Round(f.SizePoints * 64))
}

// FontHandle carries a reference to a font descriptor rather than a
// resolved value.
type FontHandle struct {
	lookup func(env.Env) reactive.Source[ResolvedFont]
}

// LiteralFont returns a handle that always resolves to f.
func LiteralFont(f ResolvedFont) FontHandle {
	return FontHandle{lookup: func(env.Env) reactive.Source[ResolvedFont] {
		return reactive.Constant(f)
	}}
}

// EnvFont mirrors EnvColor for fonts.
func EnvFont[T any](extract func(T) reactive.Source[ResolvedFont], fallback ResolvedFont) FontHandle {
	return FontHandle{lookup: func(e env.Env) reactive.Source[ResolvedFont] {
		v, ok := env.Get[T](e)
		if !ok {
			logMissingEnvironment("font")
			return reactive.Constant(fallback)
		}
		return extract(v)
	}}
}

// ResolveFont resolves handle against env, analogous to ResolveColor.
func ResolveFont(handle FontHandle, e env.Env) *reactive.Computed[ResolvedFont] {
	src := handle.lookup(e)
	if c, ok := src.(*reactive.Computed[ResolvedFont]); ok {
		return c
	}
	return reactive.Map(src, func(f ResolvedFont) ResolvedFont { return f })
}
