// SPDX-License-Identifier: Unlicense OR MIT

package style

import (
	"image/color"
	"math"

	"waterui.dev/core/env"
	"waterui.dev/core/reactive"
)

// ResolvedColor is (red, green, blue, opacity, headroom) in
// linear-light, extended-sRGB semantics. Headroom is an HDR scaling
// hint; Headroom == 0 means SDR.
type ResolvedColor struct {
	Red, Green, Blue, Opacity float64
	Headroom                  float64
}

// LinearFromSRGB converts a gamma-encoded, non-premultiplied color
// (the representation image/color.NRGBA and most platform color
// pickers use) to a ResolvedColor in linear light, the space the core
// works in so that interpolation (animated color transitions) doesn't
// pick up sRGB's perceptual gamma curve as an artifact. Ported from
// gio's internal/f32color sRGB<->linear tables, generalized to
// float64 and given a Headroom field for extended range.
func LinearFromSRGB(c color.NRGBA) ResolvedColor {
	return ResolvedColor{
		Red:     srgbToLinear(float64(c.R) / 0xFF),
		Green:   srgbToLinear(float64(c.G) / 0xFF),
		Blue:    srgbToLinear(float64(c.B) / 0xFF),
		Opacity: float64(c.A) / 0xFF,
	}
}

// SRGB converts back to gamma-encoded, non-premultiplied form, the
// representation a backend ultimately hands to the platform's drawing
// API. Headroom above 1.0 is clamped away; SRGB always answers in SDR.
func (c ResolvedColor) SRGB() color.NRGBA {
	clampUnit := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 0xFF
		}
		return uint8(math.Round(v * 0xFF))
	}
	return color.NRGBA{
		R: clampUnit(linearToSRGB(c.Red)),
		G: clampUnit(linearToSRGB(c.Green)),
		B: clampUnit(linearToSRGB(c.Blue)),
		A: clampUnit(c.Opacity),
	}
}

func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func linearToSRGB(v float64) float64 {
	if v < 0 {
		v = 0
	}
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// ColorHandle carries a reference to a color descriptor — a literal
// value or an environment-resolved one — rather than a resolved value,
// per §4.E.
type ColorHandle struct {
	lookup func(env.Env) reactive.Source[ResolvedColor]
}

// LiteralColor returns a handle that always resolves to c.
func LiteralColor(c ResolvedColor) ColorHandle {
	return ColorHandle{lookup: func(env.Env) reactive.Source[ResolvedColor] {
		return reactive.Constant(c)
	}}
}

// EnvColor returns a handle that looks up a value of type T in the
// environment and extracts a reactive color source from it. If T is
// absent, resolution falls back to fallback and logs a
// MissingEnvironment-style diagnostic (§7), consistent with how a view
// consulting a missing key falls back to Empty.
func EnvColor[T any](extract func(T) reactive.Source[ResolvedColor], fallback ResolvedColor) ColorHandle {
	return ColorHandle{lookup: func(e env.Env) reactive.Source[ResolvedColor] {
		v, ok := env.Get[T](e)
		if !ok {
			logMissingEnvironment("color")
			return reactive.Constant(fallback)
		}
		return extract(v)
	}}
}

// ResolveColor resolves handle against env, returning a Computed that
// recomputes when the environment's underlying source changes. The
// handle is looked up in e and the Computed evaluates its value once
// at construction; resolution is not deferred to the first Read or
// Watch.
func ResolveColor(handle ColorHandle, e env.Env) *reactive.Computed[ResolvedColor] {
	src := handle.lookup(e)
	if c, ok := src.(*reactive.Computed[ResolvedColor]); ok {
		return c
	}
	return reactive.Map(src, func(c ResolvedColor) ResolvedColor { return c })
}
