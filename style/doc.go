// SPDX-License-Identifier: Unlicense OR MIT

// Package style implements WaterUI's styled-text and resolved-value
// model (§4.E): styled-run sequences carrying font/color handles
// rather than resolved values, and the reactive, environment-driven
// resolution of those handles into concrete ResolvedColor/ResolvedFont
// values.
//
// FontHandle/ResolvedFont are modeled on gio's text.Font and
// text.Shaper pairing (text/text.go, text/shaper.go): resolving a
// handle yields a size/weight descriptor; this package does no glyph
// shaping and holds no shaper cache. Color resolution
// follows the same shape, carrying HDR-capable linear-light
// extended-sRGB components instead of resolving straight to a display
// color space, per §4.E.
package style
