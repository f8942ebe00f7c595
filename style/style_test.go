// SPDX-License-Identifier: Unlicense OR MIT

package style

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"waterui.dev/core/env"
	"waterui.dev/core/reactive"
)

func TestSRGBLinearRoundtrip(t *testing.T) {
	within := func(a, b uint8) bool {
		d := int(a) - int(b)
		if d < 0 {
			d = -d
		}
		return d <= 1 // one ULP of uint8 rounding error either way
	}
	for _, c := range []color.NRGBA{
		{R: 0, G: 0, B: 0, A: 0xFF},
		{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		{R: 0x7F, G: 0x30, B: 0xC8, A: 0x80},
		{R: 0x10, G: 0xE0, B: 0x55, A: 0xFF},
	} {
		got := LinearFromSRGB(c).SRGB()
		require.True(t, within(c.R, got.R), "R roundtrip: %v -> %v", c, got)
		require.True(t, within(c.G, got.G), "G roundtrip: %v -> %v", c, got)
		require.True(t, within(c.B, got.B), "B roundtrip: %v -> %v", c, got)
		require.Equal(t, c.A, got.A)
	}
}

func TestLinearFromSRGBPreservesBlackAndWhite(t *testing.T) {
	black := LinearFromSRGB(color.NRGBA{A: 0xFF})
	require.Equal(t, 0.0, black.Red)
	white := LinearFromSRGB(color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	require.InDelta(t, 1.0, white.Red, 1e-9)
}

type Theme struct {
	Accent reactive.Source[ResolvedColor]
	Body   reactive.Source[ResolvedFont]
}

func TestResolveColorLiteral(t *testing.T) {
	h := LiteralColor(ResolvedColor{Red: 1})
	c := ResolveColor(h, env.New())
	require.Equal(t, 1.0, c.Read().Red)
}

// Scenario 3 (§8), restated for style: color resolution tracks the
// environment's installed theme, and re-derives reactively when the
// theme's backing source changes.
func TestResolveColorReactsToEnvironmentTheme(t *testing.T) {
	accent := reactive.NewBinding(ResolvedColor{Red: 1, Opacity: 1})
	e := env.With(env.New(), Theme{Accent: accent, Body: reactive.Constant(ResolvedFont{SizePoints: 14})})

	h := EnvColor(func(th Theme) reactive.Source[ResolvedColor] { return th.Accent }, ResolvedColor{})
	resolved := ResolveColor(h, e)

	require.Equal(t, 1.0, resolved.Read().Red)

	var lastBlue float64
	g := resolved.Watch(func(c ResolvedColor, _ reactive.Metadata) { lastBlue = c.Blue })
	defer g.Close()

	accent.Set(ResolvedColor{Blue: 1, Opacity: 1})
	require.Equal(t, 1.0, lastBlue)
	require.Equal(t, 1.0, resolved.Read().Blue)
}

func TestResolveColorMissingEnvironmentFallsBack(t *testing.T) {
	h := EnvColor(func(th Theme) reactive.Source[ResolvedColor] { return th.Accent }, ResolvedColor{Green: 1})
	resolved := ResolveColor(h, env.New())
	require.Equal(t, 1.0, resolved.Read().Green)
}

func TestResolveFontLiteral(t *testing.T) {
	f := ResolveFont(LiteralFont(ResolvedFont{SizePoints: 16, Weight: Bold}), env.New())
	require.Equal(t, Bold, f.Read().Weight)
}

func TestTextRunsPreserveOrder(t *testing.T) {
	txt := NewText(
		Run{Text: []byte("Hello, ")},
		Run{Text: []byte("world"), Style: RunStyle{Italic: true}},
	)
	runs := txt.Runs()
	require.Len(t, runs, 2)
	require.Equal(t, "Hello, world", string(txt.PlainConcat()))
	require.True(t, runs[1].Style.Italic)
}

func TestTextAppendIsImmutable(t *testing.T) {
	a := NewText(Run{Text: []byte("a")})
	b := a.Append(Run{Text: []byte("b")})
	require.Len(t, a.Runs(), 1)
	require.Len(t, b.Runs(), 2)
}
