// SPDX-License-Identifier: Unlicense OR MIT

package view

import (
	"waterui.dev/core/env"
	"waterui.dev/core/style"
	"waterui.dev/core/wlayout"
)

// PlainText is UTF-8 bytes with no per-run styling.
type PlainText struct {
	Stretched
	Text []byte
}

func (t PlainText) Body(env.Env) View { return t }

// StyledText wraps a style.Text run sequence.
type StyledText struct {
	Stretched
	Text style.Text
}

func (t StyledText) Body(env.Env) View { return t }

// ColorSwatch renders a flat color handle.
type ColorSwatch struct {
	Stretched
	Color style.ColorHandle
}

func (c ColorSwatch) Body(env.Env) View { return c }

// FilledShape renders a Path filled with a color.
type FilledShape struct {
	Stretched
	Path  wlayout.Path
	Color style.ColorHandle
}

func (s FilledShape) Body(env.Env) View { return s }

// Spacer expands to fill available space along its stretch axis.
type Spacer struct {
	Stretched
}

func (s Spacer) Body(env.Env) View { return s }

// PixelFormat is the preferred pixel format a RendererView requests
// from whatever GPU/CPU surface the backend hands it.
type PixelFormat uint8

const (
	PixelFormatRGBA8 PixelFormat = iota
	PixelFormatBGRA8
	PixelFormatRGBA16F
	PixelFormatRGBA32F
)

// SurfaceHandle is an opaque reference to a backend-owned render
// surface (a GPU texture, a CPU framebuffer). The core never
// interprets it; it only carries it between the application and the
// backend that produced it.
type SurfaceHandle struct {
	Opaque any
}

// RendererView is a raw view exposing a GPU/CPU surface to a backend
// that wants to draw into it directly, bypassing the declarative tree
// for that subregion. §3 names it explicitly so that a backend does
// not have to special-case "a widget with no children and a foreign
// draw callback".
type RendererView struct {
	Stretched
	Surface       SurfaceHandle
	PreferredFormat PixelFormat
}

func (r RendererView) Body(env.Env) View { return r }
