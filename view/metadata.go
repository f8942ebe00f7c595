// SPDX-License-Identifier: Unlicense OR MIT

package view

import (
	"waterui.dev/core/env"
	"waterui.dev/core/reactive"
	"waterui.dev/core/style"
	"waterui.dev/core/wlayout"
)

// Metadata wraps a child view, tagging it with one item of metadata T.
// Metadata views are layout-transparent: they adopt the child's
// stretch axis and size (§4.C); the backend applies the decoration
// around the child.
type Metadata[T any] struct {
	Child View
	Tag   T
}

// Body returns the child unchanged; a Metadata view never recurses
// into a different shape, it just carries Tag alongside Child for the
// backend to apply.
func (m Metadata[T]) Body(env.Env) View { return m.Child }

// EnvOverride installs value into the environment seen by Child and
// its descendants — the view-tree realization of env.With, scoped to
// one subtree instead of the whole composition.
type EnvOverride struct {
	Apply func(env.Env) env.Env
}

// SecureCapture marks a subtree as containing sensitive input that a
// backend should exclude from screenshots/recording.
type SecureCapture struct{}

// GestureKind enumerates the pointer/touch gestures a GestureObserver
// can be asked to report.
type GestureKind uint8

const (
	GestureTap GestureKind = iota
	GestureLongPress
	GestureDrag
	GesturePinch
	GestureRotate
)

// GestureObserver reports gesture events on Child's bounds.
type GestureObserver struct {
	Kind    GestureKind
	OnEvent func(env.Env)
}

// LifecyclePhase distinguishes Appear from Disappear (§4.G).
type LifecyclePhase uint8

const (
	LifecycleAppear LifecyclePhase = iota
	LifecycleDisappear
)

// LifecycleHook fires exactly once per phase per composition pass:
// Appear when the decorated subtree first becomes visible, Disappear
// when it is torn down.
type LifecycleHook struct {
	OnAppear    func(env.Env)
	OnDisappear func(env.Env)
}

// EventHook fires its callback every time Name occurs; unlike
// LifecycleHook it is repeatable and must tolerate being invoked
// re-entrantly.
type EventHook struct {
	Name    string
	OnEvent func(env.Env)
}

// CursorStyle names the pointer cursor shape a backend should present
// while hovering Child.
type CursorStyle uint8

const (
	CursorDefault CursorStyle = iota
	CursorPointer
	CursorText
	CursorGrab
	CursorNotAllowed
)

// Border decorates Child's edge.
type Border struct {
	Width DIP
	Color style.ColorHandle
}

// DIP is re-exported so metadata authors do not need to import
// wlayout solely to spell out a border width; it is the same unit.
type DIP = wlayout.DIP

// Shadow decorates Child with a drop shadow.
type Shadow struct {
	Radius  DIP
	Offset  wlayout.Point
	Color   style.ColorHandle
}

// ClipShape clips Child to Path.
type ClipShape struct {
	Path wlayout.Path
}

// ContextMenuItem is one entry of a ContextMenu.
type ContextMenuItem struct {
	Label  View
	Action Action
}

// ContextMenu attaches a long-press/right-click menu to Child.
type ContextMenu struct {
	Items []ContextMenuItem
}

// FocusedBinding links Child's focus state to a bool binding.
type FocusedBinding struct {
	Focused *reactive.Binding[bool]
}

// IgnoreSafeArea opts Child out of safe-area insets along the given
// edges (encoded as a bitmask, 1<<0=top, 1<<1=leading, 1<<2=bottom,
// 1<<3=trailing).
type IgnoreSafeArea struct {
	Edges uint8
}

// Retain holds an opaque payload alive for Child's lifetime, dropped
// by Drop when the metadata node is destroyed (§4.G). The payload's
// semantics are the caller's concern (§9, open question).
type Retain struct {
	Payload any
	Drop    func(any)
}

// TransformKind enumerates the supported single-operation transforms.
type TransformKind uint8

const (
	TransformScale TransformKind = iota
	TransformRotate
	TransformOffset
)

// Transform applies one geometric transform to Child.
type Transform struct {
	Kind   TransformKind
	Scale  float64
	Angle  float64 // radians, for TransformRotate
	Offset wlayout.Point
}

// FilterKind enumerates the supported single-operation visual filters.
type FilterKind uint8

const (
	FilterBlur FilterKind = iota
	FilterBrightness
	FilterSaturation
	FilterContrast
	FilterHue
	FilterGrayscale
	FilterOpacity
)

// Filter applies one visual filter to Child.
type Filter struct {
	Kind   FilterKind
	Amount float64
}
