// SPDX-License-Identifier: Unlicense OR MIT

package view

import (
	"time"

	"waterui.dev/core/env"
	"waterui.dev/core/reactive"
	"waterui.dev/core/style"
)

// Button pairs a label view with an action invoked on activation.
type Button struct {
	Stretched
	Label  View
	Action Action
}

func (b Button) Body(env.Env) View { return b }

// ToggleStyle is the visual presentation a backend should use for a
// Toggle terminal.
type ToggleStyle uint8

const (
	ToggleStyleSwitch ToggleStyle = iota
	ToggleStyleCheckbox
	ToggleStyleButton
)

// Toggle pairs a label with a bool binding.
type Toggle struct {
	Stretched
	Label   View
	Value   *reactive.Binding[bool]
	Style   ToggleStyle
}

func (t Toggle) Body(env.Env) View { return t }

// KeyboardType hints which on-screen keyboard layout a TextField
// should request.
type KeyboardType uint8

const (
	KeyboardDefault KeyboardType = iota
	KeyboardNumeric
	KeyboardEmail
	KeyboardURL
	KeyboardPhone
	KeyboardDecimal
)

// TextField pairs a label with a string binding and a prompt.
type TextField struct {
	Stretched
	Label    View
	Value    *reactive.Binding[string]
	Prompt   string
	Keyboard KeyboardType
}

func (f TextField) Body(env.Env) View { return f }

// SecureField is TextField's secure-entry (password) sibling.
type SecureField struct {
	Stretched
	Label  View
	Value  *reactive.Binding[string]
	Prompt string
}

func (f SecureField) Body(env.Env) View { return f }

// Slider pairs a label, bounds and a double binding with optional
// min/max-value labels.
type Slider struct {
	Stretched
	Label     View
	Min, Max  float64
	Value     *reactive.Binding[float64]
	MinLabel  View
	MaxLabel  View
}

func (s Slider) Body(env.Env) View { return s }

// Stepper pairs a label with an integer binding, a step and bounds.
type Stepper struct {
	Stretched
	Label    View
	Value    *reactive.Binding[int]
	Step     int
	Min, Max int
}

func (s Stepper) Body(env.Env) View { return s }

// PickerItem is one entry of a Picker's computed item list.
type PickerItem struct {
	Tag   any
	Label View
}

// Picker pairs a computed item list with a tag binding.
type Picker struct {
	Stretched
	Label View
	Items *reactive.Computed[[]PickerItem]
	Tag   *reactive.Binding[any]
}

func (p Picker) Body(env.Env) View { return p }

// ColorPicker pairs a label with a color binding resolved through the
// style package's handle model.
type ColorPicker struct {
	Stretched
	Label View
	Value *reactive.Binding[style.ResolvedColor]
}

func (p ColorPicker) Body(env.Env) View { return p }

// DatePicker pairs a label with a time binding and optional bounds.
type DatePicker struct {
	Stretched
	Label        View
	Value        *reactive.Binding[time.Time]
	Min, Max     *time.Time
}

func (p DatePicker) Body(env.Env) View { return p }

// ProgressStyle is the visual presentation of a Progress terminal.
type ProgressStyle uint8

const (
	ProgressStyleLinear ProgressStyle = iota
	ProgressStyleCircular
)

// Progress pairs a label and value-label with a computed double in
// [0,1] (or indeterminate, represented as a nil Value) and a style.
type Progress struct {
	Stretched
	Label      View
	ValueLabel View
	Value      *reactive.Computed[float64]
	Style      ProgressStyle
}

func (p Progress) Body(env.Env) View { return p }
