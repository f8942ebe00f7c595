// SPDX-License-Identifier: Unlicense OR MIT

package ffi

import "waterui.dev/core/view"

// Entry is one row of the identifier table: a terminal's human name
// paired with the TypeID view.IDOf assigns it. A cgo shim exposes one
// *_id() function per row (button_id(), toggle_id(), ...), each simply
// returning Entry.ID's bytes.
type Entry struct {
	Name string
	ID   view.TypeID
}

// Table returns the identifier table for every terminal and raw view
// type view recognizes, in the order spec.md §3 lists them. A backend
// author bringing up a new platform (or cmd/waterui-introspect) walks
// this to print every dispatchable id() value.
func Table() []Entry {
	return []Entry{
		{"empty", view.IDOf(view.Empty{})},
		{"plain_text", view.IDOf(view.PlainText{})},
		{"styled_text", view.IDOf(view.StyledText{})},
		{"color_swatch", view.IDOf(view.ColorSwatch{})},
		{"filled_shape", view.IDOf(view.FilledShape{})},
		{"spacer", view.IDOf(view.Spacer{})},
		{"renderer_view", view.IDOf(view.RendererView{})},
		{"button", view.IDOf(view.Button{})},
		{"toggle", view.IDOf(view.Toggle{})},
		{"text_field", view.IDOf(view.TextField{})},
		{"secure_field", view.IDOf(view.SecureField{})},
		{"slider", view.IDOf(view.Slider{})},
		{"stepper", view.IDOf(view.Stepper{})},
		{"picker", view.IDOf(view.Picker{})},
		{"color_picker", view.IDOf(view.ColorPicker{})},
		{"date_picker", view.IDOf(view.DatePicker{})},
		{"progress", view.IDOf(view.Progress{})},
		{"scroll_view", view.IDOf(view.ScrollView{})},
		{"container", view.IDOf(view.Container{})},
		{"fixed_container", view.IDOf(view.FixedContainer{})},
		{"navigation_stack", view.IDOf(view.NavigationStack{})},
		{"navigation_view", view.IDOf(view.NavigationView{})},
		{"tabs", view.IDOf(view.Tabs{})},
		{"list", view.IDOf(view.List{})},
		{"list_item", view.IDOf(view.ListItem{})},
		{"dynamic", view.IDOf(view.Dynamic{})},
	}
}

// Lookup returns the Entry for name, the reverse direction of Table,
// used by a cgo shim resolving a string the native side already has
// (e.g. from a hot-reloaded manifest) to the TypeID it should dispatch
// force_as_X against.
func Lookup(name string) (Entry, bool) {
	for _, e := range Table() {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
