// SPDX-License-Identifier: Unlicense OR MIT

package view

import (
	"waterui.dev/core/env"
	"waterui.dev/core/reactive"
	"waterui.dev/core/wlayout"
)

// ScrollView wraps content scrollable along axis. Per §4.D, the
// backend must forward an unbounded proposal to content along the
// scroll axis(es).
type ScrollView struct {
	Stretched
	Axis    wlayout.Axis
	Both    bool // scrollable along both axes, ignoring Axis
	Content View
}

func (s ScrollView) Body(env.Env) View { return s }

// Container pairs an external Layout with a reactively-produced child
// sequence, per §4.D's "Layout container: children are a handle to a
// reactive sequence of views produced at render time."
type Container struct {
	Stretched
	Layout   wlayout.Layout
	Children *reactive.Computed[[]AnyView]
}

func (c Container) Body(env.Env) View { return c }

// FixedContainer pairs an external Layout with a statically known
// array of view handles.
type FixedContainer struct {
	Stretched
	Layout   wlayout.Layout
	Children []AnyView
}

func (c FixedContainer) Body(env.Env) View { return c }

// NavigationStack hosts a push/pop stack of views rooted at Root.
type NavigationStack struct {
	Stretched
	Root  View
	Path  *reactive.Binding[[]AnyView]
}

func (n NavigationStack) Body(env.Env) View { return n }

// NavigationView is a single navigable screen with a title and
// trailing/leading bar content.
type NavigationView struct {
	Stretched
	Title   View
	Content View
	Leading View
	Trailing View
}

func (n NavigationView) Body(env.Env) View { return n }

// Tab is one entry of a Tabs terminal.
type Tab struct {
	Label   View
	Icon    View
	Content View
}

// Tabs hosts a tab-bar-selected set of content views.
type Tabs struct {
	Stretched
	Tabs     []Tab
	Selected *reactive.Binding[int]
}

func (t Tabs) Body(env.Env) View { return t }

// List hosts a reactively-produced, scrollable sequence of ListItems.
type List struct {
	Stretched
	Items *reactive.Computed[[]AnyView]
}

func (l List) Body(env.Env) View { return l }

// ListItem is one row of a List, optionally selectable.
type ListItem struct {
	Stretched
	Content    View
	Selectable bool
	OnSelect   Action
}

func (l ListItem) Body(env.Env) View { return l }
