// SPDX-License-Identifier: Unlicense OR MIT

package view

import (
	"testing"

	"waterui.dev/core/env"
	"waterui.dev/core/reactive"
)

// Universal property (§8): for all views v, v.type_id() is stable
// between view_id calls.
func TestTypeIDIsStable(t *testing.T) {
	a := Erase(PlainText{Text: []byte("x")})
	b := Erase(PlainText{Text: []byte("y")})
	if a.TypeID() != b.TypeID() {
		t.Fatal("two PlainText values erased separately must share a TypeID")
	}

	other := Erase(Empty{})
	if a.TypeID() == other.TypeID() {
		t.Fatal("distinct terminal types must not share a TypeID")
	}
}

// Scenario 4 (spec §8): type erasure. Build a Button whose action
// increments a counter binding; force_as_button after matching
// button_id(); invoke the extracted action; expect exactly one
// increment.
func TestScenarioButtonForceAs(t *testing.T) {
	counter := reactive.NewBinding(0)
	action := NewAction(func(env.Env) {
		counter.Update(func(x int) int { return x + 1 })
	})

	btn := Button{Label: PlainText{Text: []byte("ok")}, Action: action}
	erased := Erase(btn)

	wantID := IDOf(Button{})
	if erased.TypeID() != wantID {
		t.Fatal("button_id() mismatch before downcast")
	}

	extracted := terminalOf[Button](erased)
	var seen int
	g := counter.Watch(func(v int, _ reactive.Metadata) { seen = v })
	defer g.Close()

	extracted.Action.Invoke(env.New())

	if seen != 1 {
		t.Fatalf("counter saw %d, want 1", seen)
	}
}

func TestForceAsWrongTypePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on TypeMismatch")
		}
	}()
	erased := Erase(Empty{})
	terminalOf[Button](erased)
}

func TestAsCheckedDowncast(t *testing.T) {
	erased := Erase(Empty{})
	if _, ok := As[Button](erased); ok {
		t.Fatal("expected As[Button] to fail on an Empty-backed AnyView")
	}
	if _, ok := As[Empty](erased); !ok {
		t.Fatal("expected As[Empty] to succeed")
	}
}

func TestMetadataIsLayoutTransparent(t *testing.T) {
	child := PlainText{Stretched: Stretched{Axis: StretchBoth}, Text: []byte("x")}
	m := Metadata[Border]{Child: child, Tag: Border{Width: 1}}

	body := m.Body(env.New())
	if body.(PlainText).Axis != StretchBoth {
		t.Fatal("metadata body must preserve the child's stretch axis")
	}
}

// Scenario 6 (spec §8): dynamic swap.
func TestScenarioDynamicSwap(t *testing.T) {
	b := reactive.NewBinding(Erase(PlainText{Text: []byte("a")}))
	dyn := Dynamic{Source: b}

	var seenIDs []TypeID
	g := dyn.Connect(func(v AnyView) {
		seenIDs = append(seenIDs, v.TypeID())
	})
	defer g.Close()

	b.Set(Erase(Button{Label: PlainText{Text: []byte("go")}}))

	if len(seenIDs) != 2 {
		t.Fatalf("got %d deliveries, want 2", len(seenIDs))
	}
	if seenIDs[0] != IDOf(PlainText{}) {
		t.Fatal("first delivery should carry the text view's id")
	}
	if seenIDs[1] != IDOf(Button{}) {
		t.Fatal("second delivery should carry the button's id")
	}
}
