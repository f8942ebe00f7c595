// SPDX-License-Identifier: Unlicense OR MIT

package view

import (
	"fmt"

	"waterui.dev/core/env"
)

// View is the core's only composition contract: produce a body in an
// environment. Bodies may be either another View (recursion continues)
// or one of the recognized terminal shapes (§3). Views are single-use:
// calling Body consumes it — callers must not call Body twice on the
// same value.
type View interface {
	Body(e env.Env) View
}

// Empty is the zero-sized, non-interactive placeholder a backend must
// treat specially: it is what a view returns when it cannot produce a
// useful body for the requesting backend (§4.C), and what the core
// substitutes for a view that hit a MissingEnvironment diagnostic
// (§7).
type Empty struct{}

func (Empty) Body(env.Env) View { return Empty{} }

// AnyView is the type-erased handle used to cross the FFI boundary and
// to let heterogeneous views (e.g. Dynamic's emitted content, a
// Button's label) sit in the same field. It carries a stable TypeID
// for O(1) downcasting.
type AnyView struct {
	id      TypeID
	payload View
}

// Erase wraps v, computing its TypeID once.
func Erase(v View) AnyView {
	if v == nil {
		v = Empty{}
	}
	return AnyView{id: IDOf(v), payload: v}
}

// TypeID returns the erased view's stable type identifier.
func (a AnyView) TypeID() TypeID {
	return a.id
}

// Body extracts the body of the wrapped view in e, re-erasing the
// result. Per View's single-use contract, this consumes a; calling it
// twice on the same AnyView observes whatever the wrapped View's own
// Body does on a second call (most terminals are idempotent, but a
// caller should not rely on it).
func (a AnyView) Body(e env.Env) AnyView {
	return Erase(a.payload.Body(e))
}

// terminalOf is the unchecked downcast; it panics with a
// TypeMismatch-flavored message (§7) when invoked against a mismatched
// payload. This is
// the Go-level analogue of the FFI's unchecked force_as_X contract:
// the caller is required to have checked the type id first, and
// getting it wrong is a programming error that may abort.
func terminalOf[T View](a AnyView) T {
	v, ok := a.payload.(T)
	if !ok {
		panic(fmt.Sprintf("waterui/view: TypeMismatch: force_as %T on a view carrying %T", v, a.payload))
	}
	return v
}

// As attempts the checked downcast a backend would normally perform
// only after comparing TypeID against the relevant X_id() — the safe
// sibling of terminalOf.
func As[T View](a AnyView) (T, bool) {
	v, ok := a.payload.(T)
	return v, ok
}
