// SPDX-License-Identifier: Unlicense OR MIT

package env

import "reflect"

// Env is a persistent, type-keyed context map. The zero value is the
// empty environment. With returns a new Env that structurally shadows
// the receiver; the receiver, and anyone still holding it, continues
// to observe the old state. Cloning an Env is an O(1) pointer copy.
type Env struct {
	entry *node
}

type node struct {
	key   reflect.Type
	value any
	next  *node
}

// New returns the empty environment.
func New() Env {
	return Env{}
}

// typeKey derives the map key for T. Using reflect.TypeOf(&zero).Elem()
// rather than reflect.TypeOf(value) keeps the key stable even when the
// stored value is a nil interface or a nil pointer.
func typeKey[T any]() reflect.Type {
	var zero T
	return reflect.TypeOf(&zero).Elem()
}

// With returns a new Env with T shadowed by value. The parent chain is
// shared, not copied.
func With[T any](e Env, value T) Env {
	return Env{entry: &node{key: typeKey[T](), value: value, next: e.entry}}
}

// Get looks up the nearest value of type T, walking outward from the
// innermost With call. ok is false if no T has ever been installed.
func Get[T any](e Env) (T, bool) {
	key := typeKey[T]()
	for n := e.entry; n != nil; n = n.next {
		if n.key == key {
			v, ok := n.value.(T)
			return v, ok
		}
	}
	var zero T
	return zero, false
}

// MustGet looks up T, returning fallback if absent. Views that
// need the spec's MissingEnvironment fallback behavior (body returns
// Empty and logs) use Get directly instead; MustGet is for call sites
// that have a documented default for T.
func MustGet[T any](e Env, fallback T) T {
	if v, ok := Get[T](e); ok {
		return v
	}
	return fallback
}
