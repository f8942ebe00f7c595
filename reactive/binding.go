// SPDX-License-Identifier: Unlicense OR MIT

package reactive

// Source is satisfied by both Binding and Computed: anything a
// combinator can read and watch.
type Source[T any] interface {
	Read() T
	Watch(func(T, Metadata)) Guard
}

// Binding is an owned, mutable reactive cell. The zero value is not
// usable; construct with NewBinding.
type Binding[T any] struct {
	value    T
	watchers arena[T]
}

// NewBinding returns a fresh binding holding initial.
func NewBinding[T any](initial T) *Binding[T] {
	return &Binding[T]{value: initial}
}

// Read returns the current value.
func (b *Binding[T]) Read() T {
	return b.value
}

// Set overwrites the value and synchronously notifies every active
// watcher, in registration order, even if v equals the previous value
// (callers that want de-duplication should read through Distinct).
// Metadata is taken from the innermost active WithAnimation scope, or
// None.
func (b *Binding[T]) Set(v T) {
	b.SetWithAnimation(currentAnimation(), v)
}

// SetWithAnimation is Set with an explicit animation token, the
// "explicit token threaded through the binding mutation API" the
// core's design notes prefer over a bare dynamically-scoped global.
func (b *Binding[T]) SetWithAnimation(anim Animation, v T) {
	b.value = v
	if activeBatch != nil {
		activeBatch.touch(b)
		return
	}
	b.watchers.notify(v, Metadata{Animation: anim})
}

// Update replaces the value with fn applied to the current value.
func (b *Binding[T]) Update(fn func(T) T) {
	b.Set(fn(b.value))
}

// Watch registers cb, invoked synchronously on every change, and
// returns the Guard that unsubscribes it.
func (b *Binding[T]) Watch(cb func(T, Metadata)) Guard {
	return b.watchers.register(cb)
}

func (b *Binding[T]) flushBatch(meta Metadata) {
	b.watchers.notify(b.value, meta)
}

// WatchAny subscribes to change notifications without caring about the
// value, used by multi-dependency Computed constructors (New) that
// only need to know "something changed".
func (b *Binding[T]) WatchAny(cb func(Metadata)) Guard {
	return b.Watch(func(_ T, meta Metadata) { cb(meta) })
}
