// SPDX-License-Identifier: Unlicense OR MIT

package reactive

// Computed is a read-only reactive cell, derived from bindings/other
// computeds or wrapping a constant. It memoizes its current value and
// recomputes when an upstream dependency reports a change; Drop
// releases every internal subscription.
type Computed[T any] struct {
	value     T
	computing bool
	reentered bool
	recompute func() T
	watchers  arena[T]
	upstream  []Guard
}

// Watchable is satisfied by any reactive source whose value type does
// not matter to the observer, only the fact that it changed. New uses
// this to wire a Computed to an arbitrary number of heterogeneous
// dependencies, the way a view's body(env) may depend on several
// unrelated bindings and environment-resolved computeds at once.
type Watchable interface {
	WatchAny(func(Metadata)) Guard
}

// New builds a Computed from an arbitrary recompute function and an
// explicit dependency list, realizing §4.A's "computed(fn: env? → T)"
// for the general case where Map/Zip/Distinct's fixed arity does not
// fit (a view resolving several environment tokens at once, say).
func New[T any](recompute func() T, deps ...Watchable) *Computed[T] {
	c := &Computed[T]{recompute: recompute}
	c.value = c.evaluate()
	for _, d := range deps {
		g := d.WatchAny(func(meta Metadata) { c.push(meta) })
		c.upstream = append(c.upstream, g)
	}
	return c
}

// Constant returns a Computed that never changes.
func Constant[T any](v T) *Computed[T] {
	return &Computed[T]{value: v, recompute: func() T { return v }}
}

// Map derives a Computed[U] from src by applying fn. It recomputes
// (and pushes to its own watchers) on every change src reports; the
// spec allows a purely lazy, read-triggered re-evaluation as an
// internal optimization, but this core recomputes eagerly on push so
// that a chain of Map calls observes strictly the same order the
// Reactivity property in §8 requires, which a deferred recompute would
// make harder to reason about for multiple downstream watchers.
func Map[T, U any](src Source[T], fn func(T) U) *Computed[U] {
	c := &Computed[U]{recompute: func() U { return fn(src.Read()) }}
	c.value = c.evaluate()
	g := src.Watch(func(_ T, meta Metadata) { c.push(meta) })
	c.upstream = append(c.upstream, g)
	return c
}

// Zip combines two sources into one Computed via fn.
func Zip[A, B, R any](a Source[A], b Source[B], fn func(A, B) R) *Computed[R] {
	c := &Computed[R]{recompute: func() R { return fn(a.Read(), b.Read()) }}
	c.value = c.evaluate()
	ga := a.Watch(func(_ A, meta Metadata) { c.push(meta) })
	gb := b.Watch(func(_ B, meta Metadata) { c.push(meta) })
	c.upstream = append(c.upstream, ga, gb)
	return c
}

// Distinct suppresses pushes that do not change the comparable value,
// per §4.A's "signal.distinct()" combinator. The value memoized at
// construction is never treated as "already observed": it was never
// delivered to a watcher, so the first post-construction notification
// must always forward regardless of whether it happens to equal that
// cached value.
func Distinct[T comparable](src Source[T]) *Computed[T] {
	c := &Computed[T]{recompute: func() T { return src.Read() }}
	c.value = c.evaluate()
	var last T
	delivered := false
	g := src.Watch(func(_ T, meta Metadata) {
		v := c.evaluate()
		if delivered && v == last {
			return
		}
		last = v
		delivered = true
		c.watchers.notify(v, meta)
	})
	c.upstream = append(c.upstream, g)
	return c
}

// evaluate runs recompute, detecting reentrant self-reads (§7:
// ReentrantCompute): if recompute tries to Read this same Computed
// while it is already being recomputed, the outer evaluation keeps its
// previous cached value instead of recursing.
func (c *Computed[T]) evaluate() T {
	if c.computing {
		logDiagnostic("reactive: reentrant compute detected, keeping previous value")
		return c.value
	}
	c.computing = true
	v := c.recompute()
	c.computing = false
	if c.reentered {
		c.reentered = false
		return c.value
	}
	c.value = v
	return v
}

func (c *Computed[T]) push(meta Metadata) {
	v := c.evaluate()
	c.watchers.notify(v, meta)
}

// Read returns the current (possibly cached) value. A Read made from
// inside this Computed's own recompute marks that evaluation as
// reentrant, so evaluate discards its result.
func (c *Computed[T]) Read() T {
	if c.computing {
		logDiagnostic("reactive: reentrant compute detected, keeping previous value")
		c.reentered = true
		return c.value
	}
	return c.value
}

// Watch registers cb for every future change.
func (c *Computed[T]) Watch(cb func(T, Metadata)) Guard {
	return c.watchers.register(cb)
}

// Drop releases every upstream subscription this Computed holds.
func (c *Computed[T]) Drop() {
	for _, g := range c.upstream {
		g.Close()
	}
	c.upstream = nil
}

func (c *Computed[T]) flushBatch(meta Metadata) {
	c.watchers.notify(c.evaluate(), meta)
}

// WatchAny subscribes to change notifications without caring about the
// value. See Watchable.
func (c *Computed[T]) WatchAny(cb func(Metadata)) Guard {
	return c.Watch(func(_ T, meta Metadata) { cb(meta) })
}
