// SPDX-License-Identifier: Unlicense OR MIT

package reactive

import "testing"

func TestComputedMapTracksBinding(t *testing.T) {
	b := NewBinding(1)
	c := Map(b, func(x int) int { return x * 10 })
	if c.Read() != 10 {
		t.Fatalf("Read() = %d, want 10", c.Read())
	}
	b.Set(2)
	if c.Read() != 20 {
		t.Fatalf("Read() = %d, want 20", c.Read())
	}
}

// Reactivity property (§8): for c = map(b, f), after b.set(v1);
// b.set(v2) with f(v1) != f(v2), the registered watcher on c receives
// f(v2) last.
func TestReactivityPropertyOrdering(t *testing.T) {
	b := NewBinding(0)
	c := Map(b, func(x int) int { return x * x })
	var last int
	g := c.Watch(func(v int, _ Metadata) { last = v })
	defer g.Close()

	b.Set(3)
	b.Set(4)

	if last != 16 {
		t.Fatalf("last = %d, want 16", last)
	}
}

func TestZipCombinesTwoSources(t *testing.T) {
	a := NewBinding(2)
	b := NewBinding(3)
	sum := Zip(a, b, func(x, y int) int { return x + y })
	if sum.Read() != 5 {
		t.Fatalf("Read() = %d, want 5", sum.Read())
	}
	a.Set(10)
	if sum.Read() != 13 {
		t.Fatalf("Read() = %d, want 13", sum.Read())
	}
}

func TestComputedDropReleasesUpstream(t *testing.T) {
	b := NewBinding(1)
	c := Map(b, func(x int) int { return x + 1 })
	calls := 0
	g := c.Watch(func(int, Metadata) { calls++ })
	defer g.Close()

	c.Drop()
	b.Set(2) // c no longer subscribed; its watcher must not fire
	if calls != 0 {
		t.Fatalf("calls = %d, want 0 after Drop", calls)
	}
}

func TestReentrantComputeKeepsPreviousValue(t *testing.T) {
	var self *Computed[int]
	self = New(func() int {
		if self != nil {
			// Reading self while it is mid-recompute must not recurse;
			// it should return the previous cached value instead.
			return self.Read() + 1
		}
		return 0
	})
	// Construction evaluates once with self == nil, yielding 0. A
	// second, explicit reentrant probe exercises the guard directly.
	got := self.evaluate()
	if got != self.value {
		t.Fatalf("reentrant evaluate should stabilize at the cached value")
	}
}

func TestConstantNeverChanges(t *testing.T) {
	c := Constant("x")
	calls := 0
	g := c.Watch(func(string, Metadata) { calls++ })
	defer g.Close()
	if c.Read() != "x" {
		t.Fatalf("Read() = %q, want x", c.Read())
	}
	if calls != 0 {
		t.Fatalf("Constant must never notify")
	}
}
