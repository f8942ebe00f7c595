// SPDX-License-Identifier: Unlicense OR MIT

package reactive

import (
	"strings"
	"testing"
)

// Scenario 1 (spec §8): counter. b.update three times yields watcher
// sequence [1,2,3] with None metadata each time.
func TestCounterScenario(t *testing.T) {
	b := NewBinding(0)
	var seen []int
	var metas []Animation
	g := b.Watch(func(v int, meta Metadata) {
		seen = append(seen, v)
		metas = append(metas, meta.Animation)
	})
	defer g.Close()

	for i := 0; i < 3; i++ {
		b.Update(func(x int) int { return x + 1 })
	}

	if len(seen) != 3 || seen[0] != 1 || seen[1] != 2 || seen[2] != 3 {
		t.Fatalf("unexpected sequence: %v", seen)
	}
	for _, m := range metas {
		if m != None {
			t.Fatalf("expected None metadata, got %v", m)
		}
	}
}

// Universal property: after b.set(v), b.read() = v.
func TestSetThenRead(t *testing.T) {
	b := NewBinding("")
	for _, v := range []string{"a", "bb", "ccc"} {
		b.Set(v)
		if got := b.Read(); got != v {
			t.Fatalf("Read() = %q, want %q", got, v)
		}
	}
}

// Guard property: after dropping a guard, the watcher never fires
// again.
func TestGuardUnsubscribes(t *testing.T) {
	b := NewBinding(0)
	calls := 0
	g := b.Watch(func(int, Metadata) { calls++ })
	b.Set(1)
	g.Close()
	b.Set(2)
	b.Set(3)
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestGuardCloseIsIdempotent(t *testing.T) {
	b := NewBinding(0)
	g := b.Watch(func(int, Metadata) {})
	g.Close()
	g.Close() // must not panic
}

func TestSetNotifiesEvenOnEqualValue(t *testing.T) {
	b := NewBinding("a")
	calls := 0
	g := b.Watch(func(string, Metadata) { calls++ })
	defer g.Close()
	b.Set("a")
	b.Set("a")
	if calls != 2 {
		t.Fatalf("calls = %d, want 2 (set must notify even with an equal value)", calls)
	}
}

func TestWatchersFireInRegistrationOrder(t *testing.T) {
	b := NewBinding(0)
	var order []int
	g1 := b.Watch(func(int, Metadata) { order = append(order, 1) })
	defer g1.Close()
	g2 := b.Watch(func(int, Metadata) { order = append(order, 2) })
	defer g2.Close()
	g3 := b.Watch(func(int, Metadata) { order = append(order, 3) })
	defer g3.Close()

	b.Set(1)
	if got := order; len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestWatcherPanicIsolated(t *testing.T) {
	b := NewBinding(0)
	var survivorCalls int
	g1 := b.Watch(func(int, Metadata) { panic("boom") })
	defer g1.Close()
	g2 := b.Watch(func(int, Metadata) { survivorCalls++ })
	defer g2.Close()

	b.Set(1)
	b.Set(2)

	if survivorCalls != 2 {
		t.Fatalf("survivor calls = %d, want 2", survivorCalls)
	}
}

func TestWithAnimationScope(t *testing.T) {
	b := NewBinding(0)
	var got Animation
	g := b.Watch(func(_ int, meta Metadata) { got = meta.Animation })
	defer g.Close()

	WithAnimation(Linear(300), func() {
		b.Set(1)
	})
	if got.Kind != KindLinear || got.DurationMS != 300 {
		t.Fatalf("got %+v, want Linear(300)", got)
	}

	b.Set(2)
	if got != None {
		t.Fatalf("outside a scope metadata should be None, got %+v", got)
	}
}

func TestBatchFiresOncePerBinding(t *testing.T) {
	a := NewBinding(0)
	b := NewBinding(0)
	var aCalls, bCalls int
	ga := a.Watch(func(int, Metadata) { aCalls++ })
	defer ga.Close()
	gb := b.Watch(func(int, Metadata) { bCalls++ })
	defer gb.Close()

	Batch(Default, func() {
		a.Set(1)
		a.Set(2)
		a.Set(3)
		b.Set(1)
	})

	if aCalls != 1 || bCalls != 1 {
		t.Fatalf("aCalls=%d bCalls=%d, want 1,1", aCalls, bCalls)
	}
	if a.Read() != 3 {
		t.Fatalf("a.Read() = %d, want 3", a.Read())
	}
}

func TestDistinctMapScenario(t *testing.T) {
	// Scenario 2 (spec §8): distinct map.
	b := NewBinding("a")
	c := Distinct[string](Map[string, string](b, strings.ToUpper))
	var seen []string
	g := c.Watch(func(v string, _ Metadata) { seen = append(seen, v) })
	defer g.Close()

	b.Set("a")
	b.Set("A")
	b.Set("B")

	if len(seen) != 2 || seen[0] != "A" || seen[1] != "B" {
		t.Fatalf("seen = %v, want [A B]", seen)
	}
}
