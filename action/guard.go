// SPDX-License-Identifier: Unlicense OR MIT

package action

import "waterui.dev/core/reactive"

// ScopedGuard accumulates the reactive.Guards a backend collects while
// subscribing several watchers to one composed view (a terminal with
// multiple bound properties, say, or a Container's per-child
// connections) so the whole subtree can be detached with one call.
type ScopedGuard struct {
	guards []reactive.Guard
	closed bool
}

// Add appends g to the scope. Adding to an already-closed scope closes
// g immediately instead of leaking it.
func (s *ScopedGuard) Add(g reactive.Guard) {
	if s.closed {
		g.Close()
		return
	}
	s.guards = append(s.guards, g)
}

// Close detaches every accumulated guard, in the order added, and
// marks the scope closed. Safe to call more than once.
func (s *ScopedGuard) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for _, g := range s.guards {
		g.Close()
	}
	s.guards = nil
}

// Guard returns a reactive.Guard whose Close calls s.Close, letting a
// ScopedGuard stand in anywhere a single Guard is expected (e.g. as the
// return value of a composed Connect helper).
func (s *ScopedGuard) Guard() reactive.Guard {
	return reactive.NewGuard(s.Close)
}
