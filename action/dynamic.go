// SPDX-License-Identifier: Unlicense OR MIT

package action

import (
	"waterui.dev/core/reactive"
	"waterui.dev/core/view"
)

// NewDynamic builds a view.Dynamic over content, a reactive source of
// erased views, ready for a backend to Connect to.
func NewDynamic(content reactive.Source[view.AnyView]) view.Dynamic {
	return view.Dynamic{Source: content}
}

// Connector drives view.Dynamic.Connect while enforcing the teardown
// discipline §4.C requires of the watcher: the previously delivered
// subtree is torn down (via teardown) before the next AnyView is
// installed (via install). Ownership of each emitted AnyView transfers
// to the Connector for exactly the span between install calls.
type Connector struct {
	install  func(view.AnyView)
	teardown func()
	have     bool
}

// NewConnector returns a Connector that calls install with every
// delivered view, first calling teardown (if one was previously
// installed) so the backend never holds two live subtrees for the
// same Dynamic at once.
func NewConnector(install func(view.AnyView), teardown func()) *Connector {
	return &Connector{install: install, teardown: teardown}
}

// Connect attaches the Connector to dyn and returns the Guard that
// detaches it. On detach, if a subtree is currently installed, its
// teardown is invoked once more so nothing outlives the connection.
func (c *Connector) Connect(dyn view.Dynamic) reactive.Guard {
	g := dyn.Connect(func(v view.AnyView) {
		if c.have {
			c.teardown()
		}
		c.have = true
		c.install(v)
	})
	return reactive.Join(g, reactive.NewGuard(func() {
		if c.have {
			c.teardown()
			c.have = false
		}
	}))
}
