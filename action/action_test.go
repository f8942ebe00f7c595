// SPDX-License-Identifier: Unlicense OR MIT

package action

import (
	"testing"

	"github.com/stretchr/testify/require"

	"waterui.dev/core/env"
	"waterui.dev/core/reactive"
	"waterui.dev/core/view"
)

// Scenario 6 (spec §8), driven through the Connector rather than the
// raw view.Dynamic: teardown must run before the next install, and the
// final detach tears down whatever is currently installed.
func TestConnectorTeardownBeforeInstall(t *testing.T) {
	var events []string
	install := func(v view.AnyView) {
		events = append(events, "install:"+v.TypeID().String())
	}
	teardown := func() {
		events = append(events, "teardown")
	}

	b := reactive.NewBinding(view.Erase(view.PlainText{Text: []byte("a")}))
	dyn := NewDynamic(b)

	c := NewConnector(install, teardown)
	g := c.Connect(dyn)

	require.Equal(t, []string{"install:" + view.IDOf(view.PlainText{}).String()}, events)

	b.Set(view.Erase(view.Button{}))
	require.Equal(t, []string{
		"install:" + view.IDOf(view.PlainText{}).String(),
		"teardown",
		"install:" + view.IDOf(view.Button{}).String(),
	}, events)

	g.Close()
	require.Equal(t, "teardown", events[len(events)-1])
}

func TestConnectorCloseIsIdempotent(t *testing.T) {
	var teardowns int
	b := reactive.NewBinding(view.Erase(view.Empty{}))
	c := NewConnector(func(view.AnyView) {}, func() { teardowns++ })
	g := c.Connect(NewDynamic(b))

	g.Close()
	g.Close()
	require.Equal(t, 1, teardowns)
}

func TestEventDispatcherReentrant(t *testing.T) {
	var depthSeen int
	var dispatcher *EventDispatcher
	fired := 0
	dispatcher = NewEventDispatcher(view.EventHook{
		Name: "tap",
		OnEvent: func(e env.Env) {
			fired++
			if fired < 3 {
				dispatcher.Fire(e)
			}
			if depthSeen < dispatcher.depth {
				depthSeen = dispatcher.depth
			}
		},
	})

	dispatcher.Fire(env.New())
	require.Equal(t, 3, fired)
	require.Equal(t, 0, dispatcher.depth)
}

func TestLifecycleHookDispatchesOncePerPhase(t *testing.T) {
	var appeared, disappeared int
	lc := NewOnLifecycle(view.LifecycleHook{
		OnAppear:    func(env.Env) { appeared++ },
		OnDisappear: func(env.Env) { disappeared++ },
	})

	lc.Appear(env.New())
	lc.Disappear(env.New())
	require.Equal(t, 1, appeared)
	require.Equal(t, 1, disappeared)
}

func TestRetainHandleDropsExactlyOnce(t *testing.T) {
	var drops int
	var lastPayload any
	h := NewRetainHandle(view.Retain{
		Payload: "conn",
		Drop: func(p any) {
			drops++
			lastPayload = p
		},
	})

	require.Equal(t, "conn", h.Payload())
	h.Release()
	h.Release()
	require.Equal(t, 1, drops)
	require.Equal(t, "conn", lastPayload)
}

func TestScopedGuardClosesAllOnce(t *testing.T) {
	var closed []int
	var s ScopedGuard
	for i := 0; i < 3; i++ {
		i := i
		s.Add(reactive.NewGuard(func() { closed = append(closed, i) }))
	}

	s.Close()
	s.Close()
	require.Equal(t, []int{0, 1, 2}, closed)
}

func TestScopedGuardClosesLateAddImmediately(t *testing.T) {
	var s ScopedGuard
	s.Close()

	closedNow := false
	s.Add(reactive.NewGuard(func() { closedNow = true }))
	require.True(t, closedNow)
}
