// SPDX-License-Identifier: Unlicense OR MIT

package ffi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandlesPinResolveDrop(t *testing.T) {
	var h Handles

	a := h.Pin("alpha")
	b := h.Pin("beta")
	require.Equal(t, 2, h.Len())

	v, err := h.Resolve(a)
	require.NoError(t, err)
	require.Equal(t, "alpha", v)

	h.Drop(a)
	require.Equal(t, 1, h.Len())

	_, err = h.Resolve(a)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUseAfterDrop))

	v, err = h.Resolve(b)
	require.NoError(t, err)
	require.Equal(t, "beta", v)
}

func TestHandlesDropIsIdempotent(t *testing.T) {
	var h Handles
	a := h.Pin(1)
	h.Drop(a)
	h.Drop(a) // must not panic or double-free the slot
	require.Equal(t, 0, h.Len())
}

func TestHandlesReusesSlotWithNewGeneration(t *testing.T) {
	var h Handles
	a := h.Pin("first")
	h.Drop(a)
	b := h.Pin("second")

	// b may or may not reuse a's index, but a must never resolve again.
	_, err := h.Resolve(a)
	require.Error(t, err)

	v, err := h.Resolve(b)
	require.NoError(t, err)
	require.Equal(t, "second", v)
}
