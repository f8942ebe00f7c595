// SPDX-License-Identifier: Unlicense OR MIT

package hotreload

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherFiresOnWrite(t *testing.T) {
	dir := t.TempDir()

	w := NewWatcher()
	require.NoError(t, w.SetDir(dir))

	fired := make(chan string, 1)
	w.OnReload(func(event string) { fired <- event })

	require.NoError(t, w.Start())
	defer w.Stop()

	target := filepath.Join(dir, "libwaterui.so")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))

	select {
	case ev := <-fired:
		require.Contains(t, ev, "libwaterui.so")
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reload notification")
	}
}

func TestWatcherDialWithoutAddrErrors(t *testing.T) {
	w := NewWatcher()
	_, err := w.Dial(100 * time.Millisecond)
	require.Error(t, err)
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	w := NewWatcher()
	require.NoError(t, w.Stop())
	require.NoError(t, w.SetDir(t.TempDir()))
	require.NoError(t, w.Start())
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}
