// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux || darwin || freebsd || openbsd
// +build linux darwin freebsd openbsd

package hotreload

import (
	"net"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// dialTimeout dials addr with TCP_NODELAY set on the resulting socket,
// the same low-level knob gio's platform event loop files tune per
// platform via golang.org/x/sys — here so a hot-reloaded artifact
// handoff isn't held up by Nagle buffering on a loopback socket.
func dialTimeout(addr string, timeout time.Duration) (net.Conn, error) {
	d := net.Dialer{
		Timeout: timeout,
		Control: func(_, _ string, c syscall.RawConn) error {
			var sockErr error
			err := c.Control(func(fd uintptr) {
				sockErr = unix.SetsockoptInt(int(fd), unix.IPPROTO_TCP, unix.TCP_NODELAY, 1)
			})
			if err != nil {
				return err
			}
			return sockErr
		},
	}
	return d.Dial("tcp", addr)
}
