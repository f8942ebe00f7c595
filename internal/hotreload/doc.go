// SPDX-License-Identifier: Unlicense OR MIT

// Package hotreload backs the two opaque setters named in spec.md §6:
// a directory watch (fsnotify) and a host:port dial target. Neither
// format nor protocol is documented to callers of the public setters;
// this package only needs to exist so that something concrete answers
// "watch this directory" and "reach this address" the way gio's
// platform event loops answer analogous opaque OS requests.
package hotreload
