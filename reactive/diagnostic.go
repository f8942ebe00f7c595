// SPDX-License-Identifier: Unlicense OR MIT

package reactive

import "log"

// logDiagnostic reports a recoverable-error diagnostic (§7:
// ReentrantCompute, WatcherPanic). The core never propagates these as
// values; it logs and falls back to a designated-safe behavior.
func logDiagnostic(format string, args ...any) {
	log.Printf(format, args...)
}
