// SPDX-License-Identifier: Unlicense OR MIT

package style

import "log"

func logMissingEnvironment(what string) {
	log.Printf("style: resolve_%s consulted a key with no value and no documented default, using fallback", what)
}
