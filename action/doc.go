// SPDX-License-Identifier: Unlicense OR MIT

// Package action implements WaterUI's action and lifecycle glue
// (§4.G): deferred callables wrapping an environment, the
// dynamic-content connector that drives a Dynamic view's teardown
// discipline, and the scoped guards a backend accumulates while
// subscribing several watchers to one composed view.
package action
