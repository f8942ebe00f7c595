// SPDX-License-Identifier: Unlicense OR MIT

// Package wlayout implements WaterUI's two-phase layout negotiation
// protocol (propose/size/place): the Layout interface that package
// view's container terminals carry alongside their child set, and the
// Stack layout.
//
// The vocabulary here — Constraints-like ProposalSize, Dimensions-like
// Size, and a device-independent unit — is lifted directly from gio's
// layout package (layout/layout.go, layout/flex.go) and reworked from
// gio's single-phase immediate-mode Constrain into the spec's explicit
// three-function contract: propose, size, then place, all pure
// functions over a child metadata sequence rather than closures that
// draw as a side effect.
package wlayout
