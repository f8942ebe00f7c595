// SPDX-License-Identifier: Unlicense OR MIT

package style

import (
	"golang.org/x/exp/slices"
	"golang.org/x/text/unicode/bidi"
)

// RunStyle is (font handle, italic, underline, strikethrough, optional
// foreground color handle, optional background color handle), per
// §3's "Styled text" entity.
type RunStyle struct {
	Font          FontHandle
	Italic        bool
	Underline     bool
	Strikethrough bool
	Foreground    *ColorHandle
	Background    *ColorHandle
}

// Run is one (text bytes, style) chunk.
type Run struct {
	Text  []byte
	Style RunStyle
}

// Text is a finite, order-preserving sequence of styled chunks.
type Text struct {
	runs []Run
}

// NewText builds a Text from runs, copying the slice so later mutation
// of the caller's slice cannot retroactively change a constructed
// value (views are otherwise single-use/immutable once composed).
func NewText(runs ...Run) Text {
	return Text{runs: slices.Clone(runs)}
}

// Runs returns the sequence in insertion order.
func (t Text) Runs() []Run {
	return slices.Clone(t.runs)
}

// Append returns a new Text with run appended.
func (t Text) Append(run Run) Text {
	return Text{runs: append(slices.Clone(t.runs), run)}
}

// Direction reports the bidi paragraph direction implied by the
// concatenated run text, so a backend can choose a shaping direction
// before it has resolved any font.
func (t Text) Direction() bidi.Direction {
	var p bidi.Paragraph
	var buf []byte
	for _, r := range t.runs {
		buf = append(buf, r.Text...)
	}
	p.SetBytes(buf)
	dir, err := p.Direction()
	if err != nil {
		return bidi.LeftToRight
	}
	return dir
}

// PlainConcat returns the concatenation of every run's text, ignoring
// style — the UTF-8 byte payload a Plain text terminal would carry.
func (t Text) PlainConcat() []byte {
	var buf []byte
	for _, r := range t.runs {
		buf = append(buf, r.Text...)
	}
	return buf
}
