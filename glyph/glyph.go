// Package glyph provides the packed per-glyph encoding and the glyph buffer
// that rendering and effects operate on. A glyph packs its character, style
// flags, size step, font index and RGBA color into a single uint64; mutable
// per-frame render state (offset, scale, rotation) lives in parallel arrays
// on the Buffer so effects never touch the base encoding.
package glyph

import "github.com/lixenwraith/typewriter/palette"

// Glyph is a packed glyph slot.
//
// Bit layout:
//
//	 0..20  character (rune)
//	21..24  style flags (bold, oblique, underline, strike)
//	25..28  size step, 0..15 in 25% increments (4 = 100%)
//	29..31  font index
//	32..63  RGBA color
type Glyph uint64

// Style holds the four style flag bits.
type Style uint8

const (
	StyleBold Style = 1 << iota
	StyleOblique
	StyleUnderline
	StyleStrike
)

const (
	charMask   = 0x1FFFFF
	styleShift = 21
	sizeShift  = 25
	fontShift  = 29
	colorShift = 32

	// SizeStepDefault is the 100% size step.
	SizeStepDefault = 4
	// SizeStepMax is the largest encodable size step (375%).
	SizeStepMax = 15
)

// New packs a character and color into a glyph at default size and style.
func New(r rune, c palette.RGBA) Glyph {
	return Glyph(r&charMask) |
		Glyph(SizeStepDefault)<<sizeShift |
		Glyph(c)<<colorShift
}

// Char returns the glyph's character.
func (g Glyph) Char() rune {
	return rune(g & charMask)
}

// Color returns the packed RGBA color.
func (g Glyph) Color() palette.RGBA {
	return palette.RGBA(g >> colorShift)
}

// WithColor returns g with the color bits replaced.
func (g Glyph) WithColor(c palette.RGBA) Glyph {
	return g&0xFFFFFFFF | Glyph(c)<<colorShift
}

// Style returns the style flag bits.
func (g Glyph) Style() Style {
	return Style(g>>styleShift) & 0xF
}

// WithStyle returns g with the style flags replaced.
func (g Glyph) WithStyle(s Style) Glyph {
	return g&^(0xF<<styleShift) | Glyph(s&0xF)<<styleShift
}

// SizeStep returns the size step, 0..15.
func (g Glyph) SizeStep() uint8 {
	return uint8(g>>sizeShift) & 0xF
}

// WithSizeStep returns g with the size step replaced.
func (g Glyph) WithSizeStep(step uint8) Glyph {
	if step > SizeStepMax {
		step = SizeStepMax
	}
	return g&^(0xF<<sizeShift) | Glyph(step)<<sizeShift
}

// SizeScale returns the drawing scale encoded by the size step (1.0 = 100%).
func (g Glyph) SizeScale() float64 {
	return float64(g.SizeStep()) * 0.25
}

// FontIndex returns the font slot, 0..7.
func (g Glyph) FontIndex() uint8 {
	return uint8(g>>fontShift) & 0x7
}

// WithFontIndex returns g with the font slot replaced.
func (g Glyph) WithFontIndex(idx uint8) Glyph {
	return g&^(0x7<<fontShift) | Glyph(idx&0x7)<<fontShift
}
