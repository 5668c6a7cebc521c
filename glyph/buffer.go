package glyph

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/lixenwraith/typewriter/palette"
)

// state is the style context applied to appended glyphs.
type state struct {
	color palette.RGBA
	style Style
	size  uint8
	font  uint8
}

// Buffer owns an ordered sequence of glyph slots plus the per-frame render
// state effects mutate. Append consumes square-bracket markup ([#hex],
// [name], [*], [ ] reset, [] undo, ...) into the style context; everything
// else becomes glyphs, one per grapheme cluster.
type Buffer struct {
	glyphs []Glyph
	widths []int8

	// Per-frame render state, reset by ResetFrame before effects run.
	frameColor []palette.RGBA
	offX, offY []float64
	scale      []float64
	rotation   []float64

	cur     state
	stack   []state
	initial state

	fonts []string

	// Resolve maps a bracketed color name to RGBA; defaults to the
	// built-in palette with hex fallback.
	Resolve func(key string) palette.RGBA
}

// NewBuffer creates an empty buffer whose base style uses defaultColor.
func NewBuffer(defaultColor palette.RGBA) *Buffer {
	s := state{color: defaultColor, size: SizeStepDefault}
	return &Buffer{
		cur:     s,
		initial: s,
		Resolve: func(key string) palette.RGBA {
			return palette.Parse(key, palette.Default)
		},
	}
}

// Len returns the number of glyph slots, newline marks included.
func (b *Buffer) Len() int {
	return len(b.glyphs)
}

// Glyph returns the packed glyph at index i.
func (b *Buffer) Glyph(i int) Glyph {
	return b.glyphs[i]
}

// CellWidth returns the terminal cell width of the glyph at index i.
func (b *Buffer) CellWidth(i int) int {
	return int(b.widths[i])
}

// IsNewline reports whether slot i is a newline mark.
func (b *Buffer) IsNewline(i int) bool {
	return b.glyphs[i].Char() == '\n'
}

// Reset discards all glyphs and restores the initial style context.
// Called before a full re-tokenization.
func (b *Buffer) Reset() {
	b.glyphs = b.glyphs[:0]
	b.widths = b.widths[:0]
	b.frameColor = b.frameColor[:0]
	b.offX = b.offX[:0]
	b.offY = b.offY[:0]
	b.scale = b.scale[:0]
	b.rotation = b.rotation[:0]
	b.stack = b.stack[:0]
	b.cur = b.initial
}

// PlainText returns the visible characters, one per slot, newlines included.
func (b *Buffer) PlainText() string {
	var sb strings.Builder
	sb.Grow(len(b.glyphs))
	for _, g := range b.glyphs {
		sb.WriteRune(g.Char())
	}
	return sb.String()
}

// Append consumes markup and appends the remaining text as glyphs.
// Unresolvable color tags are dropped without changing the current style.
func (b *Buffer) Append(markup string) {
	for i := 0; i < len(markup); {
		if markup[i] == '[' {
			if i+1 < len(markup) && markup[i+1] == '[' {
				// Escaped literal bracket.
				b.appendGlyph('[', 1)
				i += 2
				continue
			}
			end := strings.IndexByte(markup[i:], ']')
			if end < 0 {
				b.appendText(markup[i:])
				return
			}
			b.applyTag(markup[i+1 : i+end])
			i += end + 1
			continue
		}
		next := strings.IndexByte(markup[i:], '[')
		if next < 0 {
			b.appendText(markup[i:])
			return
		}
		b.appendText(markup[i : i+next])
		i += next
	}
}

// Newline appends a newline mark occupying one zero-width slot.
func (b *Buffer) Newline() {
	b.appendGlyph('\n', 0)
}

// FontIndex returns the slot for a font name, registering it on first use.
// At most 8 fonts are addressable; overflow maps to the default slot.
func (b *Buffer) FontIndex(name string) uint8 {
	for i, n := range b.fonts {
		if n == name {
			return uint8(i + 1)
		}
	}
	if len(b.fonts) >= 7 {
		return 0
	}
	b.fonts = append(b.fonts, name)
	return uint8(len(b.fonts))
}

// FontName returns the name registered for a font slot, "" for the default.
func (b *Buffer) FontName(idx uint8) string {
	if idx == 0 || int(idx) > len(b.fonts) {
		return ""
	}
	return b.fonts[idx-1]
}

// applyTag interprets one bracket tag. Every style/color change pushes the
// previous context so [] can undo it; reset and undo manage the stack
// themselves.
func (b *Buffer) applyTag(tag string) {
	switch {
	case tag == " ":
		b.stack = b.stack[:0]
		b.cur = b.initial
	case tag == "":
		if n := len(b.stack); n > 0 {
			b.cur = b.stack[n-1]
			b.stack = b.stack[:n-1]
		} else {
			b.cur = b.initial
		}
	case tag == "*":
		b.push()
		b.cur.style ^= StyleBold
	case tag == "/":
		b.push()
		b.cur.style ^= StyleOblique
	case tag == "_":
		b.push()
		b.cur.style ^= StyleUnderline
	case tag == "~":
		b.push()
		b.cur.style ^= StyleStrike
	case tag[0] == '%':
		b.push()
		b.cur.size = sizeStep(tag[1:])
	case tag[0] == '@':
		b.push()
		if name := tag[1:]; name == "" {
			b.cur.font = 0
		} else {
			b.cur.font = b.FontIndex(name)
		}
	default:
		c := b.Resolve(tag)
		if c == palette.Sentinel {
			return
		}
		b.push()
		b.cur.color = c
	}
}

func (b *Buffer) push() {
	b.stack = append(b.stack, b.cur)
}

// sizeStep converts a percent string to a size step, 25% per step.
func sizeStep(percent string) uint8 {
	if percent == "" {
		return SizeStepDefault
	}
	n := 0
	for i := 0; i < len(percent); i++ {
		if percent[i] < '0' || percent[i] > '9' {
			return SizeStepDefault
		}
		n = n*10 + int(percent[i]-'0')
	}
	step := (n + 12) / 25
	if step < 1 {
		step = 1
	}
	if step > SizeStepMax {
		step = SizeStepMax
	}
	return uint8(step)
}

// appendText appends plain text one grapheme cluster per glyph slot.
func (b *Buffer) appendText(text string) {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		cluster := gr.Str()
		if cluster == "\n" {
			b.Newline()
			continue
		}
		r := gr.Runes()[0]
		b.appendGlyph(r, runewidth.StringWidth(cluster))
	}
}

func (b *Buffer) appendGlyph(r rune, width int) {
	g := New(r, b.cur.color).
		WithStyle(b.cur.style).
		WithSizeStep(b.cur.size).
		WithFontIndex(b.cur.font)
	b.glyphs = append(b.glyphs, g)
	b.widths = append(b.widths, int8(width))
	b.frameColor = append(b.frameColor, b.cur.color)
	b.offX = append(b.offX, 0)
	b.offY = append(b.offY, 0)
	b.scale = append(b.scale, 1)
	b.rotation = append(b.rotation, 0)
}

// ResetFrame restores per-frame render state from the base glyphs.
// The host calls this once at the top of every frame, before effects apply.
func (b *Buffer) ResetFrame() {
	for i, g := range b.glyphs {
		b.frameColor[i] = g.Color()
		b.offX[i] = 0
		b.offY[i] = 0
		b.scale[i] = 1
		b.rotation[i] = 0
	}
}

// FrameColor returns the working color for this frame.
func (b *Buffer) FrameColor(i int) palette.RGBA {
	return b.frameColor[i]
}

// SetFrameColor replaces the working color for this frame.
func (b *Buffer) SetFrameColor(i int, c palette.RGBA) {
	b.frameColor[i] = c
}

// ScaleFrameAlpha multiplies this frame's alpha by factor.
func (b *Buffer) ScaleFrameAlpha(i int, factor float64) {
	b.frameColor[i] = b.frameColor[i].ScaleAlpha(factor)
}

// AddOffset accumulates a render offset in cell units.
func (b *Buffer) AddOffset(i int, dx, dy float64) {
	b.offX[i] += dx
	b.offY[i] += dy
}

// Offset returns the accumulated render offset.
func (b *Buffer) Offset(i int) (dx, dy float64) {
	return b.offX[i], b.offY[i]
}

// MulScale multiplies this frame's render scale.
func (b *Buffer) MulScale(i int, factor float64) {
	b.scale[i] *= factor
}

// RenderScale returns this frame's render scale multiplier.
func (b *Buffer) RenderScale(i int) float64 {
	return b.scale[i]
}

// AddRotation accumulates rotation in degrees.
func (b *Buffer) AddRotation(i int, degrees float64) {
	b.rotation[i] += degrees
}

// Rotation returns the accumulated rotation in degrees.
func (b *Buffer) Rotation(i int) float64 {
	return b.rotation[i]
}
