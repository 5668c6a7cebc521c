// Package palette resolves color names and descriptions to packed RGBA values.
//
// Resolution is layered: a pluggable Resolver maps names to colors, and Parse
// falls back to hex notation when the resolver finds nothing. Failure is
// reported through the Sentinel value rather than an error, so malformed
// markup degrades instead of aborting.
package palette

// RGBA stores a color as 0xRRGGBBAA, decoupled from any rendering backend.
type RGBA uint32

// Sentinel is the reserved "no color resolved" value. It decodes as a fully
// transparent, very dark blue, deliberately distinct from transparent black
// so callers can tell a failed lookup from a legitimate zero color.
const Sentinel RGBA = 256

// Channel accessors.

func (c RGBA) R() uint8 { return uint8(c >> 24) }
func (c RGBA) G() uint8 { return uint8(c >> 16) }
func (c RGBA) B() uint8 { return uint8(c >> 8) }
func (c RGBA) A() uint8 { return uint8(c) }

// FromRGBA packs four 8-bit channels into an RGBA value.
func FromRGBA(r, g, b, a uint8) RGBA {
	return RGBA(r)<<24 | RGBA(g)<<16 | RGBA(b)<<8 | RGBA(a)
}

// WithAlpha returns c with the alpha channel replaced.
func (c RGBA) WithAlpha(a uint8) RGBA {
	return c&^0xFF | RGBA(a)
}

// ScaleAlpha multiplies the alpha channel by factor, clamped to [0, 1].
func (c RGBA) ScaleAlpha(factor float64) RGBA {
	if factor <= 0 {
		return c.WithAlpha(0)
	}
	if factor >= 1 {
		return c
	}
	return c.WithAlpha(uint8(float64(c.A()) * factor))
}

// Lerp interpolates toward dst by t in [0, 1], per channel.
func (c RGBA) Lerp(dst RGBA, t float64) RGBA {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return dst
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return FromRGBA(
		lerp(c.R(), dst.R()),
		lerp(c.G(), dst.G()),
		lerp(c.B(), dst.B()),
		lerp(c.A(), dst.A()),
	)
}

// Scale multiplies the color channels by factor (alpha untouched), clamped.
func (c RGBA) Scale(factor float64) RGBA {
	if factor <= 0 {
		return FromRGBA(0, 0, 0, c.A())
	}
	if factor >= 1 {
		return c
	}
	return FromRGBA(
		uint8(float64(c.R())*factor),
		uint8(float64(c.G())*factor),
		uint8(float64(c.B())*factor),
		c.A(),
	)
}
