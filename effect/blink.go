package effect

import "github.com/lixenwraith/typewriter/palette"

// Blink alternates glyph color between two values at a fixed frequency.
// Params: color1; color2; frequency; threshold.
type Blink struct {
	Base
	color1    palette.RGBA
	color2    palette.RGBA
	frequency float64
	threshold float64
}

// NewBlink is the registered builder for {BLINK}.
func NewBlink(host Host, params []string) Effect {
	b := &Blink{
		Base:      NewBase(host),
		color1:    ParamColor(params, 0, 0xFFFFFFFF),
		color2:    ParamColor(params, 1, 0xFFFFFF00),
		frequency: ParamFloat(params, 2, 1),
		threshold: clamp01(ParamFloat(params, 3, 0.5)),
	}
	b.SetDuration(ParamDuration(params, 4))
	return b
}

// Apply implements Effect.
func (b *Blink) Apply(index int, dt float64) {
	c := b.color1
	if b.Progress(1/b.frequency, 0, false) > b.threshold {
		c = b.color2
	}
	buf := b.Host.Buffer()
	alpha := buf.FrameColor(index).A()
	buf.SetFrameColor(index, c.WithAlpha(alpha))
}
