package effect

import "github.com/lixenwraith/typewriter/palette"

// Gradient sweeps glyph color between two endpoints along the span.
// Params: color1; color2; distance; frequency.
type Gradient struct {
	Base
	color1    palette.RGBA
	color2    palette.RGBA
	distance  float64
	frequency float64
}

// NewGradient is the registered builder for {GRADIENT}.
func NewGradient(host Host, params []string) Effect {
	g := &Gradient{
		Base:      NewBase(host),
		color1:    ParamColor(params, 0, 0xFFFFFFFF),
		color2:    ParamColor(params, 1, 0x888888FF),
		distance:  ParamFloat(params, 2, 1),
		frequency: ParamFloat(params, 3, 1),
	}
	return g
}

// Apply implements Effect.
func (g *Gradient) Apply(index int, dt float64) {
	local := g.Local(index)
	t := g.Progress(2/g.frequency, float64(local)*0.08*g.distance, true)
	buf := g.Host.Buffer()
	alpha := buf.FrameColor(index).A()
	buf.SetFrameColor(index, g.color1.Lerp(g.color2, t).WithAlpha(alpha))
}
