package effect

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/typewriter/palette"
)

// Rainbow cycles glyph hue along the span over time.
// Params: distance; frequency; saturation; lightness.
type Rainbow struct {
	Base
	distance   float64
	frequency  float64
	saturation float64
	lightness  float64
}

// NewRainbow is the registered builder for {RAINBOW}.
func NewRainbow(host Host, params []string) Effect {
	r := &Rainbow{
		Base:       NewBase(host),
		distance:   ParamFloat(params, 0, 1),
		frequency:  ParamFloat(params, 1, 1),
		saturation: ParamFloat(params, 2, 0.8),
		lightness:  ParamFloat(params, 3, 0.5),
	}
	return r
}

// Apply implements Effect.
func (r *Rainbow) Apply(index int, dt float64) {
	local := r.Local(index)
	p := r.Progress(2/r.frequency, float64(local)*-0.05*r.distance, false)
	c := colorful.Hsl(p*360, clamp01(r.saturation), clamp01(r.lightness)).Clamped()

	buf := r.Host.Buffer()
	alpha := buf.FrameColor(index).A()
	buf.SetFrameColor(index, palette.FromRGBA(
		uint8(c.R*255+0.5),
		uint8(c.G*255+0.5),
		uint8(c.B*255+0.5),
		alpha,
	))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
