package effect

import "math"

// Jump makes glyphs hop one after another along the span.
// Params: frequency; intensity; duration.
type Jump struct {
	Base
	frequency float64
	intensity float64
}

// NewJump is the registered builder for {JUMP}.
func NewJump(host Host, params []string) Effect {
	j := &Jump{
		Base:      NewBase(host),
		frequency: ParamFloat(params, 0, 1),
		intensity: ParamFloat(params, 1, 1),
	}
	j.SetDuration(ParamDuration(params, 2))
	return j
}

// Apply implements Effect.
func (j *Jump) Apply(index int, dt float64) {
	local := j.Local(index)
	p := j.Progress(2/j.frequency, float64(local)*-0.12, false)
	// Each glyph spends a short window of the cycle airborne.
	if p >= 0.3 {
		return
	}
	lift := math.Sin(math.Pi * p / 0.3)
	y := -lift * 0.6 * j.intensity * j.FadeFactor()
	j.Host.Buffer().AddOffset(index, 0, y)
}
