package effect

import "math"

// Wave moves glyphs up and down on a sine travelling along the span.
// Params: frequency; intensity; duration.
type Wave struct {
	Base
	frequency float64
	intensity float64
}

// NewWave is the registered builder for {WAVE}.
func NewWave(host Host, params []string) Effect {
	w := &Wave{
		Base:      NewBase(host),
		frequency: ParamFloat(params, 0, 1),
		intensity: ParamFloat(params, 1, 1),
	}
	w.SetDuration(ParamDuration(params, 2))
	return w
}

// Apply implements Effect.
func (w *Wave) Apply(index int, dt float64) {
	local := w.Local(index)
	p := w.Progress(1/w.frequency, float64(local)*-0.125, false)
	y := -math.Sin(2*math.Pi*p) * 0.5 * w.intensity * w.FadeFactor()
	w.Host.Buffer().AddOffset(index, 0, y)
}
