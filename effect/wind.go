package effect

import "math"

// Wind drifts glyphs with layered turbulence, like text caught in a breeze.
// Params: distanceX; distanceY; spacing; intensity; duration.
type Wind struct {
	Base
	distanceX float64
	distanceY float64
	spacing   float64
	intensity float64
}

// NewWind is the registered builder for {WIND}.
func NewWind(host Host, params []string) Effect {
	w := &Wind{
		Base:      NewBase(host),
		distanceX: ParamFloat(params, 0, 1),
		distanceY: ParamFloat(params, 1, 0.5),
		spacing:   ParamFloat(params, 2, 1),
		intensity: ParamFloat(params, 3, 1),
	}
	w.SetDuration(ParamDuration(params, 4))
	return w
}

// Apply implements Effect.
func (w *Wind) Apply(index int, dt float64) {
	local := float64(w.Local(index))
	t := w.TotalTime() * w.intensity
	phase := local * 0.3 * w.spacing

	// Two incommensurate sine layers approximate turbulence without a
	// noise table.
	gust := math.Sin(t*2.1+phase) + 0.5*math.Sin(t*3.7+phase*1.618)
	lift := math.Sin(t*1.3+phase*0.7) + 0.5*math.Sin(t*4.1+phase)

	fade := w.FadeFactor()
	dx := gust * 0.25 * w.distanceX * fade
	dy := lift * 0.15 * w.distanceY * fade
	w.Host.Buffer().AddOffset(index, dx, dy)
}
