package effect

import "math"

// Sick wobbles glyphs queasily: slow horizontal and vertical drift on
// mismatched frequencies so the motion never repeats cleanly.
// Params: frequency; intensity; duration.
type Sick struct {
	Base
	frequency float64
	intensity float64
}

// NewSick is the registered builder for {SICK}.
func NewSick(host Host, params []string) Effect {
	s := &Sick{
		Base:      NewBase(host),
		frequency: ParamFloat(params, 0, 1),
		intensity: ParamFloat(params, 1, 1),
	}
	s.SetDuration(ParamDuration(params, 2))
	return s
}

// Apply implements Effect.
func (s *Sick) Apply(index int, dt float64) {
	local := s.Local(index)
	phase := hashNoise(local) * 2 * math.Pi
	t := s.TotalTime() * s.frequency
	amp := 0.3 * s.intensity * s.FadeFactor()
	x := math.Sin(t*1.7+phase) * amp
	y := math.Sin(t*2.3+phase*1.3) * amp * 0.6
	s.Host.Buffer().AddOffset(index, x, y)
}
