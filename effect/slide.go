package effect

import "math"

// Slide shifts the whole span left and right in a shared cycle.
// Params: frequency; distance; duration.
type Slide struct {
	Base
	frequency float64
	distance  float64
}

// NewSlide is the registered builder for {SLIDE}.
func NewSlide(host Host, params []string) Effect {
	s := &Slide{
		Base:      NewBase(host),
		frequency: ParamFloat(params, 0, 1),
		distance:  ParamFloat(params, 1, 1),
	}
	s.SetDuration(ParamDuration(params, 2))
	return s
}

// Apply implements Effect.
func (s *Slide) Apply(index int, dt float64) {
	p := s.Progress(1/s.frequency, 0, false)
	x := math.Sin(2*math.Pi*p) * s.distance * s.FadeFactor()
	s.Host.Buffer().AddOffset(index, x, 0)
}
