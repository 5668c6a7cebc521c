package effect

// Spin rocks glyphs around their center, ping-ponging between extremes.
// Params: frequency; maxAngle (degrees); duration.
type Spin struct {
	Base
	frequency float64
	maxAngle  float64
}

// NewSpin is the registered builder for {SPIN}.
func NewSpin(host Host, params []string) Effect {
	s := &Spin{
		Base:      NewBase(host),
		frequency: ParamFloat(params, 0, 1),
		maxAngle:  ParamFloat(params, 1, 25),
	}
	s.SetDuration(ParamDuration(params, 2))
	return s
}

// Apply implements Effect.
func (s *Spin) Apply(index int, dt float64) {
	local := s.Local(index)
	p := s.Progress(1/s.frequency, float64(local)*0.1, true)
	angle := (p*2 - 1) * s.maxAngle * s.FadeFactor()
	s.Host.Buffer().AddRotation(index, angle)
}
