package effect

// Shake jitters each glyph with frame-stable pseudo-random displacement.
// Params: rate; intensity; duration.
type Shake struct {
	Base
	rate      float64
	intensity float64
}

// NewShake is the registered builder for {SHAKE}.
func NewShake(host Host, params []string) Effect {
	s := &Shake{
		Base:      NewBase(host),
		rate:      ParamFloat(params, 0, 1),
		intensity: ParamFloat(params, 1, 1),
	}
	s.SetDuration(ParamDuration(params, 2))
	return s
}

// Apply implements Effect.
func (s *Shake) Apply(index int, dt float64) {
	// Quantize time so the jitter holds still between ticks instead of
	// smearing at render frame rate.
	tick := int(s.TotalTime() * 30 * s.rate)
	seed := index*7919 + tick*104729
	amp := 0.4 * s.intensity * s.FadeFactor()
	dx := (hashNoise(seed) - 0.5) * amp
	dy := (hashNoise(seed+1) - 0.5) * amp
	s.Host.Buffer().AddOffset(index, dx, dy)
}
