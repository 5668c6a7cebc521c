package effect

// Ease slides glyphs in from a vertical offset, one after another, settling
// at their resting position. Params: distance; speed; elastic overshoot.
type Ease struct {
	Base
	distance float64
	speed    float64
	elastic  float64
}

// NewEase is the registered builder for {EASE}.
func NewEase(host Host, params []string) Effect {
	e := &Ease{
		Base:     NewBase(host),
		distance: ParamFloat(params, 0, 2),
		speed:    ParamFloat(params, 1, 4),
		elastic:  ParamFloat(params, 2, 0.3),
	}
	if e.speed <= 0 {
		e.speed = 4
	}
	return e
}

// Apply implements Effect.
func (e *Ease) Apply(index int, dt float64) {
	local := e.Local(index)
	t := clamp01(e.TotalTime()*e.speed - float64(local)*0.25)
	if t >= 1 {
		return
	}
	// Smoothstep toward rest, with a small overshoot past it.
	s := t * t * (3 - 2*t)
	y := e.distance * (1 - s*(1+e.elastic*(1-t)))
	e.Host.Buffer().AddOffset(index, 0, y)
}
