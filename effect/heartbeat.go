package effect

import "math"

// Heartbeat scales glyphs with a double-thump pulse.
// Params: frequency; intensity; duration.
type Heartbeat struct {
	Base
	frequency float64
	intensity float64
}

// NewHeartbeat is the registered builder for {HEARTBEAT}.
func NewHeartbeat(host Host, params []string) Effect {
	h := &Heartbeat{
		Base:      NewBase(host),
		frequency: ParamFloat(params, 0, 1),
		intensity: ParamFloat(params, 1, 0.25),
	}
	h.SetDuration(ParamDuration(params, 2))
	return h
}

// Apply implements Effect.
func (h *Heartbeat) Apply(index int, dt float64) {
	p := h.Progress(1/h.frequency, 0, false)
	// First thump at the start of the cycle, a weaker one right after.
	beat := 0.0
	switch {
	case p < 0.15:
		beat = math.Sin(math.Pi * p / 0.15)
	case p >= 0.25 && p < 0.40:
		beat = 0.6 * math.Sin(math.Pi*(p-0.25)/0.15)
	}
	scale := 1 + beat*h.intensity*h.FadeFactor()
	h.Host.Buffer().MulScale(index, scale)
}
