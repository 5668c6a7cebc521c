package effect

// Hang lets glyphs dangle below their resting position with a slow drift,
// each glyph on its own phase. Params: distance; sway; duration.
type Hang struct {
	Base
	distance float64
	sway     float64
}

// NewHang is the registered builder for {HANG}.
func NewHang(host Host, params []string) Effect {
	h := &Hang{
		Base:     NewBase(host),
		distance: ParamFloat(params, 0, 1),
		sway:     ParamFloat(params, 1, 1),
	}
	h.SetDuration(ParamDuration(params, 2))
	return h
}

// Apply implements Effect.
func (h *Hang) Apply(index int, dt float64) {
	local := h.Local(index)
	// Settle downward over the first half second, then drift on the spot.
	drop := clamp01(h.TotalTime() * 2)
	p := h.Progress(2/h.sway, hashNoise(local), true)
	y := (0.4*h.distance*drop + 0.1*p*h.sway) * h.FadeFactor()
	h.Host.Buffer().AddOffset(index, 0, y)
}
