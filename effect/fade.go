package effect

// Fade ramps glyph alpha from a start to an end factor, staggered along the
// span. Params: alphaStart; alphaEnd; fadeDuration.
type Fade struct {
	Base
	alphaStart float64
	alphaEnd   float64
	fadeTime   float64
}

// NewFade is the registered builder for {FADE}.
func NewFade(host Host, params []string) Effect {
	f := &Fade{
		Base:       NewBase(host),
		alphaStart: clamp01(ParamFloat(params, 0, 0)),
		alphaEnd:   clamp01(ParamFloat(params, 1, 1)),
		fadeTime:   ParamFloat(params, 2, 1),
	}
	if f.fadeTime <= 0 {
		f.fadeTime = 1
	}
	return f
}

// Apply implements Effect.
func (f *Fade) Apply(index int, dt float64) {
	local := f.Local(index)
	t := clamp01(f.TotalTime()/f.fadeTime - float64(local)*0.05)
	alpha := f.alphaStart + (f.alphaEnd-f.alphaStart)*t
	f.Host.Buffer().ScaleFrameAlpha(index, alpha)
}
