// Package effect implements the per-glyph animation runtime: the shared
// lifecycle state machine every effect variant builds on, the timing helpers
// (ping-pong progress, fade-out easing), and the built-in variant family.
//
// An effect instance is created per occurrence of its start token, bound to a
// half-open glyph span, advanced once per frame, and dropped by the host once
// its duration elapses. Apply mutates only the buffer's per-frame render
// state (color, offset, scale, rotation), never the glyph text.
package effect

import (
	"math"
	"strconv"

	"github.com/lixenwraith/typewriter/glyph"
	"github.com/lixenwraith/typewriter/palette"
)

// Host is the label-side surface effects operate through.
type Host interface {
	// Buffer returns the glyph buffer whose render state effects mutate.
	Buffer() *glyph.Buffer
	// ClearColor is the host's base text color.
	ClearColor() palette.RGBA
}

// Effect is one live animation over a glyph span.
type Effect interface {
	// Name is the token name this effect was registered under.
	Name() string
	// Bind attaches the token name and opening glyph index. Called once by
	// the tokenizer when the start tag is found.
	Bind(name string, start int)
	// Close sets the span end. Called once when the matching end tag (or
	// end of text) is found; a span never closed applies to end of text.
	Close(end int)
	IndexStart() int
	// IndexEnd is -1 while the span is still open.
	IndexEnd() int
	// Update accumulates elapsed time. Called once per frame.
	Update(dt float64)
	// Apply mutates render state for one revealed glyph this frame.
	Apply(index int, dt float64)
	// Finished reports whether the finite duration has elapsed.
	Finished() bool
}

// Builder constructs an effect for a host from the token's parameter list.
type Builder func(host Host, params []string) Effect

// fadeSplit is the progress point where finite effects begin easing out.
const fadeSplit = 0.25

// Base carries the lifecycle state shared by all variants. Variants embed it
// and implement Apply.
type Base struct {
	Host Host

	name       string
	indexStart int
	indexEnd   int
	duration   float64
	totalTime  float64
}

// NewBase returns lifecycle state for an open, infinite-duration effect.
func NewBase(host Host) Base {
	return Base{Host: host, indexEnd: -1, duration: math.Inf(1)}
}

// Bind implements Effect.
func (b *Base) Bind(name string, start int) {
	b.name = name
	b.indexStart = start
}

// Close implements Effect. Only the first call takes.
func (b *Base) Close(end int) {
	if b.indexEnd < 0 {
		b.indexEnd = end
	}
}

func (b *Base) Name() string    { return b.name }
func (b *Base) IndexStart() int { return b.indexStart }
func (b *Base) IndexEnd() int   { return b.indexEnd }

// Update implements Effect.
func (b *Base) Update(dt float64) {
	b.totalTime += dt
}

// TotalTime returns accumulated elapsed seconds.
func (b *Base) TotalTime() float64 { return b.totalTime }

// Duration returns the configured duration; +Inf means never finishes.
func (b *Base) Duration() float64 { return b.duration }

// SetDuration configures the finite duration in seconds.
func (b *Base) SetDuration(d float64) { b.duration = d }

// Finished implements Effect: true once a non-negative duration is exceeded.
func (b *Base) Finished() bool {
	return b.duration >= 0 && b.totalTime > b.duration
}

// Local converts a buffer glyph index to the effect-local index.
func (b *Base) Local(index int) int {
	return index - b.indexStart
}

// FadeFactor returns the intensity multiplier for the fade-out easing:
// 1 until progress reaches the fade split, then a smooth ramp down to 0 at
// the end of the duration. Infinite-duration effects never fade.
func (b *Base) FadeFactor() float64 {
	if math.IsInf(b.duration, 1) || b.duration <= 0 {
		return 1
	}
	p := b.totalTime / b.duration
	if p <= fadeSplit {
		return 1
	}
	if p >= 1 {
		return 0
	}
	t := (p - fadeSplit) / (1 - fadeSplit)
	return 1 - t*t*(3-2*t)
}

// Progress is the timing primitive most variants build on. It computes
// totalTime/modifier + offset and normalizes into [0, 1]: modulo-1 sawtooth,
// or modulo-2 with fold-back when pingpong is set.
func (b *Base) Progress(modifier, offset float64, pingpong bool) float64 {
	if modifier == 0 {
		modifier = 1
	}
	raw := b.totalTime/modifier + offset
	if pingpong {
		raw = math.Mod(raw, 2)
		if raw < 0 {
			raw += 2
		}
		if raw > 1 {
			raw = 2 - raw
		}
		return raw
	}
	raw = math.Mod(raw, 1)
	if raw < 0 {
		raw++
	}
	return raw
}

// ParamFloat reads params[i] as a float, falling back to def when the
// parameter is absent or unparsable.
func ParamFloat(params []string, i int, def float64) float64 {
	if i >= len(params) || params[i] == "" {
		return def
	}
	v, err := strconv.ParseFloat(params[i], 64)
	if err != nil {
		return def
	}
	return v
}

// ParamDuration reads params[i] as a duration in seconds; absent, empty or
// unparsable values mean "run forever".
func ParamDuration(params []string, i int) float64 {
	v := ParamFloat(params, i, math.Inf(1))
	if v <= 0 {
		return math.Inf(1)
	}
	return v
}

// ParamColor reads params[i] as a color through the default palette with hex
// fallback, returning def on failure.
func ParamColor(params []string, i int, def palette.RGBA) palette.RGBA {
	if i >= len(params) || params[i] == "" {
		return def
	}
	c := palette.Parse(params[i], palette.Default)
	if c == palette.Sentinel {
		return def
	}
	return c
}

// hashNoise maps an integer to a deterministic pseudo-random value in [0, 1).
// Frame-stable jitter source for shake/wind style effects.
func hashNoise(n int) float64 {
	x := uint64(n)*0x9E3779B97F4A7C15 + 0x2545F4914F6CDD1D
	x ^= x >> 29
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 32
	return float64(x&0xFFFFFF) / float64(1<<24)
}
