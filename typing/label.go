package typing

import (
	"strings"
	"unicode"

	"github.com/lixenwraith/typewriter/effect"
	"github.com/lixenwraith/typewriter/glyph"
	"github.com/lixenwraith/typewriter/palette"
)

// Label is the host side of the engine: it owns the glyph buffer, the token
// entries, the per-instance variables and the reveal cursor, and drives time
// forward. Create one per piece of animated text; tokenization reruns
// wholesale on every text change.
type Label struct {
	engine  *Engine
	buffer  *glyph.Buffer
	entries []Entry
	vars    map[string]string

	// Listener, when set, is the first tier of variable resolution. It
	// receives the uppercased variable name.
	Listener func(name string) (string, bool)

	// EventSink receives the raw {EVENT=...} parameter when the reveal
	// cursor passes the event's position.
	EventSink func(param string)

	defaultToken string
	rawText      string

	cursor    int
	nextEntry int
	cooldown  float64
	interval  float64
	natural   bool
	paused    bool
	skipCount int
	active    []effect.Effect
}

// NewLabel creates an empty label bound to an engine.
func NewLabel(e *Engine) *Label {
	buf := glyph.NewBuffer(e.Config.DefaultClearColor)
	buf.Resolve = func(key string) palette.RGBA {
		return palette.Parse(key, e.Palette)
	}
	return &Label{
		engine:   e,
		buffer:   buf,
		vars:     make(map[string]string),
		interval: e.Config.DefaultSpeedPerChar,
	}
}

// Buffer implements effect.Host.
func (l *Label) Buffer() *glyph.Buffer { return l.buffer }

// ClearColor implements effect.Host.
func (l *Label) ClearColor() palette.RGBA { return l.engine.Config.DefaultClearColor }

// Text returns the raw annotated text.
func (l *Label) Text() string { return l.rawText }

// Entries returns the sorted token entries from the last tokenization.
func (l *Label) Entries() []Entry { return l.entries }

// Cursor returns the reveal cursor: glyphs [0, Cursor) are visible.
func (l *Label) Cursor() int { return l.cursor }

// SetVariable binds a per-label variable; names are case-insensitive.
func (l *Label) SetVariable(name, value string) {
	l.vars[strings.ToUpper(name)] = value
}

// ClearVariable removes a per-label variable binding.
func (l *Label) ClearVariable(name string) {
	delete(l.vars, strings.ToUpper(name))
}

// SetDefaultToken configures the snap-back-to-base-style token appended to
// every {RESET} expansion, e.g. "{NORMAL}".
func (l *Label) SetDefaultToken(token string) {
	l.defaultToken = token
}

// SetText replaces the annotated text and retokenizes from scratch.
func (l *Label) SetText(text string) {
	l.rawText = text
	l.Restart()
}

// Restart re-runs the full pipeline on the current text and rewinds the
// reveal to the beginning. The previous entry list is discarded wholesale.
func (l *Label) Restart() {
	l.buffer.Reset()

	text := PreprocessBracketMinus(l.rawText)
	text = Preprocess(text)
	text = l.substitute(text)
	l.entries = l.parseStructural(text)
	closeSpans(l.entries)

	l.cursor = 0
	l.nextEntry = 0
	l.cooldown = 0
	l.interval = l.engine.Config.DefaultSpeedPerChar
	l.natural = false
	l.skipCount = 0
	l.active = l.active[:0]
}

// Pause suspends the reveal; running effects keep animating.
func (l *Label) Pause() { l.paused = true }

// Resume continues a paused reveal.
func (l *Label) Resume() { l.paused = false }

// Paused reports whether the reveal is suspended.
func (l *Label) Paused() bool { return l.paused }

// Ended reports whether every glyph is revealed and every entry consumed.
func (l *Label) Ended() bool {
	return l.cursor >= l.buffer.Len() && l.nextEntry >= len(l.entries)
}

// SkipToEnd reveals the rest of the text on the next update; events along
// the way still fire.
func (l *Label) SkipToEnd() {
	l.skipCount = l.buffer.Len()
}

// Update advances the reveal and applies active effects for one frame.
// Effects run strictly in entry order; later effects may read state mutated
// by earlier ones on the same glyph.
func (l *Label) Update(dt float64) {
	l.buffer.ResetFrame()
	if !l.paused {
		l.advance(dt)
	}

	kept := l.active[:0]
	for _, eff := range l.active {
		eff.Update(dt)
		if eff.Finished() {
			continue
		}
		kept = append(kept, eff)
		end := eff.IndexEnd()
		if end < 0 || end > l.cursor {
			end = l.cursor
		}
		for g := eff.IndexStart(); g < end; g++ {
			eff.Apply(g, dt)
		}
	}
	l.active = kept
}

// advance moves the reveal cursor, consuming entries as it passes them.
func (l *Label) advance(dt float64) {
	l.cooldown -= dt
	revealed := 0
	limit := l.engine.Config.CharLimitPerFrame
	for {
		l.processEntries()
		if l.cursor >= l.buffer.Len() {
			break
		}
		if l.skipCount > 0 {
			l.skipCount--
			l.cursor++
			continue
		}
		if l.cooldown > 0 {
			break
		}

		r := l.buffer.Glyph(l.cursor).Char()
		l.cursor++
		revealed++

		iv := l.interval
		if l.natural {
			iv *= naturalWeight(r)
		}
		iv *= l.engine.Config.IntervalMultiplier(r)
		l.cooldown += iv

		if limit > 0 && revealed >= limit {
			break
		}
	}
	if l.cursor >= l.buffer.Len() && l.cooldown < 0 {
		l.cooldown = 0
	}
}

// processEntries consumes every entry at or before the current cursor.
func (l *Label) processEntries() {
	for l.nextEntry < len(l.entries) && l.entries[l.nextEntry].StartIndex <= l.cursor {
		en := &l.entries[l.nextEntry]
		l.nextEntry++
		switch en.Category {
		case CategoryWait:
			if l.skipCount == 0 {
				l.cooldown += en.FloatValue
			}
		case CategorySpeed:
			iv := en.FloatValue
			l.natural = iv < 0
			if iv < 0 {
				iv = -iv
			}
			l.interval = iv
		case CategoryEvent:
			if l.EventSink != nil {
				l.EventSink(en.StringValue)
			}
		case CategorySkip:
			if en.FloatValue < 0 {
				l.skipCount += l.buffer.Len() - l.cursor
			} else {
				l.skipCount += int(en.FloatValue)
			}
		case CategoryEffectStart:
			l.active = append(l.active, en.Effect)
		case CategoryEffectEnd:
			// Span already closed during tokenization.
		}
	}
}

// naturalWeight varies the reveal interval by character: spaces rush,
// capitals linger, everything else gets a small deterministic wobble.
func naturalWeight(r rune) float64 {
	switch {
	case r == ' ':
		return 0.4
	case unicode.IsUpper(r):
		return 1.3
	default:
		return 0.7 + 0.6*float64(uint32(r)*2654435761>>24&0xFF)/255
	}
}
