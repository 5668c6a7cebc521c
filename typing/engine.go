package typing

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/lixenwraith/typewriter/effect"
	"github.com/lixenwraith/typewriter/palette"
)

// builtinTokenNames are the fixed token names always present in the
// compiled alternation, independent of the effect registry.
var builtinTokenNames = []string{
	"WAIT", "SPEED", "SLOWER", "SLOW", "NORMAL", "FAST", "FASTER", "NATURAL",
	"COLOR", "CLEARCOLOR", "ENDCOLOR", "STYLE", "SIZE", "CLEARSIZE",
	"FONT", "CLEARFONT", "VAR", "IF", "EVENT", "RESET", "SKIP", "UNDO",
}

// Engine is the explicit context every label tokenizes against: the effect
// registry, the compiled token pattern, the global variable table and the
// tunables. Construct one with NewEngine and share it between labels.
//
// Registering an effect under NAME also makes ENDNAME recognized as the
// span terminator. Registry mutation marks the engine dirty; the compiled
// pattern and the cached RESET expansion are rebuilt together on next use.
type Engine struct {
	mu      sync.Mutex
	effects map[string]effect.Builder
	ends    map[string]string // ENDNAME -> NAME
	dirty   bool
	pattern *regexp.Regexp
	endTags string
	globals map[string]string

	// Config holds the engine tunables. Replace or mutate before revealing.
	Config *Config

	// Palette resolves color names for COLOR tokens and bracket markup.
	Palette palette.Resolver

	// Diag, when set, receives non-fatal pipeline diagnostics.
	Diag func(msg string)
}

// NewEngine returns an engine pre-populated with the built-in effect set
// and the default config, palette and macro variables.
func NewEngine() *Engine {
	e := &Engine{
		effects: make(map[string]effect.Builder),
		ends:    make(map[string]string),
		globals: make(map[string]string),
		dirty:   true,
		Config:  DefaultConfig(),
		Palette: palette.Default,
	}
	for name, value := range e.Config.Variables {
		e.globals[strings.ToUpper(name)] = value
	}

	e.RegisterEffect("WAVE", effect.NewWave)
	e.RegisterEffect("SHAKE", effect.NewShake)
	e.RegisterEffect("RAINBOW", effect.NewRainbow)
	e.RegisterEffect("GRADIENT", effect.NewGradient)
	e.RegisterEffect("FADE", effect.NewFade)
	e.RegisterEffect("BLINK", effect.NewBlink)
	e.RegisterEffect("WIND", effect.NewWind)
	e.RegisterEffect("JUMP", effect.NewJump)
	e.RegisterEffect("SPIN", effect.NewSpin)
	e.RegisterEffect("HEARTBEAT", effect.NewHeartbeat)
	e.RegisterEffect("EASE", effect.NewEase)
	e.RegisterEffect("HANG", effect.NewHang)
	e.RegisterEffect("SICK", effect.NewSick)
	e.RegisterEffect("SLIDE", effect.NewSlide)
	return e
}

// RegisterEffect adds a builder under the uppercased name and synthesizes
// the matching END token. Re-registering replaces the previous builder.
// Names colliding with built-in tokens are ignored.
func (e *Engine) RegisterEffect(name string, builder effect.Builder) {
	name = strings.ToUpper(name)
	if name == "" || builder == nil {
		return
	}
	if _, reserved := builtinCategories[name]; reserved {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.effects[name] = builder
	e.ends["END"+name] = name
	e.dirty = true
}

// UnregisterEffect removes both the start and end token of an effect.
func (e *Engine) UnregisterEffect(name string) {
	name = strings.ToUpper(name)
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.effects[name]; !ok {
		return
	}
	delete(e.effects, name)
	delete(e.ends, "END"+name)
	e.dirty = true
}

// EffectRegistered reports whether a start token is registered.
func (e *Engine) EffectRegistered(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.effects[strings.ToUpper(name)]
	return ok
}

// startBuilder looks up the builder for an effect-start token.
func (e *Engine) startBuilder(name string) (effect.Builder, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	b, ok := e.effects[name]
	return b, ok
}

// endBase resolves an END token to the effect name it closes.
func (e *Engine) endBase(name string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	base, ok := e.ends[name]
	return base, ok
}

// SetGlobal binds a process-wide variable; names are case-insensitive.
func (e *Engine) SetGlobal(name, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.globals[strings.ToUpper(name)] = value
}

// ClearGlobal removes a global variable binding.
func (e *Engine) ClearGlobal(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.globals, strings.ToUpper(name))
}

// Global looks up a global variable by its uppercased name.
func (e *Engine) Global(name string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	v, ok := e.globals[strings.ToUpper(name)]
	return v, ok
}

// compiled returns the token pattern and the concatenated end tags used by
// RESET expansion. Both caches rebuild together under the lock, so a caller
// never pairs a stale pattern with a fresh registry.
func (e *Engine) compiled() (*regexp.Regexp, string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.dirty || e.pattern == nil {
		names := make([]string, 0, len(builtinTokenNames)+2*len(e.effects))
		names = append(names, builtinTokenNames...)
		for name := range e.effects {
			names = append(names, name, "END"+name)
		}
		// Longest first keeps prefix pairs like SLOW/SLOWER unambiguous.
		sort.Slice(names, func(i, j int) bool {
			if len(names[i]) != len(names[j]) {
				return len(names[i]) > len(names[j])
			}
			return names[i] < names[j]
		})
		for i, n := range names {
			names[i] = regexp.QuoteMeta(n)
		}
		e.pattern = regexp.MustCompile(
			`(?i)\{(` + strings.Join(names, "|") + `)(?:=([^{}]*))?\}`)

		ends := make([]string, 0, len(e.effects))
		for name := range e.effects {
			ends = append(ends, name)
		}
		sort.Strings(ends)
		var sb strings.Builder
		for _, name := range ends {
			sb.WriteString("{END")
			sb.WriteString(name)
			sb.WriteString("}")
		}
		e.endTags = sb.String()
		e.dirty = false
	}
	return e.pattern, e.endTags
}

// diag forwards a pipeline diagnostic when a sink is configured.
func (e *Engine) diag(msg string) {
	if e.Diag != nil {
		e.Diag(msg)
	}
}
