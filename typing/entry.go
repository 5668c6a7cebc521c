package typing

import "github.com/lixenwraith/typewriter/effect"

// Entry is one structural instruction anchored to a glyph index in the
// post-substitution buffer. Entries are rebuilt wholesale on every
// re-tokenization; the label replays them as its reveal cursor advances.
type Entry struct {
	// Name is the uppercased token name; for effect ends, the base name
	// of the effect being closed.
	Name     string
	Category Category

	// StartIndex and EndIndex are the half-open glyph range the entry is
	// anchored to. Structural tokens occupy no glyphs, so both usually
	// hold the same position.
	StartIndex int
	EndIndex   int

	// FloatValue carries wait seconds, reveal intervals (negative for
	// natural pacing) or skip counts, depending on Category.
	FloatValue float64

	// StringValue carries the raw EVENT parameter.
	StringValue string

	// Effect is set on EFFECT_START entries only.
	Effect effect.Effect
}
