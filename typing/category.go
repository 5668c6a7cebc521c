// Package typing is the markup tokenization and effect-scheduling engine.
// It turns an annotated string into a cleaned glyph buffer plus an ordered
// list of token entries, which a label replays as its reveal cursor advances.
package typing

// Category classifies a token's role in the pipeline. The declaration order
// doubles as the tie-break rank when entries share a start index: wait and
// speed changes land before effect starts, and effect starts before effect
// ends.
type Category uint8

const (
	CategoryWait Category = iota
	CategorySpeed
	CategoryColor
	CategoryClearColor
	CategoryEndColor
	CategoryStyle
	CategorySize
	CategoryClearSize
	CategoryFont
	CategoryClearFont
	CategoryVariable
	CategoryIf
	CategoryEvent
	CategoryReset
	CategorySkip
	CategoryUndo
	CategoryEffectStart
	CategoryEffectEnd
)

var categoryNames = [...]string{
	"WAIT", "SPEED", "COLOR", "CLEARCOLOR", "ENDCOLOR", "STYLE", "SIZE",
	"CLEARSIZE", "FONT", "CLEARFONT", "VARIABLE", "IF", "EVENT", "RESET",
	"SKIP", "UNDO", "EFFECT_START", "EFFECT_END",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "UNKNOWN"
}

// Mutating reports whether tokens of this category rewrite the visible text
// during the substitution pass. Non-mutating categories survive into the
// structural pass.
func (c Category) Mutating() bool {
	switch c {
	case CategoryColor, CategoryClearColor, CategoryEndColor, CategoryStyle,
		CategorySize, CategoryClearSize, CategoryFont, CategoryClearFont,
		CategoryVariable, CategoryIf, CategoryReset, CategoryUndo:
		return true
	}
	return false
}

// builtinCategories maps fixed token names to their category. Effect tokens
// are not listed; they are resolved against the engine's registry.
var builtinCategories = map[string]Category{
	"WAIT":       CategoryWait,
	"SPEED":      CategorySpeed,
	"SLOWER":     CategorySpeed,
	"SLOW":       CategorySpeed,
	"NORMAL":     CategorySpeed,
	"FAST":       CategorySpeed,
	"FASTER":     CategorySpeed,
	"NATURAL":    CategorySpeed,
	"COLOR":      CategoryColor,
	"CLEARCOLOR": CategoryClearColor,
	"ENDCOLOR":   CategoryEndColor,
	"STYLE":      CategoryStyle,
	"SIZE":       CategorySize,
	"CLEARSIZE":  CategoryClearSize,
	"FONT":       CategoryFont,
	"CLEARFONT":  CategoryClearFont,
	"VAR":        CategoryVariable,
	"IF":         CategoryIf,
	"EVENT":      CategoryEvent,
	"RESET":      CategoryReset,
	"SKIP":       CategorySkip,
	"UNDO":       CategoryUndo,
}
