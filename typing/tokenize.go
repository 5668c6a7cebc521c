package typing

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// substitute runs the text-replacing pass to a fixed point: every match of a
// mutating category is replaced in place and the scan restarts at the same
// offset, so replacement text is itself candidate for further substitution.
// Non-mutating matches are skipped forward by one byte, guaranteeing
// progress. A defensive cap stops runaway self-expanding variables; the
// remainder is left literal and a diagnostic is surfaced.
func (l *Label) substitute(text string) string {
	pattern, endTags := l.engine.compiled()

	limit := 128 + 2*len(text)
	subs := 0
	off := 0
	for off < len(text) {
		loc := pattern.FindStringSubmatchIndex(text[off:])
		if loc == nil {
			break
		}
		start, end := off+loc[0], off+loc[1]
		name := strings.ToUpper(text[off+loc[2] : off+loc[3]])
		param := ""
		if loc[4] >= 0 {
			param = text[off+loc[4] : off+loc[5]]
		}

		cat, builtin := builtinCategories[name]
		if !builtin || !cat.Mutating() {
			off = start + 1
			continue
		}

		subs++
		if subs > limit {
			l.engine.diag(fmt.Sprintf(
				"substitution cap (%d) reached; leaving remaining tokens literal", limit))
			break
		}
		text = text[:start] + l.replacement(cat, param, endTags) + text[end:]
		off = start
	}
	return text
}

// replacement computes the substitution text for one mutating token.
func (l *Label) replacement(cat Category, param, endTags string) string {
	switch cat {
	case CategoryColor:
		return "[" + param + "]"
	case CategoryClearColor, CategoryEndColor:
		return fmt.Sprintf("[#%08X]", uint32(l.engine.Config.DefaultClearColor))
	case CategoryStyle:
		return styleTag(param)
	case CategorySize:
		return "[%" + param + "]"
	case CategoryClearSize:
		return "[%]"
	case CategoryFont:
		return "[@" + param + "]"
	case CategoryClearFont:
		return "[@]"
	case CategoryVariable:
		value, ok := l.lookupVariable(param)
		if !ok {
			// Visible-but-harmless fallback: echo the uppercased name.
			return strings.ToUpper(param)
		}
		return value
	case CategoryIf:
		return l.evalIf(param)
	case CategoryReset:
		return "[ ]" + endTags + l.defaultToken
	case CategoryUndo:
		return "[]"
	}
	return ""
}

// styleTag maps a {STYLE=...} parameter to bracket markup. Named styles map
// to their toggle tags; anything else passes through for the glyph buffer to
// interpret (size, font and color forms included).
func styleTag(param string) string {
	switch strings.ToUpper(param) {
	case "BOLD", "B":
		return "[*]"
	case "OBLIQUE", "ITALIC", "I":
		return "[/]"
	case "UNDERLINE", "U":
		return "[_]"
	case "STRIKE", "S":
		return "[~]"
	}
	return "[" + param + "]"
}

// evalIf resolves an {IF=var;key=value;...;default} conditional. The first
// segment names the variable (empty string when unbound, never null); keyed
// segments are tested in order with case-insensitive equality; a segment
// without '=' becomes the default. No match and no default echoes the
// uppercased variable name.
func (l *Label) evalIf(param string) string {
	segments := strings.Split(param, ";")
	name := segments[0]
	value, _ := l.lookupVariable(name)

	def := ""
	hasDefault := false
	for _, seg := range segments[1:] {
		eq := strings.IndexByte(seg, '=')
		if eq < 0 {
			if !hasDefault {
				def = seg
				hasDefault = true
			}
			continue
		}
		if strings.EqualFold(seg[:eq], value) {
			return seg[eq+1:]
		}
	}
	if hasDefault {
		return def
	}
	return strings.ToUpper(name)
}

// lookupVariable resolves a variable through the three tiers: the label's
// listener callback, then instance variables, then engine globals. The key
// is the uppercased name at every tier; the first answer wins.
func (l *Label) lookupVariable(name string) (string, bool) {
	key := strings.ToUpper(strings.TrimSpace(name))
	if l.Listener != nil {
		if v, ok := l.Listener(key); ok {
			return v, true
		}
	}
	if v, ok := l.vars[key]; ok {
		return v, true
	}
	if v, ok := l.engine.Global(key); ok {
		return v, true
	}
	return "", false
}

// parseStructural scans the stabilized text once, appending visible text to
// the glyph buffer and recording structural tokens as entries anchored at
// the glyph index where they occur. Unrecognized effect tokens and leftover
// mutating tokens are appended as literal text rather than dropped.
func (l *Label) parseStructural(text string) []Entry {
	pattern, _ := l.engine.compiled()
	cfg := l.engine.Config

	var entries []Entry
	pos := 0
	for _, m := range pattern.FindAllStringSubmatchIndex(text, -1) {
		l.buffer.Append(text[pos:m[0]])
		literal := text[m[0]:m[1]]
		pos = m[1]

		name := strings.ToUpper(text[m[2]:m[3]])
		param := ""
		if m[4] >= 0 {
			param = text[m[4]:m[5]]
		}
		idx := l.buffer.Len()

		cat, builtin := builtinCategories[name]
		switch {
		case builtin && cat == CategoryWait:
			entries = append(entries, Entry{
				Name:       name,
				Category:   cat,
				StartIndex: idx,
				EndIndex:   idx,
				FloatValue: parseFloat(param, cfg.DefaultWaitValue),
			})
		case builtin && cat == CategorySpeed:
			entries = append(entries, Entry{
				Name:       name,
				Category:   cat,
				StartIndex: idx,
				EndIndex:   idx,
				FloatValue: l.speedInterval(name, param),
			})
		case builtin && cat == CategoryEvent:
			entries = append(entries, Entry{
				Name:        name,
				Category:    cat,
				StartIndex:  idx,
				EndIndex:    idx,
				StringValue: param,
			})
		case builtin && cat == CategorySkip:
			entries = append(entries, Entry{
				Name:       name,
				Category:   cat,
				StartIndex: idx,
				EndIndex:   idx,
				FloatValue: parseFloat(param, -1),
			})
		case builtin:
			// A mutating token that survived the substitution cap:
			// keep it visible instead of silently deleting it.
			l.buffer.Append(literal)
		default:
			if builder, ok := l.engine.startBuilder(name); ok {
				eff := builder(l, splitParams(param))
				eff.Bind(name, idx)
				entries = append(entries, Entry{
					Name:       name,
					Category:   CategoryEffectStart,
					StartIndex: idx,
					EndIndex:   idx,
					Effect:     eff,
				})
			} else if base, ok := l.engine.endBase(name); ok {
				entries = append(entries, Entry{
					Name:       base,
					Category:   CategoryEffectEnd,
					StartIndex: idx,
					EndIndex:   idx,
				})
			} else {
				// Raced an unregistration between passes; the token
				// is dead text, not structural.
				l.buffer.Append(literal)
			}
		}
	}
	l.buffer.Append(text[pos:])

	// Stable: ties keep declaration order within the same category.
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].StartIndex != entries[j].StartIndex {
			return entries[i].StartIndex < entries[j].StartIndex
		}
		return entries[i].Category < entries[j].Category
	})
	return entries
}

// closeSpans pairs each EFFECT_END entry with the nearest preceding open
// EFFECT_START of the same name. Starts with no matching end keep
// IndexEnd == -1 and apply through end of text.
func closeSpans(entries []Entry) {
	for i := range entries {
		if entries[i].Category != CategoryEffectEnd {
			continue
		}
		for j := i - 1; j >= 0; j-- {
			if entries[j].Category == CategoryEffectStart &&
				entries[j].Name == entries[i].Name &&
				entries[j].Effect.IndexEnd() < 0 {
				entries[j].Effect.Close(entries[i].StartIndex)
				break
			}
		}
	}
}

// speedInterval computes the per-glyph reveal interval for a speed token.
// NATURAL returns the negated interval; the label reads the sign as "vary
// the pace by character".
func (l *Label) speedInterval(name, param string) float64 {
	cfg := l.engine.Config
	base := cfg.DefaultSpeedPerChar
	switch name {
	case "SLOWER":
		return base / 0.500
	case "SLOW":
		return base / 0.667
	case "NORMAL":
		return base
	case "FAST":
		return base / 2
	case "FASTER":
		return base / 4
	case "NATURAL":
		return -(base / l.clampModifier(parseFloat(param, 1)))
	default: // SPEED
		return base / l.clampModifier(parseFloat(param, 1))
	}
}

func (l *Label) clampModifier(m float64) float64 {
	cfg := l.engine.Config
	if m < cfg.MinSpeedModifier {
		return cfg.MinSpeedModifier
	}
	if m > cfg.MaxSpeedModifier {
		return cfg.MaxSpeedModifier
	}
	return m
}

func parseFloat(s string, def float64) float64 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return v
}

func splitParams(param string) []string {
	if param == "" {
		return nil
	}
	return strings.Split(param, ";")
}
