package typing

import (
	"regexp"
	"strings"
)

// bracketMinusPattern rewrites [-NAME] escapes into curly tags verbatim.
var bracketMinusPattern = regexp.MustCompile(`\[-([^\]]*)\]`)

// PreprocessBracketMinus rewrites [-NAME] to {NAME}, letting arbitrary curly
// tags be authored through bracket markup. Returns the input unchanged (no
// allocation) when the escape is absent.
func PreprocessBracketMinus(text string) string {
	if !strings.Contains(text, "[-") {
		return text
	}
	return bracketMinusPattern.ReplaceAllString(text, "{$1}")
}

// Preprocess rewrites legacy bracket markup into canonical curly tags.
// The rules apply in a fixed order per bracket:
//
//  1. "[ ]"        -> {RESET}
//  2. "[]"         -> {UNDO}
//  3. "[#hex]" or "[name]" -> {COLOR=...}
//  4. any other single-segment bracket -> {STYLE=...}
//
// Escaped brackets ("[[") and reserved inline-image syntax ("[+...]") pass
// through untouched. The rewrite is idempotent: curly tags are never
// reinterpreted.
func Preprocess(text string) string {
	if !strings.Contains(text, "[") {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text) + len(text)/4)
	for i := 0; i < len(text); {
		if text[i] != '[' {
			sb.WriteByte(text[i])
			i++
			continue
		}
		if i+1 < len(text) && text[i+1] == '[' {
			sb.WriteString("[[")
			i += 2
			continue
		}
		end := strings.IndexByte(text[i:], ']')
		if end < 0 {
			sb.WriteString(text[i:])
			break
		}
		content := text[i+1 : i+end]
		switch {
		case content == " ":
			sb.WriteString("{RESET}")
		case content == "":
			sb.WriteString("{UNDO}")
		case content[0] == '+':
			// Reserved inline-image syntax.
			sb.WriteString(text[i : i+end+1])
		case isColorContent(content):
			sb.WriteString("{COLOR=")
			sb.WriteString(content)
			sb.WriteString("}")
		default:
			sb.WriteString("{STYLE=")
			sb.WriteString(content)
			sb.WriteString("}")
		}
		i += end + 1
	}
	return sb.String()
}

// isColorContent reports whether bracket content looks like a color
// reference: hex notation, or a name description made of letters, digits
// and spaces.
func isColorContent(content string) bool {
	if content[0] == '#' {
		return true
	}
	for i := 0; i < len(content); i++ {
		c := content[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == ' ':
		default:
			return false
		}
	}
	return true
}
