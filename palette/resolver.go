package palette

// Resolver maps a color name or description to an RGBA value.
// Implementations return Sentinel when the key cannot be resolved.
type Resolver interface {
	Resolve(key string) RGBA
}

// Table is the default resolver: an exact, case-sensitive name lookup.
type Table map[string]RGBA

// Resolve implements Resolver.
func (t Table) Resolve(key string) RGBA {
	if c, ok := t[key]; ok {
		return c
	}
	return Sentinel
}

// Register adds or replaces a named color.
func (t Table) Register(name string, c RGBA) {
	t[name] = c
}

// Default is the built-in named color table. Names are lowercase.
var Default = Table{
	"black":     0x000000FF,
	"white":     0xFFFFFFFF,
	"gray":      0x7F7F7FFF,
	"grey":      0x7F7F7FFF,
	"lightgray": 0xBFBFBFFF,
	"darkgray":  0x3F3F3FFF,
	"silver":    0xBBBBBBFF,
	"charcoal":  0x303030FF,

	"red":     0xFF0000FF,
	"scarlet": 0xFF341CFF,
	"crimson": 0xDC143CFF,
	"maroon":  0xB03060FF,
	"salmon":  0xFA8072FF,
	"brick":   0xD2691EFF,

	"orange":  0xFF7F00FF,
	"apricot": 0xFFA828FF,
	"gold":    0xFFD700FF,
	"yellow":  0xFFFF00FF,
	"butter":  0xFFF288FF,
	"tan":     0xD2B48CFF,
	"brown":   0x8B4513FF,
	"bronze":  0xCE8E31FF,

	"green":      0x00FF00FF,
	"chartreuse": 0x7FFF00FF,
	"lime":       0x32CD32FF,
	"forest":     0x228B22FF,
	"olive":      0x6B8E23FF,
	"jade":       0x3FBF3FFF,
	"moss":       0x8FBC3FFF,

	"cyan":      0x00FFFFFF,
	"teal":      0x007F7FFF,
	"turquoise": 0x40E0D0FF,
	"sky":       0x87CEEBFF,
	"denim":     0x3088B8FF,

	"blue":     0x0000FFFF,
	"navy":     0x00007FFF,
	"royal":    0x4169E1FF,
	"cobalt":   0x0047ABFF,
	"sapphire": 0x2646A8FF,

	"purple":   0x7F00FFFF,
	"violet":   0x8F57FFFF,
	"indigo":   0x4B0082FF,
	"lavender": 0xB991FFFF,
	"plum":     0x8E4585FF,

	"magenta":   0xFF00FFFF,
	"pink":      0xFF69B4FF,
	"rose":      0xFF50A0FF,
	"raspberry": 0x911437FF,

	"coral": 0xFF7F50FF,
	"peach": 0xFFBF81FF,
	"cream": 0xFFFFCFFF,
	"pearl": 0xF8F8E8FF,
	"ember": 0xF55A32FF,
	"steel": 0x708090FF,
	"slate": 0x404060FF,
}
