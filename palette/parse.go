package palette

// Parse resolves a color string using the given resolver, falling back to hex
// notation when the resolver misses. Returns Sentinel when nothing matches.
//
// Hex fallback, longest prefix first: 8 digits are RGBA, 6 digits are RGB with
// alpha forced opaque, 3 digits are RGB444 with each nibble doubled into a full
// byte and alpha forced opaque. A leading '#' is stripped before length checks.
func Parse(key string, r Resolver) RGBA {
	if key == "" {
		return Sentinel
	}
	if r != nil {
		if c := r.Resolve(key); c != Sentinel {
			return c
		}
	}
	return ParseHex(key)
}

// ParseHex decodes hex color notation only, without consulting any resolver.
func ParseHex(key string) RGBA {
	if len(key) > 0 && key[0] == '#' {
		key = key[1:]
	}
	if len(key) < 3 {
		return Sentinel
	}
	if len(key) >= 8 {
		if v, ok := hexValue(key[:8]); ok {
			return RGBA(v)
		}
	}
	if len(key) >= 6 {
		if v, ok := hexValue(key[:6]); ok {
			return RGBA(v<<8 | 0xFF)
		}
	}
	if v, ok := hexValue(key[:3]); ok {
		r := v >> 8 & 0xF
		g := v >> 4 & 0xF
		b := v & 0xF
		return RGBA(r<<28 | r<<24 | g<<20 | g<<16 | b<<12 | b<<8 | 0xFF)
	}
	return Sentinel
}

// hexValue parses an unsigned hex string of up to 8 digits.
func hexValue(s string) (uint32, bool) {
	var v uint32
	for i := 0; i < len(s); i++ {
		var d uint32
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			d = uint32(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint32(c-'A') + 10
		default:
			return 0, false
		}
		v = v<<4 | d
	}
	return v, true
}
