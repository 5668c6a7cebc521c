package palette

import "testing"

func TestParseHexForms(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want RGBA
	}{
		{"8-digit with hash", "#FF0000FF", 0xFF0000FF},
		{"8-digit without hash", "FF0000FF", 0xFF0000FF},
		{"8-digit translucent", "00FF0080", 0x00FF0080},
		{"6-digit forces opaque", "FF0000", 0xFF0000FF},
		{"6-digit with hash", "#336699", 0x336699FF},
		{"3-digit nibble doubling", "f00", 0xFF0000FF},
		{"3-digit mixed", "1a9", 0x11AA99FF},
		{"lowercase digits", "#ff00ffff", 0xFF00FFFF},
		{"too short", "ab", Sentinel},
		{"empty", "", Sentinel},
		{"not hex", "zzz", Sentinel},
		{"hash only", "#", Sentinel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseHex(tt.key); got != tt.want {
				t.Errorf("ParseHex(%q) = %#08x, want %#08x", tt.key, uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestParseHashAndPlainAgree(t *testing.T) {
	if a, b := Parse("#FF0000FF", nil), Parse("FF0000FF", nil); a != b {
		t.Errorf("hash and plain forms differ: %#08x vs %#08x", uint32(a), uint32(b))
	}
}

func TestTableResolve(t *testing.T) {
	if c := Default.Resolve("red"); c != 0xFF0000FF {
		t.Errorf("red = %#08x, want 0xFF0000FF", uint32(c))
	}
	// Lookup is exact and case-sensitive.
	if c := Default.Resolve("RED"); c != Sentinel {
		t.Errorf("RED resolved to %#08x, want Sentinel", uint32(c))
	}
	if c := Default.Resolve("no-such-color"); c != Sentinel {
		t.Errorf("miss returned %#08x, want Sentinel", uint32(c))
	}
}

func TestSentinelValue(t *testing.T) {
	// The sentinel must be exactly 256: distinguishable from transparent
	// black and never negative when widened.
	if Sentinel != 256 {
		t.Fatalf("Sentinel = %d, want 256", Sentinel)
	}
	if Sentinel == 0 {
		t.Fatal("Sentinel must not be zero")
	}
}

func TestParseResolverPrecedence(t *testing.T) {
	table := Table{"f00": 0x12345678}
	// Resolver hit wins over the hex interpretation of the same key.
	if c := Parse("f00", table); c != 0x12345678 {
		t.Errorf("resolver hit ignored, got %#08x", uint32(c))
	}
	// Resolver miss falls through to hex.
	if c := Parse("0f0", table); c != 0x00FF00FF {
		t.Errorf("hex fallback = %#08x, want 0x00FF00FF", uint32(c))
	}
}

func TestDescriptiveResolve(t *testing.T) {
	d := &Descriptive{}

	t.Run("Single name", func(t *testing.T) {
		if c := d.Resolve("red"); c != 0xFF0000FF {
			t.Errorf("red = %#08x, want 0xFF0000FF", uint32(c))
		}
	})

	t.Run("Dark lowers lightness", func(t *testing.T) {
		plain := d.Resolve("red")
		dark := d.Resolve("dark red")
		if dark == Sentinel {
			t.Fatal("dark red did not resolve")
		}
		if dark.R() >= plain.R() {
			t.Errorf("dark red R = %d, want < %d", dark.R(), plain.R())
		}
	})

	t.Run("Superlative is stronger", func(t *testing.T) {
		dark := d.Resolve("dark gray")
		darkest := d.Resolve("darkest gray")
		if darkest.R() >= dark.R() {
			t.Errorf("darkest gray R = %d, want < dark gray R = %d", darkest.R(), dark.R())
		}
	})

	t.Run("Weighted blend leans toward heavy color", func(t *testing.T) {
		c := d.Resolve("red 3 blue")
		if c == Sentinel {
			t.Fatal("did not resolve")
		}
		if c.R() <= c.B() {
			t.Errorf("red 3 blue = %#08x, want red-dominant", uint32(c))
		}
	})

	t.Run("Adjectives only", func(t *testing.T) {
		if c := d.Resolve("darkest dullest"); c != Sentinel {
			t.Errorf("colorless description resolved to %#08x", uint32(c))
		}
	})

	t.Run("Unknown name", func(t *testing.T) {
		if c := d.Resolve("dark blorp"); c != Sentinel {
			t.Errorf("unknown name resolved to %#08x", uint32(c))
		}
	})
}

func TestLerp(t *testing.T) {
	black := RGBA(0x000000FF)
	white := RGBA(0xFFFFFFFF)
	mid := black.Lerp(white, 0.5)
	if mid.R() < 0x7E || mid.R() > 0x80 {
		t.Errorf("midpoint R = %#02x, want ~0x7F", mid.R())
	}
	if got := black.Lerp(white, 0); got != black {
		t.Errorf("t=0 should return receiver, got %#08x", uint32(got))
	}
	if got := black.Lerp(white, 1); got != white {
		t.Errorf("t=1 should return target, got %#08x", uint32(got))
	}
}

func TestScaleAlpha(t *testing.T) {
	c := RGBA(0xFF0000FF)
	if got := c.ScaleAlpha(0.5).A(); got != 0x7F {
		t.Errorf("half alpha = %#02x, want 0x7F", got)
	}
	if got := c.ScaleAlpha(2); got != c {
		t.Errorf("factor > 1 must clamp, got %#08x", uint32(got))
	}
	if got := c.ScaleAlpha(-1).A(); got != 0 {
		t.Errorf("negative factor = %#02x, want 0", got)
	}
}
