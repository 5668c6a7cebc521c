package palette

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Descriptive resolves multi-word color descriptions such as
// "dark red", "dullest blue", or "red 3 orange": adjectives adjust lightness
// and saturation, named colors are blended by their optional numeric weights.
// Term lookup is case-insensitive; an empty or colorless description returns
// Sentinel.
type Descriptive struct {
	// Names supplies the color vocabulary; Default when nil.
	Names Table
}

// adjectives maps each recognized form to lightness and saturation deltas.
// The -er and -est forms scale the base adjustment.
var adjectives = map[string][2]float64{
	"light":    {0.15, 0},
	"lighter":  {0.30, 0},
	"lightest": {0.45, 0},
	"dark":     {-0.15, 0},
	"darker":   {-0.30, 0},
	"darkest":  {-0.45, 0},
	"rich":     {0, 0.15},
	"richer":   {0, 0.30},
	"richest":  {0, 0.45},
	"dull":     {0, -0.15},
	"duller":   {0, -0.30},
	"dullest":  {0, -0.45},
	"pale":     {0.15, -0.15},
	"deep":     {-0.15, 0.15},
}

// Resolve implements Resolver.
func (d *Descriptive) Resolve(key string) RGBA {
	names := d.Names
	if names == nil {
		names = Default
	}

	var lighten, saturate float64
	var mixed []colorful.Color
	var weights []float64
	var alphaSum float64

	for _, term := range strings.Fields(strings.ToLower(key)) {
		if adj, ok := adjectives[term]; ok {
			lighten += adj[0]
			saturate += adj[1]
			continue
		}
		if w, err := strconv.ParseFloat(term, 64); err == nil {
			// A bare number weights the color that precedes it.
			if len(weights) > 0 && w > 0 {
				weights[len(weights)-1] = w
			}
			continue
		}
		c := names.Resolve(term)
		if c == Sentinel {
			c = ParseHex(term)
		}
		if c == Sentinel {
			return Sentinel
		}
		mixed = append(mixed, colorful.Color{
			R: float64(c.R()) / 255,
			G: float64(c.G()) / 255,
			B: float64(c.B()) / 255,
		})
		weights = append(weights, 1)
		alphaSum += float64(c.A())
	}
	if len(mixed) == 0 {
		return Sentinel
	}

	// Weighted blend in linear RGB, then adjust lightness/saturation in HSL.
	var r, g, b, total float64
	for i, c := range mixed {
		lr, lg, lb := c.LinearRgb()
		w := weights[i]
		r += lr * w
		g += lg * w
		b += lb * w
		total += w
	}
	blend := colorful.LinearRgb(r/total, g/total, b/total).Clamped()

	if lighten != 0 || saturate != 0 {
		h, s, l := blend.Hsl()
		blend = colorful.Hsl(h, clamp01(s+saturate), clamp01(l+lighten)).Clamped()
	}

	return FromRGBA(
		uint8(blend.R*255+0.5),
		uint8(blend.G*255+0.5),
		uint8(blend.B*255+0.5),
		uint8(alphaSum/float64(len(mixed))+0.5),
	)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
