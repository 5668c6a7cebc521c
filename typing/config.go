package typing

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/typewriter/palette"
)

// Config holds the process-wide typing tunables. An engine owns one Config;
// mutate it before labels start revealing.
type Config struct {
	// DefaultWaitValue is the pause applied by a bare {WAIT}, in seconds.
	DefaultWaitValue float64

	// DefaultSpeedPerChar is the base reveal interval per glyph, in seconds.
	DefaultSpeedPerChar float64

	// MinSpeedModifier and MaxSpeedModifier clamp the {SPEED=n} modifier.
	MinSpeedModifier float64
	MaxSpeedModifier float64

	// CharLimitPerFrame caps glyphs revealed per update; <= 0 is unlimited.
	CharLimitPerFrame int

	// DefaultClearColor is the base text color and the color restored by
	// {CLEARCOLOR} / {ENDCOLOR}.
	DefaultClearColor palette.RGBA

	// IntervalMultipliers stretch or shrink the reveal interval after
	// specific characters, letting punctuation breathe.
	IntervalMultipliers map[rune]float64

	// Variables seeds the engine's global variable table. Values may
	// expand to further tags, acting as macros.
	Variables map[string]string
}

// DefaultConfig returns the stock tunables, including the built-in macro
// variables (FIRE, ICE, JOLT) that expand to tag combinations.
func DefaultConfig() *Config {
	return &Config{
		DefaultWaitValue:    0.250,
		DefaultSpeedPerChar: 0.035,
		MinSpeedModifier:    0.001,
		MaxSpeedModifier:    100.0,
		CharLimitPerFrame:   0,
		DefaultClearColor:   0xFFFFFFFF,
		IntervalMultipliers: map[rune]float64{
			',': 3, ';': 3, ':': 3,
			'.': 6, '!': 6, '?': 6,
			'\n': 8,
		},
		Variables: map[string]string{
			"FIRE": "{GRADIENT=#FF7000FF;#FFD000FF;1;2}{WIND=1;0.6;1;1.5}",
			"ICE":  "{GRADIENT=#80E0FFFF;#3060C0FF;1;0.7}{SHAKE=0.5;0.3}",
			"JOLT": "{RAINBOW=1;2;0.9;0.6}{SHAKE=2;1.2}",
		},
	}
}

// IntervalMultiplier returns the reveal-interval multiplier for r, 1 when
// none is configured.
func (c *Config) IntervalMultiplier(r rune) float64 {
	if m, ok := c.IntervalMultipliers[r]; ok {
		return m
	}
	return 1
}

// fileConfig is the YAML shape of a config file. Zero fields keep defaults.
type fileConfig struct {
	DefaultWaitValue    float64            `yaml:"default_wait_value"`
	DefaultSpeedPerChar float64            `yaml:"default_speed_per_char"`
	MinSpeedModifier    float64            `yaml:"min_speed_modifier"`
	MaxSpeedModifier    float64            `yaml:"max_speed_modifier"`
	CharLimitPerFrame   int                `yaml:"char_limit_per_frame"`
	DefaultClearColor   string             `yaml:"default_clear_color"`
	IntervalMultipliers map[string]float64 `yaml:"interval_multipliers"`
	Variables           map[string]string  `yaml:"variables"`
}

// LoadConfig reads a YAML config file on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read typing config")
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, errors.Wrapf(err, "parse typing config %s", path)
	}

	cfg := DefaultConfig()
	if fc.DefaultWaitValue > 0 {
		cfg.DefaultWaitValue = fc.DefaultWaitValue
	}
	if fc.DefaultSpeedPerChar > 0 {
		cfg.DefaultSpeedPerChar = fc.DefaultSpeedPerChar
	}
	if fc.MinSpeedModifier > 0 {
		cfg.MinSpeedModifier = fc.MinSpeedModifier
	}
	if fc.MaxSpeedModifier > 0 {
		cfg.MaxSpeedModifier = fc.MaxSpeedModifier
	}
	if fc.CharLimitPerFrame > 0 {
		cfg.CharLimitPerFrame = fc.CharLimitPerFrame
	}
	if fc.DefaultClearColor != "" {
		c := palette.Parse(fc.DefaultClearColor, palette.Default)
		if c == palette.Sentinel {
			return nil, errors.Errorf("unresolvable default_clear_color %q", fc.DefaultClearColor)
		}
		cfg.DefaultClearColor = c
	}
	for key, mult := range fc.IntervalMultipliers {
		for _, r := range key {
			cfg.IntervalMultipliers[r] = mult
			break
		}
	}
	for name, value := range fc.Variables {
		cfg.Variables[strings.ToUpper(name)] = value
	}
	return cfg, nil
}
