package typing

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DefaultWaitValue != 0.250 {
		t.Errorf("DefaultWaitValue = %v", cfg.DefaultWaitValue)
	}
	if cfg.DefaultSpeedPerChar != 0.035 {
		t.Errorf("DefaultSpeedPerChar = %v", cfg.DefaultSpeedPerChar)
	}
	if cfg.MinSpeedModifier >= cfg.MaxSpeedModifier {
		t.Error("speed modifier bounds inverted")
	}
	if cfg.IntervalMultiplier('.') <= cfg.IntervalMultiplier(',') {
		t.Error("full stop should pause longer than comma")
	}
	if cfg.IntervalMultiplier('x') != 1 {
		t.Error("unlisted rune should multiply by 1")
	}
	if _, ok := cfg.Variables["FIRE"]; !ok {
		t.Error("built-in FIRE macro missing")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "typing.yaml")
	data := `
default_wait_value: 0.5
default_speed_per_char: 0.02
char_limit_per_frame: 12
default_clear_color: "#333333"
interval_multipliers:
  "~": 4
variables:
  shout: "{SHAKE=2;2}"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DefaultWaitValue != 0.5 {
		t.Errorf("DefaultWaitValue = %v", cfg.DefaultWaitValue)
	}
	if cfg.DefaultSpeedPerChar != 0.02 {
		t.Errorf("DefaultSpeedPerChar = %v", cfg.DefaultSpeedPerChar)
	}
	if cfg.CharLimitPerFrame != 12 {
		t.Errorf("CharLimitPerFrame = %d", cfg.CharLimitPerFrame)
	}
	if cfg.DefaultClearColor != 0x333333FF {
		t.Errorf("DefaultClearColor = %#08x", uint32(cfg.DefaultClearColor))
	}
	if cfg.IntervalMultiplier('~') != 4 {
		t.Errorf("interval multiplier for ~ = %v", cfg.IntervalMultiplier('~'))
	}
	if cfg.Variables["SHOUT"] != "{SHAKE=2;2}" {
		t.Errorf("variables = %v", cfg.Variables)
	}
	// Untouched fields keep defaults.
	if cfg.MaxSpeedModifier != 100.0 {
		t.Errorf("MaxSpeedModifier = %v", cfg.MaxSpeedModifier)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should error")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("default_clear_color: \"blorp\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Error("unresolvable clear color should error")
	}
}
