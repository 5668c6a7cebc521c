package typing

import (
	"testing"

	"github.com/lixenwraith/typewriter/effect"
)

func TestRegisterEffectCreatesEndToken(t *testing.T) {
	e := NewEngine()
	e.RegisterEffect("PULSE", effect.NewHeartbeat)

	l := NewLabel(e)
	l.SetText("{PULSE}beat{ENDPULSE}")
	entries := l.Entries()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want start+end", len(entries))
	}
	if entries[0].Category != CategoryEffectStart || entries[0].Name != "PULSE" {
		t.Errorf("start entry = %+v", entries[0])
	}
	if entries[1].Category != CategoryEffectEnd || entries[1].Name != "PULSE" {
		t.Errorf("end entry = %+v", entries[1])
	}
	if entries[0].Effect.IndexEnd() != 4 {
		t.Errorf("span end = %d, want 4", entries[0].Effect.IndexEnd())
	}
}

func TestUnregisterEffectRemovesBothTokens(t *testing.T) {
	e := NewEngine()
	e.RegisterEffect("PULSE", effect.NewHeartbeat)
	e.UnregisterEffect("pulse") // case-insensitive

	l := NewLabel(e)
	l.SetText("{PULSE}x{ENDPULSE}")
	if n := len(l.Entries()); n != 0 {
		t.Errorf("unregistered effect produced %d entries", n)
	}
	// Dead tokens stay as literal text instead of crashing or vanishing.
	if got := l.Buffer().PlainText(); got != "{PULSE}x{ENDPULSE}" {
		t.Errorf("PlainText = %q", got)
	}
}

func TestRegistrationCaseNormalized(t *testing.T) {
	e := NewEngine()
	e.RegisterEffect("pulse", effect.NewHeartbeat)
	if !e.EffectRegistered("PULSE") {
		t.Error("lowercase registration not found under uppercase lookup")
	}
	if !e.EffectRegistered("Pulse") {
		t.Error("mixed-case lookup failed")
	}
}

func TestReservedNamesRejected(t *testing.T) {
	e := NewEngine()
	e.RegisterEffect("WAIT", effect.NewHeartbeat)
	if e.EffectRegistered("WAIT") {
		t.Error("built-in token name must not be registrable as an effect")
	}
}

func TestDirtyRebuildAfterRegistryChange(t *testing.T) {
	e := NewEngine()
	l := NewLabel(e)

	l.SetText("{GLOW}x")
	if got := l.Buffer().PlainText(); got != "{GLOW}x" {
		t.Fatalf("unregistered GLOW altered text: %q", got)
	}

	e.RegisterEffect("GLOW", effect.NewBlink)
	l.Restart()
	if n := len(l.Entries()); n != 1 {
		t.Fatalf("after registration got %d entries, want 1", n)
	}
	if got := l.Buffer().PlainText(); got != "x" {
		t.Errorf("PlainText = %q, want x", got)
	}

	// RESET must now close the new effect too.
	l.SetText("a{RESET}b")
	found := false
	for _, en := range l.Entries() {
		if en.Category == CategoryEffectEnd && en.Name == "GLOW" {
			found = true
		}
	}
	if !found {
		t.Error("RESET expansion not rebuilt after registration")
	}
}

func TestGlobalVariables(t *testing.T) {
	e := NewEngine()
	e.SetGlobal("hero", "Ada")
	if v, ok := e.Global("HERO"); !ok || v != "Ada" {
		t.Errorf("Global(HERO) = %q, %v", v, ok)
	}
	if v, ok := e.Global("hero"); !ok || v != "Ada" {
		t.Errorf("lookup not case-insensitive: %q, %v", v, ok)
	}
	e.ClearGlobal("Hero")
	if _, ok := e.Global("hero"); ok {
		t.Error("ClearGlobal did not remove the binding")
	}
}
