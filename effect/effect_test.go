package effect

import (
	"math"
	"testing"

	"github.com/lixenwraith/typewriter/glyph"
	"github.com/lixenwraith/typewriter/palette"
)

type testHost struct {
	buf *glyph.Buffer
}

func newTestHost(text string) *testHost {
	b := glyph.NewBuffer(0xFFFFFFFF)
	b.Append(text)
	b.ResetFrame()
	return &testHost{buf: b}
}

func (h *testHost) Buffer() *glyph.Buffer    { return h.buf }
func (h *testHost) ClearColor() palette.RGBA { return 0xFFFFFFFF }

func TestFinishedBoundary(t *testing.T) {
	host := newTestHost("abc")

	t.Run("Finite duration", func(t *testing.T) {
		b := NewBase(host)
		b.SetDuration(2.0)
		b.Update(2.0)
		if b.Finished() {
			t.Error("Finished() = true at totalTime == duration, want false")
		}
		b.Update(0.0001)
		if !b.Finished() {
			t.Error("Finished() = false past duration, want true")
		}
	})

	t.Run("Infinite duration", func(t *testing.T) {
		b := NewBase(host)
		b.Update(1e9)
		if b.Finished() {
			t.Error("infinite-duration effect reported finished")
		}
	})
}

func TestProgressPingPong(t *testing.T) {
	host := newTestHost("abc")
	tests := []struct {
		name string
		time float64
		want float64
	}{
		{"At zero", 0, 0},
		{"At one", 1, 1},
		{"Folds back", 1.5, 0.5},
		{"Full cycle", 2, 0},
		{"Second cycle", 2.5, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBase(host)
			b.Update(tt.time)
			got := b.Progress(1, 0, true)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Progress(1, 0, pingpong) at t=%v = %v, want %v", tt.time, got, tt.want)
			}
		})
	}
}

func TestProgressSawtooth(t *testing.T) {
	host := newTestHost("abc")
	b := NewBase(host)
	b.Update(1.5)
	if got := b.Progress(1, 0, false); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("sawtooth at t=1.5 = %v, want 0.5", got)
	}
	// Negative raw values wrap into [0, 1].
	if got := b.Progress(1, -2.25, false); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("negative offset wrapped to %v, want 0.25", got)
	}
}

func TestFadeFactor(t *testing.T) {
	host := newTestHost("abc")

	t.Run("Before split", func(t *testing.T) {
		b := NewBase(host)
		b.SetDuration(4)
		b.Update(0.9) // progress 0.225 < 0.25
		if f := b.FadeFactor(); f != 1 {
			t.Errorf("FadeFactor before split = %v, want 1", f)
		}
	})

	t.Run("Monotonic after split", func(t *testing.T) {
		b := NewBase(host)
		b.SetDuration(4)
		b.Update(2)
		mid := b.FadeFactor()
		b.Update(1.5)
		late := b.FadeFactor()
		if !(mid < 1 && late < mid && late > 0) {
			t.Errorf("fade not monotonic: mid=%v late=%v", mid, late)
		}
	})

	t.Run("Infinite never fades", func(t *testing.T) {
		b := NewBase(host)
		b.Update(1e6)
		if f := b.FadeFactor(); f != 1 {
			t.Errorf("infinite-duration FadeFactor = %v, want 1", f)
		}
	})
}

func TestBindAndClose(t *testing.T) {
	host := newTestHost("abcdef")
	b := NewBase(host)
	b.Bind("WAVE", 2)
	if b.Name() != "WAVE" || b.IndexStart() != 2 {
		t.Fatalf("Bind: name=%q start=%d", b.Name(), b.IndexStart())
	}
	if b.IndexEnd() != -1 {
		t.Fatalf("open effect IndexEnd = %d, want -1", b.IndexEnd())
	}
	b.Close(5)
	b.Close(3) // second close must not take
	if b.IndexEnd() != 5 {
		t.Errorf("IndexEnd = %d, want 5", b.IndexEnd())
	}
	if b.Local(4) != 2 {
		t.Errorf("Local(4) = %d, want 2", b.Local(4))
	}
}

func TestParamFallbacks(t *testing.T) {
	if v := ParamFloat([]string{"2.5"}, 0, 1); v != 2.5 {
		t.Errorf("ParamFloat parse = %v", v)
	}
	if v := ParamFloat([]string{"junk"}, 0, 7); v != 7 {
		t.Errorf("unparsable param = %v, want default 7", v)
	}
	if v := ParamFloat(nil, 3, 7); v != 7 {
		t.Errorf("absent param = %v, want default 7", v)
	}
	if d := ParamDuration(nil, 0); !math.IsInf(d, 1) {
		t.Errorf("absent duration = %v, want +Inf", d)
	}
	if d := ParamDuration([]string{"-2"}, 0); !math.IsInf(d, 1) {
		t.Errorf("negative duration = %v, want +Inf", d)
	}
	if c := ParamColor([]string{"red"}, 0, 0); c != 0xFF0000FF {
		t.Errorf("ParamColor(red) = %#08x", uint32(c))
	}
	if c := ParamColor([]string{"blorp"}, 0, 0x11223344); c != 0x11223344 {
		t.Errorf("unknown color param = %#08x, want default", uint32(c))
	}
}

func TestWaveMovesGlyphs(t *testing.T) {
	host := newTestHost("wave")
	w := NewWave(host, nil)
	w.Bind("WAVE", 0)
	w.Close(4)

	w.Update(0.35)
	moved := false
	for i := 0; i < 4; i++ {
		w.Apply(i, 0.35)
		if _, dy := host.buf.Offset(i); dy != 0 {
			moved = true
		}
	}
	if !moved {
		t.Error("wave left every glyph at rest")
	}
}

func TestRainbowPreservesAlpha(t *testing.T) {
	host := newTestHost("rgb")
	host.buf.ScaleFrameAlpha(1, 0.5)
	before := host.buf.FrameColor(1).A()

	r := NewRainbow(host, nil)
	r.Bind("RAINBOW", 0)
	r.Update(0.2)
	r.Apply(1, 0.2)

	after := host.buf.FrameColor(1)
	if after.A() != before {
		t.Errorf("alpha changed: %d -> %d", before, after.A())
	}
	if after == 0xFFFFFFFF {
		t.Error("rainbow did not recolor the glyph")
	}
}

func TestShakeDeterministic(t *testing.T) {
	a := newTestHost("xy")
	b := newTestHost("xy")
	for _, h := range []*testHost{a, b} {
		s := NewShake(h, []string{"1", "1"})
		s.Bind("SHAKE", 0)
		s.Update(0.5)
		s.Apply(0, 0.5)
	}
	ax, ay := a.buf.Offset(0)
	bx, by := b.buf.Offset(0)
	if ax != bx || ay != by {
		t.Errorf("shake not deterministic: (%v,%v) vs (%v,%v)", ax, ay, bx, by)
	}
	if ax == 0 && ay == 0 {
		t.Error("shake produced no displacement")
	}
}

func TestHeartbeatRestsBetweenBeats(t *testing.T) {
	host := newTestHost("ab")
	h := NewHeartbeat(host, nil)
	h.Bind("HEARTBEAT", 0)
	h.Update(0.5) // p = 0.5, outside both thump windows
	h.Apply(0, 0.5)
	if s := host.buf.RenderScale(0); s != 1 {
		t.Errorf("scale between beats = %v, want 1", s)
	}
}

func TestEaseSettles(t *testing.T) {
	host := newTestHost("abcd")
	e := NewEase(host, nil)
	e.Bind("EASE", 0)
	e.Update(10) // long past the slide-in window
	e.Apply(0, 10)
	if _, dy := host.buf.Offset(0); dy != 0 {
		t.Errorf("settled glyph still offset by %v", dy)
	}
}

func TestHangDangles(t *testing.T) {
	host := newTestHost("rope")
	h := NewHang(host, nil)
	h.Bind("HANG", 0)
	h.Update(1) // well past the settle window
	h.Apply(0, 1)
	if _, dy := host.buf.Offset(0); dy <= 0 {
		t.Errorf("hang offset = %v, want below rest", dy)
	}
}

func TestSickWobbles(t *testing.T) {
	host := newTestHost("ughh")
	s := NewSick(host, nil)
	s.Bind("SICK", 0)
	s.Update(0.4)
	moved := false
	for i := 0; i < 4; i++ {
		s.Apply(i, 0.4)
		if dx, dy := host.buf.Offset(i); dx != 0 || dy != 0 {
			moved = true
		}
	}
	if !moved {
		t.Error("sick left every glyph at rest")
	}
}

func TestSlideShiftsUniformly(t *testing.T) {
	host := newTestHost("unit")
	s := NewSlide(host, nil)
	s.Bind("SLIDE", 0)
	s.Update(0.35)

	var first float64
	for i := 0; i < 4; i++ {
		s.Apply(i, 0.35)
		dx, _ := host.buf.Offset(i)
		if i == 0 {
			first = dx
			continue
		}
		if dx != first {
			t.Fatalf("glyph %d shifted %v, glyph 0 shifted %v", i, dx, first)
		}
	}
	if first == 0 {
		t.Error("slide produced no displacement")
	}
}

func TestHashNoiseRange(t *testing.T) {
	for i := -1000; i < 1000; i++ {
		v := hashNoise(i)
		if v < 0 || v >= 1 {
			t.Fatalf("hashNoise(%d) = %v out of [0,1)", i, v)
		}
	}
	if hashNoise(1) == hashNoise(2) {
		t.Error("adjacent seeds collide suspiciously")
	}
}
