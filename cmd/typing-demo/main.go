// Command typing-demo renders animated typing text in the terminal.
// Keys: space skips to the end or restarts, p pauses, q/ESC quits.
package main

import (
	"flag"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/typewriter/glyph"
	"github.com/lixenwraith/typewriter/palette"
	"github.com/lixenwraith/typewriter/typing"
)

const frameInterval = 33 * time.Millisecond

const showcaseText = "{EASE}{SPEED=0.7}Welcome to the {COLOR=gold}typewriter{CLEARCOLOR} engine.\n" +
	"{WAIT=0.5}{WAVE=1;1.5}This line rides a wave.{ENDWAVE}\n" +
	"{SHAKE=1;0.8}Unsteady ground!{ENDSHAKE}{WAIT=0.4}\n" +
	"{VAR=FIRE}Burning words{ENDGRADIENT}{ENDWIND} and " +
	"{RAINBOW}a splash of color{ENDRAINBOW}.\n" +
	"[dark sky]Descriptive colors work too.[ ]\n" +
	"{EVENT=finale}{HEARTBEAT=1;0.4}The end.{ENDHEARTBEAT}"

type demo struct {
	screen tcell.Screen
	label  *typing.Label

	width, height int
	audioReady    bool
	lastEvent     string
}

func newDemo(text string, cfg *typing.Config, sound bool) (*demo, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	engine := typing.NewEngine()
	engine.Palette = &palette.Descriptive{}
	if cfg != nil {
		engine.Config = cfg
	}
	label := typing.NewLabel(engine)
	label.SetText(text)

	d := &demo{screen: screen, label: label}
	d.width, d.height = screen.Size()
	label.EventSink = func(param string) {
		d.lastEvent = param
	}

	if sound {
		if err := d.initAudio(); err != nil {
			// Non-fatal, the demo runs silent.
			log.Printf("audio init failed: %v", err)
		}
	}
	return d, nil
}

func (d *demo) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	d.audioReady = true
	return nil
}

// playClick emits a short tick for one revealed glyph.
func (d *demo) playClick() {
	if !d.audioReady {
		return
	}
	sampleRate := beep.SampleRate(44100)
	tone, err := generators.SineTone(sampleRate, 1760)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(12*time.Millisecond), tone))
}

func (d *demo) run() {
	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- d.screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !d.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				d.width, d.height = d.screen.Size()
				d.screen.Sync()
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			before := d.label.Cursor()
			d.label.Update(dt)
			if d.label.Cursor() > before {
				d.playClick()
			}
			d.draw()
		}
	}
}

func (d *demo) handleKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyEscape, ev.Rune() == 'q':
		return false
	case ev.Rune() == ' ':
		if d.label.Ended() {
			d.label.Restart()
		} else {
			d.label.SkipToEnd()
		}
	case ev.Rune() == 'p':
		if d.label.Paused() {
			d.label.Resume()
		} else {
			d.label.Pause()
		}
	}
	return true
}

func (d *demo) draw() {
	d.screen.Clear()

	buf := d.label.Buffer()
	row, col := 2, 4
	for i := 0; i < d.label.Cursor() && i < buf.Len(); i++ {
		if buf.IsNewline(i) {
			row++
			col = 4
			continue
		}

		g := buf.Glyph(i)
		dx, dy := buf.Offset(i)
		x := col + int(math.Round(dx))
		y := row + int(math.Round(dy))
		col += buf.CellWidth(i)
		if x < 0 || y < 0 || x >= d.width || y >= d.height {
			continue
		}

		// Terminal cells have no alpha channel or sub-cell transforms:
		// alpha darkens toward the background, scale and rotation are
		// ignored.
		c := buf.FrameColor(i)
		c = c.Scale(float64(c.A()) / 255)
		style := tcell.StyleDefault.Foreground(
			tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B())))
		if g.Style()&glyph.StyleBold != 0 {
			style = style.Bold(true)
		}
		if g.Style()&glyph.StyleOblique != 0 {
			style = style.Italic(true)
		}
		if g.Style()&glyph.StyleUnderline != 0 {
			style = style.Underline(true)
		}
		if g.Style()&glyph.StyleStrike != 0 {
			style = style.StrikeThrough(true)
		}

		d.screen.SetContent(x, y, g.Char(), nil, style)
	}

	status := "space: skip/restart  p: pause  q: quit"
	if d.lastEvent != "" {
		status += "  last event: " + d.lastEvent
	}
	for i, r := range status {
		d.screen.SetContent(2+i, d.height-2, r, nil,
			tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
	d.screen.Show()
}

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML typing config")
		text       = flag.String("text", "", "annotated text to render instead of the showcase")
		sound      = flag.Bool("sound", false, "click per revealed glyph")
	)
	flag.Parse()

	var cfg *typing.Config
	if *configPath != "" {
		loaded, err := typing.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = loaded
	}

	input := showcaseText
	if *text != "" {
		input = *text
	}

	d, err := newDemo(input, cfg, *sound)
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	defer d.screen.Fini()

	d.run()
}
