package main

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/pixterm/terminal"
	"github.com/lixenwraith/pixterm/tone"
)

const (
	historySize = 6
	maxStrokes  = 512
	minRadius   = 1
	maxRadius   = 20
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Show decoded keys and mouse state over drawing primitives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runDemo()
		},
	}
}

type point struct{ x, y int }

// demo is the viewer state; everything runs on the frame loop
type demo struct {
	con    *terminal.Console
	player *tone.Player

	history []string
	strokes []point
	center  point
	radius  int
	quit    bool
}

func newDemo(con *terminal.Console, player *tone.Player) *demo {
	return &demo{
		con:    con,
		player: player,
		center: point{con.Width() / 2, con.Height() / 2},
		radius: 5,
	}
}

func (a *app) runDemo() error {
	con, err := terminal.Open(a.consoleOptions()...)
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer con.Close()
	con.SetPixelMode(a.cfg.PixelMode)

	player := tone.NewPlayer(beep.SampleRate(a.cfg.Tone.SampleRate))
	if a.cfg.Tone.Enabled {
		if err := player.Init(); err != nil {
			log.Printf("%v (continuing without audio)", err)
		}
	}
	defer player.Close()

	d := newDemo(con, player)
	clock := terminal.NewFrameClock(a.cfg.FPS)
	for !d.quit {
		if err := con.Update(); err != nil {
			return err
		}
		d.handleInput()
		d.draw(clock.Elapsed())
		if err := con.Render(); err != nil {
			return err
		}
		clock.Wait()
	}
	return nil
}

// handleInput drains the key queue and applies this poll's mouse state
func (d *demo) handleInput() {
	for d.con.KeyPressed() {
		ev := d.con.PopKey()
		d.record(ev.String())

		switch {
		case ev.Key == terminal.KeyEscape, ev.Key == terminal.KeyCtrlC:
			d.quit = true
		case ev.Key != terminal.KeyRune:
		case ev.Rune == 'q':
			d.quit = true
		case ev.Rune == 'p':
			d.con.SetPixelMode(!d.con.PixelMode())
			d.strokes = d.strokes[:0]
		case ev.Rune == 'c':
			d.strokes = d.strokes[:0]
		case ev.Rune == 'b':
			if !d.player.Beep(880, 120*time.Millisecond) {
				d.record("(no audio)")
			}
		}
	}

	x, y := d.con.MouseX(), d.con.MouseY()
	if d.con.MouseDown(terminal.MouseLeft) && len(d.strokes) < maxStrokes {
		d.strokes = append(d.strokes, point{x, y})
	}
	if d.con.MousePressed(terminal.MouseRight) {
		d.center = point{x, y}
	}
	if d.con.MousePressed(terminal.MouseScrollUp) {
		d.radius = min(d.radius+1, maxRadius)
	}
	if d.con.MousePressed(terminal.MouseScrollDown) {
		d.radius = max(d.radius-1, minRadius)
	}
}

func (d *demo) record(s string) {
	if len(d.history) == historySize {
		copy(d.history, d.history[1:])
		d.history = d.history[:historySize-1]
	}
	d.history = append(d.history, s)
}

func (d *demo) draw(elapsed float64) {
	con := d.con
	buf := con.Buffer()
	w, h := con.Width(), con.Height()
	con.Clear(terminal.PureBlack.Color())

	if w < 24 || h < 10 {
		con.WriteText(0, 0, "terminal too small", terminal.LightRed.Color(), terminal.Transparent)
		return
	}

	frame := terminal.Cyan.Color()
	buf.WriteBox(0, 0, w-1, h-1, terminal.LineDouble, frame, terminal.Transparent)
	con.WriteAligned(terminal.AlignCenter, 0, " pixterm ", terminal.Yellow.Color(), terminal.Transparent)

	// Circle color cycles between red and blue
	t := (math.Sin(elapsed*2) + 1) / 2
	pulse := terminal.Blend(terminal.Red, terminal.Blue, t).Color()
	buf.WriteCircleOutline(d.center.x, d.center.y, d.radius, '*', pulse, terminal.Transparent)

	ink := terminal.Lime.Color()
	for _, p := range d.strokes {
		if con.PixelMode() {
			buf.WritePixel(p.x, p.y, ink, ink, ' ', ' ')
		} else {
			con.Write(p.x, p.y, '#', ink, terminal.Transparent)
		}
	}

	text := terminal.White.Color()
	dim := terminal.Gray.Color()
	con.WriteText(2, 1, fmt.Sprintf("size %dx%d  pixel mode %v  %s", w, h, con.PixelMode(), con.ColorMode()), dim, terminal.Transparent)
	con.WriteText(2, 2, fmt.Sprintf("mouse %d,%d  L:%s M:%s R:%s",
		con.MouseX(), con.MouseY(),
		buttonState(con, terminal.MouseLeft),
		buttonState(con, terminal.MouseMiddle),
		buttonState(con, terminal.MouseRight)), text, terminal.Transparent)
	for i, s := range d.history {
		con.WriteText(2, 4+i, s, text, terminal.Transparent)
	}

	con.WriteAligned(terminal.AlignCenter, h-1, " q quit  p pixels  c clear  b beep  wheel radius ", dim, terminal.Transparent)
}

func buttonState(con *terminal.Console, btn terminal.MouseButton) string {
	switch {
	case con.MousePressed(btn):
		return "pressed"
	case con.MouseReleased(btn):
		return "released"
	case con.MouseDown(btn):
		return "down"
	}
	return "up"
}
