package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/pixterm/tcellscreen"
	"github.com/lixenwraith/pixterm/terminal"
)

func newPaletteCmd(a *app) *cobra.Command {
	var useTcell bool
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Show the 256-color palette and RGB quantisation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if useTcell {
				return a.runPaletteTcell()
			}
			return a.runPalette()
		},
	}
	cmd.Flags().BoolVar(&useTcell, "tcell", false, "render through a palette-limited tcell screen")
	return cmd
}

// drawPalette lays out the standard colors, the 6x6x6 cube, the gray ramp
// and a true color gradient above its quantised version
func drawPalette(b *terminal.Buffer) {
	b.Clear(terminal.DefaultBg)
	label := terminal.DefaultFg

	b.WriteText(0, 0, "standard", label, terminal.Transparent)
	for i := range 16 {
		b.WriteRect(10+i*2, 0, 11+i*2, 0, ' ', label, terminal.Index(uint8(i)))
	}

	// Six 6x6 blocks, one per red level
	b.WriteText(0, 2, "cube", label, terminal.Transparent)
	for r := range 6 {
		for g := range 6 {
			for bl := range 6 {
				idx := uint8(16 + 36*r + 6*g + bl)
				b.Write(10+r*7+bl, 2+g, ' ', label, terminal.Index(idx))
			}
		}
	}

	b.WriteText(0, 9, "gray", label, terminal.Transparent)
	for i := range 24 {
		b.Write(10+i*2, 9, ' ', label, terminal.Index(terminal.Gray256(uint8(i))))
		b.Write(11+i*2, 9, ' ', label, terminal.Index(terminal.Gray256(uint8(i))))
	}

	b.WriteText(0, 11, "rgb", label, terminal.Transparent)
	b.WriteText(0, 12, "256", label, terminal.Transparent)
	span := max(b.Width()-10, 1)
	for x := range span {
		c := terminal.Blend(terminal.Red, terminal.Blue, float64(x)/float64(span))
		b.Write(10+x, 11, ' ', label, c.Color())
		b.Write(10+x, 12, ' ', label, terminal.Index(terminal.Quantize256(c.R, c.G, c.B)))
	}

	b.WriteAligned(terminal.AlignRight, b.Height()-1, "any key to exit", label, terminal.Transparent)
}

func (a *app) runPalette() error {
	con, err := terminal.Open(a.consoleOptions()...)
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer con.Close()

	clock := terminal.NewFrameClock(a.cfg.FPS)
	for {
		if err := con.Update(); err != nil {
			return err
		}
		if con.KeyPressed() {
			return nil
		}
		drawPalette(con.Buffer())
		if err := con.Render(); err != nil {
			return err
		}
		clock.Wait()
	}
}

func (a *app) runPaletteTcell() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	w, h := screen.Size()
	buf := terminal.NewBuffer(w, h)
	target := tcellscreen.NewTarget(screen, 0)

	for {
		drawPalette(buf)
		target.Render(buf)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			w, h = ev.Size()
			buf.Resize(w, h)
			screen.Sync()
		case *tcell.EventKey:
			return nil
		case nil:
			return nil
		}
	}
}
