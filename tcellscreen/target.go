// Package tcellscreen renders a terminal.Buffer through a palette-limited tcell.Screen.
// Colors are quantised to the 256-color palette and resolved through a
// color-pair cache to memoised styles.
package tcellscreen

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pixterm/terminal"
)

// DefaultPairs matches the pair count of a typical 256-color curses terminal
const DefaultPairs = 256

// Target copies changed buffer cells into a tcell screen
type Target struct {
	screen tcell.Screen
	pairs  *terminal.PairCache
	styles []tcell.Style

	shadow []terminal.Cell
	width  int
	height int
}

// NewTarget wraps an initialised screen; pairs <= 0 means DefaultPairs
func NewTarget(screen tcell.Screen, pairs int) *Target {
	if pairs <= 0 {
		pairs = DefaultPairs
	}
	cache := terminal.NewPairCache(pairs)
	return &Target{
		screen: screen,
		pairs:  cache,
		styles: make([]tcell.Style, max(pairs, 2)),
	}
}

// Pairs exposes the pair cache
func (t *Target) Pairs() *terminal.PairCache {
	return t.pairs
}

// Invalidate forces the next Render to set every cell
func (t *Target) Invalidate() {
	clear(t.shadow)
}

// Style resolves a cell's colors to the pair's style
func (t *Target) Style(fg, bg terminal.Color) tcell.Style {
	id, fresh := t.pairs.Pair(fg, bg)
	if fresh {
		f, b := terminal.PairColors(fg, bg)
		t.styles[id] = tcell.StyleDefault.
			Foreground(tcell.PaletteColor(int(f))).
			Background(tcell.PaletteColor(int(b)))
	}
	return t.styles[id]
}

// Render sets every cell that changed since the last call, then shows the screen.
// It returns the number of cells set.
func (t *Target) Render(b *terminal.Buffer) int {
	w, h := b.PhysicalSize()
	if w != t.width || h != t.height {
		t.width, t.height = w, h
		t.shadow = make([]terminal.Cell, w*h)
		t.screen.Clear()
	}

	n := 0
	for y := range h {
		for x := range w {
			c, _ := b.Cell(x, y)
			idx := y*w + x
			if t.shadow[idx] == c {
				continue
			}
			t.screen.SetContent(x, y, c.Rune, nil, t.Style(c.Fg, c.Bg))
			t.shadow[idx] = c
			n++
		}
	}

	if n > 0 {
		t.screen.Show()
	}
	return n
}
