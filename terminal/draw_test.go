package terminal

import "testing"

func runeAt(b *Buffer, x, y int) rune {
	c, _ := b.Cell(x, y)
	return c.Rune
}

func TestWriteBox(t *testing.T) {
	tests := []struct {
		name  string
		line  LineType
		glyph string // TL H TR V BL BR
	}{
		{"double", LineDouble, "╔═╗║╚╝"},
		{"single", LineSingle, "┌─┐│└┘"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(6, 4)
			// Reversed corners are normalised
			b.WriteBox(4, 3, 0, 0, tt.line, DefaultFg, DefaultBg)
			g := []rune(tt.glyph)

			checks := []struct {
				x, y int
				r    rune
			}{
				{0, 0, g[0]}, {2, 0, g[1]}, {4, 0, g[2]},
				{0, 1, g[3]}, {4, 2, g[3]},
				{0, 3, g[4]}, {2, 3, g[1]}, {4, 3, g[5]},
				{2, 1, ' '}, {5, 0, ' '},
			}
			for _, c := range checks {
				if got := runeAt(b, c.x, c.y); got != c.r {
					t.Errorf("(%d,%d) = %q, want %q", c.x, c.y, got, c.r)
				}
			}
		})
	}
}

func TestWriteRectInclusive(t *testing.T) {
	b := NewBuffer(5, 5)
	b.WriteRect(3, 3, 1, 1, '#', DefaultFg, DefaultBg)
	count := 0
	for _, c := range b.cells {
		if c.Rune == '#' {
			count++
		}
	}
	if count != 9 {
		t.Errorf("filled %d cells, want 9", count)
	}
	if runeAt(b, 0, 0) != ' ' || runeAt(b, 4, 4) != ' ' {
		t.Error("rect spilled outside its bounds")
	}
}

func TestWriteLine(t *testing.T) {
	b := NewBuffer(5, 5)
	b.WriteLine(0, 0, 3, 3, '*', DefaultFg, DefaultBg)
	for i := 0; i <= 3; i++ {
		if runeAt(b, i, i) != '*' {
			t.Errorf("diagonal cell %d missing", i)
		}
	}

	b = NewBuffer(5, 1)
	b.WriteLine(4, 0, 0, 0, '-', DefaultFg, DefaultBg)
	for x := 0; x < 5; x++ {
		if runeAt(b, x, 0) != '-' {
			t.Errorf("horizontal cell %d missing", x)
		}
	}
}

func TestWriteCircles(t *testing.T) {
	b := NewBuffer(20, 9)
	b.WriteCircleOutline(4, 4, 3, BlockGlyph, DefaultFg, DefaultBg)

	// Pixel (x, y) occupies physical columns 2x and 2x+1
	if runeAt(b, 14, 4) != BlockGlyph || runeAt(b, 15, 4) != BlockGlyph {
		t.Error("rightmost outline pixel missing")
	}
	if runeAt(b, 8, 4) != ' ' {
		t.Error("outline filled the centre")
	}

	b = NewBuffer(20, 9)
	b.WriteCircleFilled(4, 4, 2, BlockGlyph, DefaultFg, DefaultBg)
	if runeAt(b, 8, 4) != BlockGlyph {
		t.Error("filled circle missing centre")
	}
	if runeAt(b, 8, 1) != ' ' {
		t.Error("filled circle exceeded its radius")
	}
}

func TestWritePixelIgnoresPixelMode(t *testing.T) {
	b := NewBuffer(6, 1)
	b.SetPixelMode(true)
	b.WritePixel(1, 0, DefaultFg, DefaultBg, '[', ']')
	if runeAt(b, 2, 0) != '[' || runeAt(b, 3, 0) != ']' {
		t.Errorf("pixel at wrong columns: %q%q", runeAt(b, 2, 0), runeAt(b, 3, 0))
	}
}
