package terminal

import (
	"io"
	"unicode/utf8"
)

// Renderer turns the difference between a Buffer and its shadow into ANSI output
type Renderer struct {
	colorMode ColorMode

	// frame is reused across renders; it only grows
	frame []byte
}

// NewRenderer creates a renderer for the given color capability
func NewRenderer(mode ColorMode) *Renderer {
	return &Renderer{
		colorMode: mode,
		frame:     make([]byte, 0, 64*1024),
	}
}

// ColorMode returns the color capability the renderer encodes for
func (r *Renderer) ColorMode() ColorMode {
	return r.colorMode
}

// Frame builds the output for every dirty cell without writing it.
// Returns nil when nothing changed.
func (r *Renderer) Frame(b *Buffer) []byte {
	buf := r.frame[:0]
	dirty := false

	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			idx := row + x
			if !b.dirty(idx) {
				continue
			}
			c := b.cells[idx]
			buf = appendCursorPos(buf, x, y)
			buf = appendFg(buf, c.Fg, r.colorMode)
			buf = appendBg(buf, c.Bg, r.colorMode)
			if c.Rune < utf8.RuneSelf {
				buf = append(buf, byte(c.Rune))
			} else {
				buf = utf8.AppendRune(buf, c.Rune)
			}
			dirty = true
		}
	}

	r.frame = buf
	if !dirty {
		return nil
	}
	r.frame = append(r.frame, csiSGR0...)
	return r.frame
}

// Render writes the diff of b to w in a single Write call and commits the shadow.
// The shadow is only committed after a successful write, so a failed frame is retried whole.
func (r *Renderer) Render(w io.Writer, b *Buffer) (int, error) {
	frame := r.Frame(b)
	if frame == nil {
		return 0, nil
	}
	n, err := w.Write(frame)
	if err != nil {
		return n, err
	}
	b.commit()
	return n, nil
}
