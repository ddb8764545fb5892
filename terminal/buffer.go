package terminal

// Cell represents a single terminal cell
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// DefaultCell is a space in the terminal's default colors
var DefaultCell = Cell{Rune: ' ', Fg: DefaultFg, Bg: DefaultBg}

// unrendered marks shadow cells that must be repainted; no written cell has Rune 0
var unrendered = Cell{}

// Alignment selects the anchor for WriteAligned
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Buffer holds the application-authored grid and the shadow of the last rendered frame.
// Cells are row-major: cells[y*width + x]. Both grids always share dimensions.
type Buffer struct {
	cells  []Cell
	shadow []Cell
	width  int
	height int

	pixelMode bool
}

// NewBuffer creates a default-filled buffer whose shadow matches it,
// i.e. it assumes a freshly cleared screen
func NewBuffer(width, height int) *Buffer {
	width, height = max(width, 0), max(height, 0)
	b := &Buffer{
		cells:  make([]Cell, width*height),
		shadow: make([]Cell, width*height),
		width:  width,
		height: height,
	}
	fill(b.cells, DefaultCell)
	fill(b.shadow, DefaultCell)
	return b
}

func fill(cells []Cell, c Cell) {
	for i := range cells {
		cells[i] = c
	}
}

// Resize reallocates both grids, keeping the overlapping top-left region of current content.
// The shadow is reset to the unrendered sentinel so the next render repaints everything.
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == b.width && height == b.height {
		return
	}

	cells := make([]Cell, width*height)
	fill(cells, DefaultCell)

	copyW := min(width, b.width)
	copyH := min(height, b.height)
	for y := 0; y < copyH; y++ {
		copy(cells[y*width:y*width+copyW], b.cells[y*b.width:y*b.width+copyW])
	}

	b.cells = cells
	b.shadow = make([]Cell, width*height)
	fill(b.shadow, unrendered)
	b.width = width
	b.height = height
}

// Invalidate forces the next render to repaint every cell
func (b *Buffer) Invalidate() {
	fill(b.shadow, unrendered)
}

// Clear resets every cell to a space with default foreground over bg.
// The shadow is kept so the next render is still a minimal diff.
func (b *Buffer) Clear(bg Color) {
	if bg.IsTransparent() {
		bg = DefaultBg
	}
	fill(b.cells, Cell{Rune: ' ', Fg: DefaultFg, Bg: bg})
}

// PhysicalSize returns the grid dimensions in terminal columns and rows
func (b *Buffer) PhysicalSize() (width, height int) {
	return b.width, b.height
}

// Width returns the logical width; pixel mode halves it
func (b *Buffer) Width() int {
	if b.pixelMode {
		return b.width / 2
	}
	return b.width
}

// Height returns the number of rows
func (b *Buffer) Height() int {
	return b.height
}

// SetPixelMode toggles double-width addressing; existing cells are not touched
func (b *Buffer) SetPixelMode(on bool) {
	b.pixelMode = on
}

// PixelMode reports whether double-width addressing is active
func (b *Buffer) PixelMode() bool {
	return b.pixelMode
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// SetCell writes one physical cell. Out-of-bounds writes are dropped.
// Transparent colors take the value currently in the cell.
func (b *Buffer) SetCell(x, y int, r rune, fg, bg Color) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	old := b.cells[idx]
	if fg.IsTransparent() {
		fg = old.Fg
	}
	if bg.IsTransparent() {
		bg = old.Bg
	}
	b.cells[idx] = Cell{Rune: sanitizeGlyph(r), Fg: fg, Bg: bg}
}

// Cell returns the physical cell at (x, y)
func (b *Buffer) Cell(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// Fg returns the foreground at a physical position, DefaultFg outside the grid
func (b *Buffer) Fg(x, y int) Color {
	if c, ok := b.Cell(x, y); ok {
		return c.Fg
	}
	return DefaultFg
}

// Bg returns the background at a physical position, DefaultBg outside the grid
func (b *Buffer) Bg(x, y int) Color {
	if c, ok := b.Cell(x, y); ok {
		return c.Bg
	}
	return DefaultBg
}

// Write writes one logical cell. In pixel mode the glyph fills two physical columns.
func (b *Buffer) Write(x, y int, r rune, fg, bg Color) {
	if !b.pixelMode {
		b.SetCell(x, y, r, fg, bg)
		return
	}
	b.SetCell(2*x, y, r, fg, bg)
	b.SetCell(2*x+1, y, r, fg, bg)
}

// WriteText writes s left to right from logical (x, y); runes past the edge are dropped
func (b *Buffer) WriteText(x, y int, s string, fg, bg Color) {
	if y < 0 || y >= b.height {
		return
	}
	w := b.Width()
	col := x
	for _, r := range s {
		if col >= w {
			break
		}
		b.Write(col, y, r, fg, bg)
		col++
	}
}

// WriteBytes writes raw code-page bytes from logical (x, y)
func (b *Buffer) WriteBytes(x, y int, p []byte, fg, bg Color) {
	if y < 0 || y >= b.height {
		return
	}
	w := b.Width()
	for i, c := range p {
		if x+i >= w {
			break
		}
		b.Write(x+i, y, GlyphFromByte(c), fg, bg)
	}
}

// WriteAligned writes s on row y anchored left, centered or right against the logical width
func (b *Buffer) WriteAligned(align Alignment, y int, s string, fg, bg Color) {
	n := 0
	for range s {
		n++
	}
	x := 0
	switch align {
	case AlignCenter:
		x = (b.Width() - n) / 2
	case AlignRight:
		x = b.Width() - n
	}
	b.WriteText(x, y, s, fg, bg)
}

// dirty reports whether the cell at idx differs from the last rendered frame
func (b *Buffer) dirty(idx int) bool {
	return b.cells[idx] != b.shadow[idx]
}

// commit records the current grid as rendered
func (b *Buffer) commit() {
	copy(b.shadow, b.cells)
}
