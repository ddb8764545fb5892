package terminal

import "math"

// LineType specifies box drawing character style
type LineType uint8

const (
	LineDouble LineType = iota // ╔═╗║╚╝
	LineSingle                 // ┌─┐│└┘
)

// Box glyph sets indexed by LineType, CP437 order: TL, H, TR, V, BL, BR
var boxBytes = [...][6]byte{
	LineDouble: {cpTLDouble, cpHDouble, cpTRDouble, cpVDouble, cpBLDouble, cpBRDouble},
	LineSingle: {cpTLSingle, cpHSingle, cpTRSingle, cpVSingle, cpBLSingle, cpBRSingle},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// WritePixel paints the physical cell pair for logical pixel (x, y) regardless of pixel mode
func (b *Buffer) WritePixel(x, y int, fg, bg Color, left, right rune) {
	b.SetCell(2*x, y, left, fg, bg)
	b.SetCell(2*x+1, y, right, fg, bg)
}

// WriteRect fills the inclusive rectangle (x1,y1)-(x2,y2) with r
func (b *Buffer) WriteRect(x1, y1, x2, y2 int, r rune, fg, bg Color) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for x := x1; x <= x2; x++ {
		for y := y1; y <= y2; y++ {
			b.Write(x, y, r, fg, bg)
		}
	}
}

// WriteBox draws the outline of the inclusive rectangle (x1,y1)-(x2,y2)
func (b *Buffer) WriteBox(x1, y1, x2, y2 int, line LineType, fg, bg Color) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	if line >= LineType(len(boxBytes)) {
		line = LineSingle
	}
	set := boxBytes[line]
	h := GlyphFromByte(set[boxH])
	v := GlyphFromByte(set[boxV])

	for x := x1 + 1; x < x2; x++ {
		b.Write(x, y1, h, fg, bg)
		b.Write(x, y2, h, fg, bg)
	}
	for y := y1 + 1; y < y2; y++ {
		b.Write(x1, y, v, fg, bg)
		b.Write(x2, y, v, fg, bg)
	}

	b.Write(x1, y1, GlyphFromByte(set[boxTL]), fg, bg)
	b.Write(x1, y2, GlyphFromByte(set[boxBL]), fg, bg)
	b.Write(x2, y1, GlyphFromByte(set[boxTR]), fg, bg)
	b.Write(x2, y2, GlyphFromByte(set[boxBR]), fg, bg)
}

// WriteLine draws a Bresenham line from (x1,y1) to (x2,y2), both ends included
func (b *Buffer) WriteLine(x1, y1, x2, y2 int, r rune, fg, bg Color) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for {
		b.Write(x1, y1, r, fg, bg)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// WriteCircleOutline paints pixels whose rounded distance from (cx, cy) equals radius
func (b *Buffer) WriteCircleOutline(cx, cy, radius int, r rune, fg, bg Color) {
	for x := cx - radius - 1; x <= cx+radius+1; x++ {
		for y := cy - radius - 1; y <= cy+radius+1; y++ {
			if distanceInt(x, y, cx, cy) == radius {
				b.WritePixel(x, y, fg, bg, r, r)
			}
		}
	}
}

// WriteCircleFilled paints pixels whose rounded distance from (cx, cy) is within radius
func (b *Buffer) WriteCircleFilled(cx, cy int, radius float64, r rune, fg, bg Color) {
	span := int(radius) + 1
	for x := cx - span; x <= cx+span; x++ {
		for y := cy - span; y <= cy+span; y++ {
			if float64(distanceInt(x, y, cx, cy)) <= radius {
				b.WritePixel(x, y, fg, bg, r, r)
			}
		}
	}
}

// distanceInt is the Euclidean distance rounded to the nearest integer
func distanceInt(x1, y1, x2, y2 int) int {
	return int(math.Round(math.Hypot(float64(x2-x1), float64(y2-y1))))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
