package terminal

import (
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/encoding/charmap"
)

// Raw bytes are interpreted as IBM code page 437, so box-drawing and block
// glyphs addressed by byte (196, 205, 219, ...) render as their Unicode forms
var codePage = charmap.CodePage437

// widthCond measures with narrow East Asian ambiguous runes so box glyphs stay one column
var widthCond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Box and block glyphs by CP437 byte
const (
	cpShade    byte = 176 // ░
	cpBlock    byte = 219 // █
	cpHSingle  byte = 196 // ─
	cpHDouble  byte = 205 // ═
	cpVSingle  byte = 179 // │
	cpVDouble  byte = 186 // ║
	cpTLSingle byte = 218 // ┌
	cpTLDouble byte = 201 // ╔
	cpTRSingle byte = 191 // ┐
	cpTRDouble byte = 187 // ╗
	cpBLSingle byte = 192 // └
	cpBLDouble byte = 200 // ╚
	cpBRSingle byte = 217 // ┘
	cpBRDouble byte = 188 // ╝
)

// GlyphFromByte maps a raw code-page byte to its display rune
func GlyphFromByte(b byte) rune {
	if b < 0x80 {
		return rune(b)
	}
	return codePage.DecodeByte(b)
}

// BlockGlyph is the full block used for pixel-style drawing
var BlockGlyph = GlyphFromByte(cpBlock)

// sanitizeGlyph keeps the one-rune-one-cell invariant.
// Zero becomes a space, runes not exactly one column wide become '?'.
func sanitizeGlyph(r rune) rune {
	if r == 0 {
		return ' '
	}
	if r < 0x80 {
		if r < 0x20 || r == 0x7f {
			return '?'
		}
		return r
	}
	if widthCond.RuneWidth(r) != 1 {
		return '?'
	}
	return r
}
