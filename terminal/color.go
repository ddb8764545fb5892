package terminal

import (
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// String returns the config name of the mode
func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// RGB represents a 24-bit color, the only form used for arithmetic
type RGB struct {
	R, G, B uint8
}

// colorKind tags the Color variants
type colorKind uint8

const (
	kindTransparent colorKind = iota // zero value, resolved against the target cell on write
	kindRGB
	kindIndex
	kindDefaultFg
	kindDefaultBg
)

// Color is a displayable color: RGB, palette index, terminal default, or transparent.
// The zero value is Transparent. Colors compare with ==.
type Color struct {
	kind colorKind
	r    uint8 // palette index for kindIndex
	g    uint8
	b    uint8
}

var (
	// Transparent keeps whatever color the target cell already has
	Transparent = Color{}
	// DefaultFg renders as the terminal's own foreground (SGR 39)
	DefaultFg = Color{kind: kindDefaultFg}
	// DefaultBg renders as the terminal's own background (SGR 49)
	DefaultBg = Color{kind: kindDefaultBg}
)

// NewRGB returns a true-color Color
func NewRGB(r, g, b uint8) Color {
	return Color{kind: kindRGB, r: r, g: g, b: b}
}

// Index returns a 256-palette Color
func Index(n uint8) Color {
	return Color{kind: kindIndex, r: n}
}

// Color converts an RGB value to a true-color Color
func (c RGB) Color() Color {
	return NewRGB(c.R, c.G, c.B)
}

// IsTransparent reports whether c resolves against the existing cell
func (c Color) IsTransparent() bool { return c.kind == kindTransparent }

// IsDefault reports whether c is one of the terminal-default sentinels
func (c Color) IsDefault() bool { return c.kind == kindDefaultFg || c.kind == kindDefaultBg }

// IsIndex reports whether c is a palette entry
func (c Color) IsIndex() bool { return c.kind == kindIndex }

// PaletteIndex returns the palette index of an indexed color
func (c Color) PaletteIndex() (uint8, bool) {
	if c.kind != kindIndex {
		return 0, false
	}
	return c.r, true
}

// RGB resolves c to a 24-bit value. Sentinels have no RGB value.
func (c Color) RGB() (RGB, bool) {
	switch c.kind {
	case kindRGB:
		return RGB{c.r, c.g, c.b}, true
	case kindIndex:
		return PaletteRGB(c.r), true
	}
	return RGB{}, false
}

// To256 returns the palette index used to render c on a 256-color target
func (c Color) To256() (uint8, bool) {
	switch c.kind {
	case kindIndex:
		return c.r, true
	case kindRGB:
		return Quantize256(c.r, c.g, c.b), true
	}
	return 0, false
}

// FromRGB maps a 24-bit color for the given target.
// True color passes through, 256 mode quantizes to the nearest palette entry.
func FromRGB(r, g, b uint8, mode ColorMode) Color {
	if mode == ColorModeTrueColor {
		return NewRGB(r, g, b)
	}
	return Index(Quantize256(r, g, b))
}

// Quantize256 picks the 256-palette index for an RGB value.
// Pure grays go to the grayscale ramp, or to standard black/white at the extremes,
// everything else to the 6x6x6 cube with rounded channel mapping.
func Quantize256(r, g, b uint8) uint8 {
	if r == g && g == b {
		if r < 8 {
			return 0
		}
		if r > 248 {
			return 15
		}
		step := (int(r) - 8) / 10
		if step > 23 {
			step = 23
		}
		return Gray256(uint8(step))
	}
	return Cube256(cubeCoord(r), cubeCoord(g), cubeCoord(b))
}

// cubeCoord maps a channel to 0-5 with midpoint rounding
func cubeCoord(c uint8) uint8 {
	return uint8((int(c)*5 + 127) / 255)
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Distance returns the Euclidean distance between a and b in 8-bit RGB space
func Distance(a, b RGB) float64 {
	return toColorful(a).DistanceRgb(toColorful(b)) * 255
}

// Nearest returns the candidate closest to c, or c itself when no candidates are given
func Nearest(c RGB, candidates ...RGB) RGB {
	if len(candidates) == 0 {
		return c
	}
	best := candidates[0]
	bestDist := Distance(c, best)
	for _, cand := range candidates[1:] {
		if d := Distance(c, cand); d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best
}

// Blend linearly interpolates from a (t=0) to b (t=1) in RGB space
func Blend(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	r, g, bl := toColorful(a).BlendRgb(toColorful(b), t).Clamped().RGB255()
	return RGB{r, g, bl}
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" ||
		os.Getenv("WT_SESSION") != "" {
		return ColorModeTrueColor
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}
