package terminal

// xterm 256-color layout
//
// Standard colors: indices 0-15
// Color cube: index = 16 + 36*r + 6*g + b where r,g,b ∈ [0,5]
// Grayscale ramp: indices 232-255, level = 8 + 10*(index-232)

// Standard palette indices
const (
	P256Black     uint8 = 0
	P256Red       uint8 = 1
	P256Green     uint8 = 2
	P256Brown     uint8 = 3
	P256Blue      uint8 = 4
	P256Violet    uint8 = 5
	P256Cyan      uint8 = 6
	P256LightGray uint8 = 7
	P256Gray      uint8 = 8
	P256LightRed  uint8 = 9
	P256Lime      uint8 = 10
	P256Yellow    uint8 = 11
	P256LightBlue uint8 = 12
	P256Pink      uint8 = 13
	P256Turquoise uint8 = 14
	P256White     uint8 = 15
)

// Console palette, the classic 16 colors in true color
var (
	Black     = RGB{12, 12, 12}
	Blue      = RGB{0, 55, 218}
	Green     = RGB{19, 161, 14}
	Cyan      = RGB{58, 150, 221}
	Red       = RGB{197, 15, 31}
	Violet    = RGB{136, 23, 152}
	Brown     = RGB{193, 156, 0}
	LightGray = RGB{204, 204, 204}
	Gray      = RGB{118, 118, 118}
	LightBlue = RGB{59, 120, 255}
	Lime      = RGB{22, 198, 12}
	Turquoise = RGB{97, 214, 214}
	LightRed  = RGB{231, 72, 86}
	Pink      = RGB{180, 0, 158}
	Yellow    = RGB{249, 241, 165}
	White     = RGB{242, 242, 242}

	PureBlack = RGB{0, 0, 0}
	PureWhite = RGB{255, 255, 255}
)

// Color cube levels for 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// standardColors are the xterm defaults for indices 0-15
var standardColors = [16]RGB{
	{0, 0, 0}, {128, 0, 0}, {0, 128, 0}, {128, 128, 0},
	{0, 0, 128}, {128, 0, 128}, {0, 128, 128}, {192, 192, 192},
	{128, 128, 128}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{0, 0, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

// paletteLUT resolves every palette index to RGB, built at init
var paletteLUT [256]RGB

func init() {
	copy(paletteLUT[:16], standardColors[:])
	for i := 16; i < 232; i++ {
		r, g, b := CubeRGB256(uint8(i))
		paletteLUT[i] = RGB{cubeValues[r], cubeValues[g], cubeValues[b]}
	}
	for i := 232; i < 256; i++ {
		level := uint8(8 + 10*(i-232))
		paletteLUT[i] = RGB{level, level, level}
	}
}

// PaletteRGB returns the RGB value of a palette index
func PaletteRGB(index uint8) RGB {
	return paletteLUT[index]
}

// Cube256 returns the xterm 256-palette index for an RGB cube coordinate.
// r, g, b must be in [0,5]. Values outside that range are clamped.
func Cube256(r, g, b uint8) uint8 {
	if r > 5 {
		r = 5
	}
	if g > 5 {
		g = 5
	}
	if b > 5 {
		b = 5
	}
	return 16 + 36*r + 6*g + b
}

// CubeRGB256 returns the (r, g, b) cube coordinates for a 256-palette color cube index.
// Index must be in [16,231]. Returns (0,0,0) for out-of-range indices.
func CubeRGB256(index uint8) (r, g, b uint8) {
	if index < 16 || index > 231 {
		return 0, 0, 0
	}
	n := index - 16
	r = n / 36
	g = (n % 36) / 6
	b = n % 6
	return r, g, b
}

// Gray256 returns the xterm 256-palette index for a grayscale step.
// step must be in [0,23] (maps to indices 232-255, levels 8-238).
func Gray256(step uint8) uint8 {
	if step > 23 {
		step = 23
	}
	return 232 + step
}
