package terminal

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	// CSI sequences
	csi      = []byte("\x1b[")
	csiClear = []byte("\x1b[2J\x1b[H")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0  = []byte("\x1b[0m")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Mouse tracking: X10 buttons, any-motion, SGR coordinates
	csiMouseClickOn   = []byte("\x1b[?1000h")
	csiMouseClickOff  = []byte("\x1b[?1000l")
	csiMouseMotionOn  = []byte("\x1b[?1003h")
	csiMouseMotionOff = []byte("\x1b[?1003l")
	csiMouseSGROn     = []byte("\x1b[?1006h")
	csiMouseSGROff    = []byte("\x1b[?1006l")

	// Color prefixes
	csiFg256     = []byte("\x1b[38;5;") // followed by N m
	csiBg256     = []byte("\x1b[48;5;") // followed by N m
	csiFgRGB     = []byte("\x1b[38;2;") // followed by R;G;B m
	csiBgRGB     = []byte("\x1b[48;2;") // followed by R;G;B m
	csiDefaultFg = []byte("\x1b[39m")
	csiDefaultBg = []byte("\x1b[49m")
)

// mouseOnSeq and mouseOffSeq are built once so Release never allocates
var (
	mouseOnSeq  = concat(csiMouseClickOn, csiMouseMotionOn, csiMouseSGROn)
	mouseOffSeq = concat(csiMouseClickOff, csiMouseMotionOff, csiMouseSGROff)
	restoreSeq  = concat(csiSGR0, csiCursorShow)
)

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// appendInt appends a non-negative integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func appendInt(buf []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(buf, byte(n)+'0')
	}
	if n < 100 {
		return append(buf, byte(n/10)+'0', byte(n%10)+'0')
	}
	if n < 1000 {
		return append(buf, byte(n/100)+'0', byte(n/10%10)+'0', byte(n%10)+'0')
	}
	var tmp [20]byte
	i := len(tmp)
	for n > 0 {
		i--
		tmp[i] = byte(n%10) + '0'
		n /= 10
	}
	return append(buf, tmp[i:]...)
}

// appendCursorPos appends ESC[row;colH for a 0-indexed position
func appendCursorPos(buf []byte, x, y int) []byte {
	buf = append(buf, csi...)
	buf = appendInt(buf, y+1)
	buf = append(buf, ';')
	buf = appendInt(buf, x+1)
	return append(buf, 'H')
}

// appendFg appends the foreground SGR for c
func appendFg(buf []byte, c Color, mode ColorMode) []byte {
	switch c.kind {
	case kindIndex:
		buf = append(buf, csiFg256...)
		buf = appendInt(buf, int(c.r))
		return append(buf, 'm')
	case kindRGB:
		if mode == ColorModeTrueColor {
			buf = append(buf, csiFgRGB...)
			buf = appendRGB(buf, c)
			return append(buf, 'm')
		}
		buf = append(buf, csiFg256...)
		buf = appendInt(buf, int(Quantize256(c.r, c.g, c.b)))
		return append(buf, 'm')
	}
	return append(buf, csiDefaultFg...)
}

// appendBg appends the background SGR for c
func appendBg(buf []byte, c Color, mode ColorMode) []byte {
	switch c.kind {
	case kindIndex:
		buf = append(buf, csiBg256...)
		buf = appendInt(buf, int(c.r))
		return append(buf, 'm')
	case kindRGB:
		if mode == ColorModeTrueColor {
			buf = append(buf, csiBgRGB...)
			buf = appendRGB(buf, c)
			return append(buf, 'm')
		}
		buf = append(buf, csiBg256...)
		buf = appendInt(buf, int(Quantize256(c.r, c.g, c.b)))
		return append(buf, 'm')
	}
	return append(buf, csiDefaultBg...)
}

func appendRGB(buf []byte, c Color) []byte {
	buf = appendInt(buf, int(c.r))
	buf = append(buf, ';')
	buf = appendInt(buf, int(c.g))
	buf = append(buf, ';')
	return appendInt(buf, int(c.b))
}
