package lcd

const (
	// CharWidth and CharHeight are the glyph cell dimensions in pixels.
	CharWidth  = 5
	CharHeight = 8

	// LineWidth is the DDRAM stride per display row, wider than any
	// practical visible width to leave room for the HD44780 line gap.
	LineWidth = 40

	// MaxHeight is the largest number of display rows supported.
	MaxHeight = 4
)

// LCD models a character display: a DDRAM byte buffer addressed by a
// cursor, entry-mode/display flag bytes, and a derived pixel raster. All
// methods are synchronous and unsynchronized — like Register and Opcode,
// LCD is owned by a single caller.
type LCD struct {
	Width  int
	Height int

	EntryModeFlags byte
	DisplayFlags   byte

	data []byte
	ptr  int

	pixelsWidth  int
	pixelsHeight int
	pixels       []int8
}

// New creates an LCD with the given visible width and height. Height is
// clamped to MaxHeight, mirroring newLCD's silent clamp.
func New(width, height int) *LCD {
	if height > MaxHeight {
		height = MaxHeight
	}

	l := &LCD{
		Width:          width,
		Height:         height,
		EntryModeFlags: EntryModeInc,
		data:           make([]byte, LineWidth*height),
	}

	l.pixelsWidth = width*(CharWidth+1) - 1
	l.pixelsHeight = height*(CharHeight+1) - 1
	l.pixels = make([]int8, l.pixelsWidth*l.pixelsHeight)
	for i := range l.pixels {
		l.pixels[i] = -1
	}

	l.UpdatePixels()

	return l
}

// SendCommand decodes a command byte by HD44780 bit priority: the
// highest set bit among SetDramAddr down to Clear selects the operation.
func (l *LCD) SendCommand(command byte) {
	switch {
	case command&SetDramAddr != 0:
		offset := int(command & 0x7f)
		max := LineWidth*l.Height - 1
		if offset > max {
			offset = max
		}
		l.ptr = offset
	case command&SetCgramAddr != 0:
		// CGRAM addressing is not modeled; no-op per lcd.c.
	case command&Shift != 0:
		// Display/cursor shift is not modeled; no-op per lcd.c, even
		// when ShiftCursor is also set.
	case command&Display != 0:
		l.DisplayFlags = command
	case command&EntryMode != 0:
		l.EntryModeFlags = command
	case command&Home != 0:
		l.ptr = 0
	case command&Clear != 0:
		datalen := (l.Width + 1) * l.Height
		for i := 0; i < datalen && i < len(l.data); i++ {
			l.data[i] = 0
		}
		l.ptr = 0
	}
}

// increment advances the cursor one DDRAM cell, skipping the line-gap
// byte at the LineWidth boundary, then wraps at the end of the buffer.
func (l *LCD) increment() {
	l.ptr++
	if (l.ptr+1)%LineWidth == 0 {
		l.ptr++
	}
	if l.ptr >= len(l.data) {
		l.ptr = 0
	}
}

// WriteByte stores a byte at the cursor, advancing the cursor when
// EntryModeInc is set.
func (l *LCD) WriteByte(b byte) {
	l.data[l.ptr] = b
	if l.EntryModeFlags&EntryModeInc != 0 {
		l.increment()
	}
}

// WriteString writes each byte of s in turn via WriteByte.
func (l *LCD) WriteString(s string) {
	for i := 0; i < len(s); i++ {
		l.WriteByte(s[i])
	}
}

// ReadByte returns the byte under the cursor.
func (l *LCD) ReadByte() byte {
	return l.data[l.ptr]
}

// ReadLine returns the Width bytes of DDRAM for the given row as a
// string. An out-of-range row is clamped into [0, Height), per spec's
// out-of-range rule of clamp-or-sentinel, never crash.
func (l *LCD) ReadLine(row int) string {
	if row < 0 {
		row = 0
	} else if row >= l.Height {
		row = l.Height - 1
	}

	start := row * (l.Width + 1)
	return string(l.data[start : start+l.Width])
}

// UpdatePixels rasterizes the current DDRAM contents into the pixel
// buffer returned by PixelState, one CharWidth x CharHeight glyph per
// display cell with a 1-pixel gap between cells.
func (l *LCD) UpdatePixels() {
	for row := 0; row < l.Height; row++ {
		for col := 0; col < l.Width; col++ {
			topLeft := row*(CharHeight+1)*l.pixelsWidth + col*(CharWidth+1)
			c := l.data[row*(l.Width+1)+col]
			bits := charBits(c)

			for y := 0; y < CharHeight; y++ {
				rowStart := topLeft + y*l.pixelsWidth
				for x := 0; x < CharWidth; x++ {
					pixel := int8(0)
					if bits[x]&(0x80>>uint(y)) != 0 {
						pixel = 1
					}
					l.pixels[rowStart+x] = pixel
				}
			}
		}
	}
}

// NumPixels returns the rasterized pixel buffer's width and height.
func (l *LCD) NumPixels() (width, height int) {
	return l.pixelsWidth, l.pixelsHeight
}

// PixelState returns the rasterized state at (x, y): 1 lit, 0 unlit, or
// -1 if the gap between glyphs or entirely out of bounds.
func (l *LCD) PixelState(x, y int) int8 {
	if x < 0 || x >= l.pixelsWidth || y < 0 || y >= l.pixelsHeight {
		return -1
	}
	return l.pixels[y*l.pixelsWidth+x]
}
