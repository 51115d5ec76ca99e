package lcd

// font holds the built-in 128-glyph, 5-column-by-8-row character bitmap,
// copied from lcd.c's lcd_font table. Each glyph is 5 bytes; bit (0x80>>y)
// of byte x is the pixel at column x, row y (MSB = top row).
var font = [128][5]byte{
	{0x00, 0x00, 0x00, 0x00, 0x00}, //   0 - space
	{0x7c, 0xa2, 0x8a, 0xa2, 0x7c}, //   1 - light smiley face
	{0x7c, 0xd6, 0xf6, 0xd6, 0x7c}, //   2 - dark smiley face
	{0x38, 0x7c, 0x3e, 0x7c, 0x38}, //   3 - full heart
	{0x00, 0x38, 0x1c, 0x38, 0x00}, //   4 - small heart
	{0x0c, 0x6c, 0xfe, 0x6c, 0x0c}, //   5 - club
	{0x18, 0x3a, 0x7e, 0x3a, 0x18}, //   6 - spade
	{0x00, 0x18, 0x18, 0x00, 0x00}, //   7 - bullet
	{0xff, 0xe7, 0xe7, 0xff, 0xff}, //   8 - big rectangle
	{0x3c, 0x24, 0x24, 0x3c, 0x00}, //   9 - small rectangle
	{0xc3, 0xdb, 0xdb, 0xc3, 0xff}, //  10 - filled rectangle
	{0x0c, 0x12, 0x52, 0x6c, 0x70}, //  11 - man symbol
	{0x60, 0x94, 0x9e, 0x94, 0x60}, //  12 - woman symbol
	{0x06, 0x0e, 0xfc, 0x40, 0x20}, //  13 - musical note
	{0x06, 0x7e, 0x50, 0xac, 0xfc}, //  14 - double music note
	{0x18, 0x24, 0x24, 0x24, 0x18}, //  15 - record
	{0x00, 0xfe, 0x7c, 0x38, 0x10}, //  16 - play
	{0x10, 0x38, 0x7c, 0xfe, 0x00}, //  17 - play backwards
	{0x7e, 0x7e, 0x00, 0x7e, 0x7e}, //  18 - pause
	{0x3c, 0x3c, 0x3c, 0x3c, 0x00}, //  19 - stop
	{0x0a, 0x3a, 0xfa, 0x3a, 0x0a}, //  20 - eject
	{0xfe, 0x7c, 0x38, 0x10, 0xfe}, //  21 - fwd
	{0xfe, 0x10, 0x38, 0x7c, 0xfe}, //  22 - rev
	{0x01, 0x01, 0x01, 0x01, 0x01}, //  23 - lower 1/8 block (full)
	{0x03, 0x03, 0x03, 0x03, 0x03}, //  24 - lower 1/4 block (full)
	{0x07, 0x07, 0x07, 0x07, 0x07}, //  25 - lower 3/8 block (full)
	{0x0f, 0x0f, 0x0f, 0x0f, 0x0f}, //  26 - lower 1/2 block (full)
	{0x1f, 0x1f, 0x1f, 0x1f, 0x1f}, //  27 - lower 5/8 block (full)
	{0x3f, 0x3f, 0x3f, 0x3f, 0x3f}, //  28 - lower 3/4 block (full)
	{0x7f, 0x7f, 0x7f, 0x7f, 0x7f}, //  29 - lower 7/8 block (full)
	{0x00, 0x00, 0x00, 0x00, 0x00}, //  30
	{0x00, 0x00, 0x00, 0x00, 0x00}, //  31
	{0x00, 0x00, 0x00, 0x00, 0x00}, //  32 - space
	{0x00, 0x60, 0xfa, 0x60, 0x00}, //  33 - !
	{0xe0, 0xc0, 0x00, 0xe0, 0xc0}, //  34 - "
	{0x24, 0x7e, 0x24, 0x7e, 0x24}, //  35 - #
	{0x24, 0x54, 0xd6, 0x48, 0x00}, //  36 - $
	{0xc6, 0xc8, 0x10, 0x26, 0xc6}, //  37 - %
	{0x6c, 0x92, 0x6a, 0x04, 0x0a}, //  38 - &
	{0x00, 0xe0, 0xc0, 0x00, 0x00}, //  39 - '
	{0x00, 0x7c, 0x82, 0x00, 0x00}, //  40 - (
	{0x00, 0x82, 0x7c, 0x00, 0x00}, //  41 - )
	{0x10, 0x7c, 0x38, 0x7c, 0x10}, //  42 - *
	{0x10, 0x10, 0x7c, 0x10, 0x10}, //  43 - +
	{0x00, 0x07, 0x06, 0x00, 0x00}, //  44 - ,
	{0x10, 0x10, 0x10, 0x10, 0x10}, //  45 - -
	{0x00, 0x06, 0x06, 0x00, 0x00}, //  46 - .
	{0x04, 0x08, 0x10, 0x20, 0x40}, //  47 - /
	{0x7c, 0x8a, 0x92, 0xa2, 0x7c}, //  48 - 0
	{0x00, 0x42, 0xfe, 0x02, 0x00}, //  49 - 1
	{0x46, 0x8a, 0x92, 0x92, 0x62}, //  50 - 2
	{0x44, 0x92, 0x92, 0x92, 0x6c}, //  51 - 3
	{0x18, 0x28, 0x48, 0xfe, 0x08}, //  52 - 4
	{0xf4, 0x92, 0x92, 0x92, 0x8c}, //  53 - 5
	{0x3c, 0x52, 0x92, 0x92, 0x0c}, //  54 - 6
	{0x80, 0x8e, 0x90, 0xa0, 0xc0}, //  55 - 7
	{0x6c, 0x92, 0x92, 0x92, 0x6c}, //  56 - 8
	{0x60, 0x92, 0x92, 0x94, 0x78}, //  57 - 9
	{0x00, 0x6c, 0x6c, 0x00, 0x00}, //  58 - :
	{0x00, 0x37, 0x36, 0x00, 0x00}, //  59 - ;
	{0x10, 0x28, 0x44, 0x82, 0x00}, //  60 - <
	{0x24, 0x24, 0x24, 0x24, 0x24}, //  61 - =
	{0x00, 0x82, 0x44, 0x28, 0x10}, //  62 - >
	{0x40, 0x80, 0x9a, 0x90, 0x60}, //  63 - ?
	{0x7c, 0x82, 0xba, 0xaa, 0x78}, //  64 - @
	{0x7e, 0x88, 0x88, 0x88, 0x7e}, //  65 - A
	{0xfe, 0x92, 0x92, 0x92, 0x6c}, //  66 - B
	{0x7c, 0x82, 0x82, 0x82, 0x44}, //  67 - C
	{0xfe, 0x82, 0x82, 0x82, 0x7c}, //  68 - D
	{0xfe, 0x92, 0x92, 0x92, 0x82}, //  69 - E
	{0xfe, 0x90, 0x90, 0x90, 0x80}, //  70 - F
	{0x7c, 0x82, 0x92, 0x92, 0x5e}, //  71 - G
	{0xfe, 0x10, 0x10, 0x10, 0xfe}, //  72 - H
	{0x00, 0x82, 0xfe, 0x82, 0x00}, //  73 - I
	{0x0c, 0x02, 0x02, 0x02, 0xfc}, //  74 - J
	{0xfe, 0x10, 0x28, 0x44, 0x82}, //  75 - K
	{0xfe, 0x02, 0x02, 0x02, 0x02}, //  76 - L
	{0xfe, 0x40, 0x20, 0x40, 0xfe}, //  77 - M
	{0xfe, 0x40, 0x20, 0x10, 0xfe}, //  78 - N
	{0x7c, 0x82, 0x82, 0x82, 0x7c}, //  79 - O
	{0xfe, 0x90, 0x90, 0x90, 0x60}, //  80 - P
	{0x7c, 0x82, 0x8a, 0x84, 0x7a}, //  81 - Q
	{0xfe, 0x90, 0x90, 0x98, 0x66}, //  82 - R
	{0x64, 0x92, 0x92, 0x92, 0x4c}, //  83 - S
	{0x80, 0x80, 0xfe, 0x80, 0x80}, //  84 - T
	{0xfc, 0x02, 0x02, 0x02, 0xfc}, //  85 - U
	{0xf8, 0x04, 0x02, 0x04, 0xf8}, //  86 - V
	{0xfc, 0x02, 0x3c, 0x02, 0xfc}, //  87 - W
	{0xc6, 0x28, 0x10, 0x28, 0xc6}, //  88 - X
	{0xe0, 0x10, 0x0e, 0x10, 0xe0}, //  89 - Y
	{0x8e, 0x92, 0xa2, 0xc2, 0x00}, //  90 - Z
	{0x00, 0xfe, 0x82, 0x82, 0x00}, //  91 - [
	{0x40, 0x20, 0x10, 0x08, 0x04}, //  92 - backslash
	{0x00, 0x82, 0x82, 0xfe, 0x00}, //  93 - ]
	{0x20, 0x40, 0x80, 0x40, 0x20}, //  94 - ^
	{0x01, 0x01, 0x01, 0x01, 0x01}, //  95 - _
	{0x00, 0xc0, 0xe0, 0x00, 0x00}, //  96 - `
	{0x04, 0x2a, 0x2a, 0x2a, 0x1e}, //  97 - a
	{0xfe, 0x22, 0x22, 0x22, 0x1c}, //  98 - b
	{0x1c, 0x22, 0x22, 0x22, 0x14}, //  99 - c
	{0x1c, 0x22, 0x22, 0x22, 0xfe}, // 100 - d
	{0x1c, 0x2a, 0x2a, 0x2a, 0x10}, // 101 - e
	{0x10, 0x7e, 0x90, 0x90, 0x00}, // 102 - f
	{0x18, 0x25, 0x25, 0x25, 0x3e}, // 103 - g
	{0xfe, 0x20, 0x20, 0x1e, 0x00}, // 104 - h
	{0x00, 0x00, 0xbe, 0x02, 0x00}, // 105 - i
	{0x02, 0x01, 0x21, 0xbe, 0x00}, // 106 - j
	{0xfe, 0x08, 0x14, 0x22, 0x00}, // 107 - k
	{0x00, 0x00, 0xfe, 0x02, 0x00}, // 108 - l
	{0x3e, 0x20, 0x18, 0x20, 0x1e}, // 109 - m
	{0x3e, 0x20, 0x20, 0x1e, 0x00}, // 110 - n
	{0x1c, 0x22, 0x22, 0x22, 0x1c}, // 111 - o
	{0x3f, 0x22, 0x22, 0x22, 0x1c}, // 112 - p
	{0x1c, 0x22, 0x22, 0x22, 0x3f}, // 113 - q
	{0x22, 0x1e, 0x22, 0x20, 0x10}, // 114 - r
	{0x10, 0x2a, 0x2a, 0x2a, 0x04}, // 115 - s
	{0x20, 0x7c, 0x22, 0x24, 0x00}, // 116 - t
	{0x3c, 0x02, 0x04, 0x3e, 0x00}, // 117 - u
	{0x38, 0x04, 0x02, 0x04, 0x38}, // 118 - v
	{0x3c, 0x06, 0x0c, 0x06, 0x3c}, // 119 - w
	{0x36, 0x08, 0x08, 0x36, 0x00}, // 120 - x
	{0x39, 0x05, 0x06, 0x3c, 0x00}, // 121 - y
	{0x26, 0x2a, 0x2a, 0x32, 0x00}, // 122 - z
	{0x10, 0x7c, 0x82, 0x82, 0x00}, // 123 - {
	{0x00, 0x00, 0xff, 0x00, 0x00}, // 124 - |
	{0x00, 0x82, 0x82, 0x7c, 0x10}, // 125 - }
	{0x40, 0x80, 0x40, 0x80, 0x00}, // 126 - ~
	{0x01, 0x01, 0x01, 0x01, 0x00}, // 127
}

// charBits returns the 5-byte glyph for c, falling back to glyph 0 for
// any byte value at or above 128.
func charBits(c byte) [5]byte {
	if c < 128 {
		return font[c]
	}
	return font[0]
}
