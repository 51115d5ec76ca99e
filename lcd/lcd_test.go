package lcd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go8bit/microcode/lcd"
)

func TestScenarioFClearWriteReadLine(t *testing.T) {
	l := lcd.New(16, 2)

	l.SendCommand(lcd.Clear)
	l.WriteString("Hi")

	line0 := l.ReadLine(0)
	assert.True(t, len(line0) >= 2 && line0[:2] == "Hi", "line0 = %q", line0)

	b := l.ReadByte()
	assert.Equal(t, byte(0), b, "cursor should sit on the untouched cell after \"Hi\"")
}

func TestLineGapSkip(t *testing.T) {
	l := lcd.New(16, 2)
	l.SendCommand(lcd.Clear)

	for i := 0; i < 16; i++ {
		l.WriteByte('x')
	}

	line1 := l.ReadLine(1)
	assert.Equal(t, "\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00", line1, "row 1 should still be blank after exactly filling row 0")
}

func TestSetDramAddrClampsToLastCell(t *testing.T) {
	l := lcd.New(16, 2)

	l.SendCommand(lcd.EntryMode) // disable auto-increment so the cursor stays put
	l.SendCommand(lcd.SetDramAddr | 0x7f)
	l.WriteByte('Z')

	assert.Equal(t, byte('Z'), l.ReadByte())
}

func TestHomeResetsCursor(t *testing.T) {
	l := lcd.New(16, 2)
	l.WriteString("abc")
	l.SendCommand(lcd.Home)

	assert.Equal(t, byte('a'), l.ReadByte())
}

func TestReadLineOutOfBoundsClamps(t *testing.T) {
	l := lcd.New(16, 2)
	assert.Equal(t, l.ReadLine(1), l.ReadLine(2))
	assert.Equal(t, l.ReadLine(0), l.ReadLine(-1))
}

func TestSpaceGlyphIsBlank(t *testing.T) {
	l := lcd.New(1, 1)
	l.SendCommand(lcd.Clear)
	l.UpdatePixels()

	w, h := l.NumPixels()
	assert.Equal(t, lcd.CharWidth, w)
	assert.Equal(t, lcd.CharHeight, h)

	for y := 0; y < lcd.CharHeight; y++ {
		for x := 0; x < lcd.CharWidth; x++ {
			assert.Equal(t, int8(0), l.PixelState(x, y), "space glyph should be all-blank at (%d,%d)", x, y)
		}
	}
}

func TestPixelStateOutOfBoundsReturnsSentinel(t *testing.T) {
	l := lcd.New(16, 2)
	assert.Equal(t, int8(-1), l.PixelState(-1, 0))
	assert.Equal(t, int8(-1), l.PixelState(10000, 10000))
}

func TestHeightClampedToMax(t *testing.T) {
	l := lcd.New(16, 9)
	assert.Equal(t, lcd.MaxHeight, l.Height)
}

func TestDisplayAndEntryModeCommandsStoreFlags(t *testing.T) {
	l := lcd.New(16, 2)

	l.SendCommand(lcd.Display | 0x04)
	assert.Equal(t, byte(lcd.Display|0x04), l.DisplayFlags)

	l.SendCommand(lcd.EntryMode)
	assert.Equal(t, byte(lcd.EntryMode), l.EntryModeFlags)

	// With EntryModeInc now cleared, writes should not advance the cursor:
	// the second write lands on the same cell as the first.
	l.WriteByte('A')
	l.WriteByte('B')
	assert.Equal(t, byte('B'), l.ReadByte())
}
