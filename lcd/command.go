package lcd

// Command bits accepted by SendCommand, in HD44780 priority order: a byte
// is decoded by the highest set bit among these, from SetDramAddr down to
// Clear, per lcd.c's sendCommand if/else-if chain.
const (
	SetDramAddr  = 1 << 7
	SetCgramAddr = 1 << 6
	Shift        = 1 << 4
	ShiftCursor  = 1 << 3 // sub-bit of Shift, currently a no-op either way
	Display      = 1 << 3
	EntryMode    = 1 << 2
	EntryModeInc = 1 << 1 // sub-bit of EntryMode: auto-increment on write
	Home         = 1 << 1
	Clear        = 1 << 0
)
