// Package microcode implements the control-word decoder: given an
// EepromAddress and the 4 live condition flags, it produces the 32-bit
// control word for that microstep plus a human disassembly mnemonic.
//
// The decoder is a pure function with no package-level mutable state;
// EnumerateControlWords lets a caller walk the full address space to
// build an EEPROM image without this package knowing anything about
// EEPROM file formats.
package microcode
