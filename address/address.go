// Package address models the 11-bit lookup address presented to the
// microcode decoder: an 8-bit opcode and a 3-bit microtime counter, plus
// the 4 condition flags carried alongside it.
package address

import (
	"github.com/go8bit/microcode/opcode"
)

// EepromAddress is the 11-bit {opcode, microtime} pair. Flags are not
// packed into the value — Go has no address-pin concept — they are
// passed alongside as Flags, matching the decoder's external signature.
type EepromAddress uint16

// New packs an opcode byte and a microtime step (0..7) into an address.
func New(op opcode.Opcode, microtime uint8) EepromAddress {
	return EepromAddress(uint16(op)<<3 | uint16(microtime&0x7))
}

// Opcode returns the 8-bit opcode field.
func (a EepromAddress) Opcode() opcode.Opcode {
	return opcode.Opcode(a >> 3)
}

// Microtime returns the 3-bit step counter.
func (a EepromAddress) Microtime() uint8 {
	return uint8(a & 0x7)
}

// Flags carries the 4 live ALU condition flags alongside an
// EepromAddress.
type Flags struct {
	Carry    bool
	Zero     bool
	Overflow bool
	Negative bool
}

// CarrySet reports the carry flag.
func (f Flags) CarrySet() bool { return f.Carry }

// ZeroSet reports the zero flag.
func (f Flags) ZeroSet() bool { return f.Zero }

// OverflowSet reports the overflow flag.
func (f Flags) OverflowSet() bool { return f.Overflow }

// NegativeSet reports the negative flag.
func (f Flags) NegativeSet() bool { return f.Negative }
