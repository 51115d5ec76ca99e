package microcode

import (
	"iter"

	"github.com/go8bit/microcode/address"
	"github.com/go8bit/microcode/internal"
	"github.com/go8bit/microcode/opcode"
)

// EnumerateAddresses yields the 2^11 {opcode, microtime} addresses in
// ascending order, independent of flags. Grounded on the teacher's
// iter.Seq-returning accessors (capp.Capp.List, io.Rom.Receive).
func EnumerateAddresses() iter.Seq[address.EepromAddress] {
	return func(yield func(address.EepromAddress) bool) {
		for op := 0; op < 256; op++ {
			for mt := uint8(0); mt < 8; mt++ {
				if !yield(address.New(opcode.Opcode(op), mt)) {
					return
				}
			}
		}
	}
}

// allFlags returns the 16 flag combinations in the bit order an EEPROM's
// high address lines would contribute them: bit0=Carry, bit1=Zero,
// bit2=Overflow, bit3=Negative.
func allFlags() [16]address.Flags {
	var combos [16]address.Flags
	for i := range combos {
		combos[i] = address.Flags{
			Carry:    i&0x1 != 0,
			Zero:     i&0x2 != 0,
			Overflow: i&0x4 != 0,
			Negative: i&0x8 != 0,
		}
	}
	return combos
}

// EnumeratedWord is one row of the full EEPROM enumeration: the address
// and flag combination that produced Word, plus its disassembly.
type EnumeratedWord struct {
	Address address.EepromAddress
	Flags   address.Flags
	Word    uint32
	Desc    string
}

// EnumerateControlWords walks the full 2^11 x 2^4 address/flag space and
// decodes every combination, in flag-major address-minor order (matching
// how the flags occupy the EEPROM's highest address lines). An external
// tool ranges over this to build the 4 EEPROM images; this package knows
// nothing about that file format.
func EnumerateControlWords() iter.Seq[EnumeratedWord] {
	combos := allFlags()
	perFlag := make([]iter.Seq[EnumeratedWord], len(combos))
	for i, flags := range combos {
		flags := flags
		perFlag[i] = func(yield func(EnumeratedWord) bool) {
			for addr := range EnumerateAddresses() {
				word, desc := ControlWord(addr, flags)
				if !yield(EnumeratedWord{Address: addr, Flags: flags, Word: word, Desc: desc}) {
					return
				}
			}
		}
	}
	return internal.IterSeqConcat(perFlag...)
}
