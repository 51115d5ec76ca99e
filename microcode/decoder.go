package microcode

import (
	"github.com/go8bit/microcode/address"
	"github.com/go8bit/microcode/opcode"
	"github.com/go8bit/microcode/signal"
)

// ControlWord decodes an EepromAddress plus the live condition flags into
// the 32-bit control word for that microstep, and a human mnemonic for
// the disassembler. It is a pure function: the same address and flags
// always produce the same word.
func ControlWord(addr address.EepromAddress, flags address.Flags) (uint32, string) {
	switch addr.Microtime() {
	case 0:
		return uint32(fetchStep0()), ""
	case 1:
		return uint32(fetchStep1()), ""
	}

	var word signal.Signal
	var desc string

	switch addr.Opcode().Group() {
	case opcode.MOV:
		word, desc = decodeMov(addr, flags)
	case opcode.LOD:
		word, desc = decodeLod(addr)
	case opcode.STO:
		word, desc = decodeSto(addr)
	case opcode.ALU:
		word, desc = decodeAlu(addr, flags)
	}

	return uint32(word), desc
}
