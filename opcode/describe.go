package opcode

import (
	"github.com/go8bit/microcode/internal/translate"
)

var f = translate.From

// Describe returns the default mnemonic fragment for an opcode, used by
// the decoder whenever a group has no more specific name for the
// instruction (e.g. a plain register-to-register move or load).
func (o Opcode) Describe() string {
	switch o.Group() {
	case MOV:
		return f("mov %v, %v", o.Dest(), o.Src())
	case LOD:
		return f("lod %v, %v", o.Dest(), o.Src())
	case STO:
		return f("sto %v, %v", o.Dest(), o.Src())
	default:
		return f("alu %v", o.Src())
	}
}

// Describe returns the default mnemonic fragment for an ALU instruction.
func (o AluOpcode) Describe() string {
	return f("%v %v", o.Mode(), o.Reg())
}
