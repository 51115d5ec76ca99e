// Package opcode decodes the 8-bit instruction opcode into its group,
// destination and source registers, and the ALU group's alternate
// (mode, useCarry, reg) view.
package opcode

import (
	"github.com/go8bit/microcode/register"
)

// OpcodeGroup is the 2-bit instruction class.
type OpcodeGroup uint8

//go:generate go tool stringer -linecomment -type=OpcodeGroup
const (
	MOV OpcodeGroup = 0 // mov
	LOD OpcodeGroup = 1 // lod
	STO OpcodeGroup = 2 // sto
	ALU OpcodeGroup = 3 // alu
)

// Opcode is the raw 8-bit instruction byte: [group:2][dest:3][src:3].
type Opcode uint8

// Group returns the top 2 bits.
func (o Opcode) Group() OpcodeGroup {
	return OpcodeGroup((o >> 6) & 0x3)
}

// Dest returns bits [5:3] as a register code.
func (o Opcode) Dest() register.Register {
	return register.Register((o >> 3) & 0x7)
}

// Src returns bits [2:0] as a register code.
func (o Opcode) Src() register.Register {
	return register.Register(o & 0x7)
}

// AluMode is one of the 8 named ALU operations, combining the 2 raw mode
// bits with the useCarry bit per the ALU group's decode table.
type AluMode uint8

//go:generate go tool stringer -linecomment -type=AluMode
const (
	INC_A     AluMode = 0 // inc_a
	A_PLUS_B  AluMode = 1 // a_plus_b
	A_MINUS_B AluMode = 2 // a_minus_b
	B_MINUS_A AluMode = 3 // b_minus_a
	A_AND_B   AluMode = 4 // a_and_b
	A_OR_B    AluMode = 5 // a_or_b
	A_XOR_B   AluMode = 6 // a_xor_b
	NOT_A     AluMode = 7 // not_a
)

// Bits returns the raw 2-bit ALU select field, discarding useCarry — this
// is what actually reaches the control word's ALU_OFFSET field.
func (m AluMode) Bits() uint8 {
	return uint8(m) & 0x3
}

// AluOpcode reinterprets the ALU group's opcode byte as
// [group:2][useCarry:1][mode:2][reg:3].
type AluOpcode Opcode

// UseCarry returns bit 5.
func (o AluOpcode) UseCarry() bool {
	return (o>>5)&0x1 != 0
}

// Mode returns the combined (useCarry, mode-bits) ALU mode.
func (o AluOpcode) Mode() AluMode {
	modeBits := (o >> 3) & 0x3
	if o.UseCarry() {
		return AluMode(4 + modeBits)
	}
	return AluMode(modeBits)
}

// Reg returns bits [2:0] as a register code.
func (o AluOpcode) Reg() register.Register {
	return register.Register(o & 0x7)
}
