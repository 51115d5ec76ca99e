package opcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go8bit/microcode/opcode"
	"github.com/go8bit/microcode/register"
)

func TestGroupDestSrc(t *testing.T) {
	tests := []struct {
		name string
		op   opcode.Opcode
		grp  opcode.OpcodeGroup
		dest register.Register
		src  register.Register
	}{
		{"mov PC,Imm", 0b00_000_111, opcode.MOV, register.PC, register.Imm},
		{"clra", 0b00_110_111, opcode.MOV, register.Acc, register.Imm},
		{"push Ra", 0b10_110_001, opcode.STO, register.StPi, register.Ra},
		{"lod Rd,*Rc", 0b01_100_011, opcode.LOD, register.Rd, register.Rc},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.grp, tt.op.Group())
			assert.Equal(t, tt.dest, tt.op.Dest())
			assert.Equal(t, tt.src, tt.op.Src())
		})
	}
}

func TestAluModeDecode(t *testing.T) {
	tests := []struct {
		name      string
		op        opcode.AluOpcode
		useCarry  bool
		mode      opcode.AluMode
		reg       register.Register
	}{
		{"inc Rb", 0b11_0_00_010, false, opcode.INC_A, register.Rb},
		{"cmp Rb form with carry bit and mode-00", 0b11_1_00_010, true, opcode.A_AND_B, register.Rb},
		{"add Rc", 0b11_0_01_011, false, opcode.A_PLUS_B, register.Rc},
		{"cmp uses A_OR_B encoding", 0b11_1_01_011, true, opcode.A_OR_B, register.Rc},
		{"lcc Ra", 0b11_1_10_001, true, opcode.A_XOR_B, register.Ra},
		{"lcd Ra", 0b11_1_11_001, true, opcode.NOT_A, register.Ra},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.useCarry, tt.op.UseCarry())
			assert.Equal(t, tt.mode, tt.op.Mode())
			assert.Equal(t, tt.reg, tt.op.Reg())
		})
	}
}

func TestAluModeStringer(t *testing.T) {
	assert.Equal(t, "b_minus_a", opcode.B_MINUS_A.String())
	assert.Equal(t, "not_a", opcode.NOT_A.String())
}
