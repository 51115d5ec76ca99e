package address_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go8bit/microcode/address"
	"github.com/go8bit/microcode/opcode"
)

func TestPackUnpack(t *testing.T) {
	op := opcode.Opcode(0b10_110_001)
	a := address.New(op, 5)

	assert.Equal(t, op, a.Opcode())
	assert.Equal(t, uint8(5), a.Microtime())
}

func TestMicrotimeWraps3Bits(t *testing.T) {
	a := address.New(opcode.Opcode(0), 0xFF)
	assert.Equal(t, uint8(7), a.Microtime())
}

func TestFlagsPredicates(t *testing.T) {
	f := address.Flags{Carry: true, Overflow: true}
	assert.True(t, f.CarrySet())
	assert.False(t, f.ZeroSet())
	assert.True(t, f.OverflowSet())
	assert.False(t, f.NegativeSet())
}
