package microcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go8bit/microcode/address"
	"github.com/go8bit/microcode/register"
	"github.com/go8bit/microcode/signal"
)

func TestStoPushImmediate(t *testing.T) {
	const pushi = 0b10_110_111 // dest=StPi, src=Imm

	_, desc := ctrl(pushi, 2, address.Flags{})
	assert.Equal(t, "pushi <= Imm", desc)

	word6, _ := ctrl(pushi, 7, address.Flags{})
	assert.Equal(t, uint32(signal.MW|register.Acc.WriteToBus()|signal.TR), word6)
}

func TestStoCallRc(t *testing.T) {
	const callRc = 0b10_110_000 // dest=StPi, src=PC

	word2, desc := ctrl(callRc, 2, address.Flags{})
	assert.Equal(t, "call Rc", desc)
	assert.Equal(t, uint32(register.StP.WriteToBus()|signal.ALW|signal.ALU_A_MINUS_B), word2)

	word5, _ := ctrl(callRc, 5, address.Flags{})
	assert.Equal(t, uint32(register.Rc.WriteToBus()|register.PC.ReadFromBus()|signal.TR), word5)
}

func TestStoRegularStore(t *testing.T) {
	const stoRc = 0b10_011_010 // dest=Rc, src=Rb (PGM* since dest==Rc)

	word2, _ := ctrl(stoRc, 2, address.Flags{})
	assert.Equal(t, uint32(register.Rc.WriteToBus()|signal.MAW), word2)

	word3, _ := ctrl(stoRc, 3, address.Flags{})
	assert.Equal(t, uint32(signal.PGM|register.Rb.WriteToBus()|signal.MW|signal.TR), word3)
}

func TestStoImmAddress(t *testing.T) {
	const stoi = 0b10_111_001 // dest=Imm, src=Ra

	word2, desc := ctrl(stoi, 2, address.Flags{})
	assert.Contains(t, desc, "stoi")
	assert.Equal(t, uint32(register.PC.WriteToBus()|signal.MAW), word2)

	word4, _ := ctrl(stoi, 4, address.Flags{})
	assert.Equal(t, uint32(signal.MW|register.Ra.WriteToBus()|signal.TR), word4)
}
