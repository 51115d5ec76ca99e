package microcode

import (
	"github.com/go8bit/microcode/address"
	"github.com/go8bit/microcode/register"
	"github.com/go8bit/microcode/signal"
)

// Flag-selector codes used by the conditional-jump dispatch: the src
// field of a dest==Imm MOV opcode is not a register, it is one of these
// selectors (or its bitwise-NOT complement, for the negated condition).
// Kept as literal 3-bit values rather than a clean enum — the exact codes
// are part of the EEPROM ABI (spec design note, preserve exactly).
const (
	selCarry    = 0b000
	selZero     = 0b001
	selOverflow = 0b010
	selNegative = 0b100
)

// decodeMov dispatches the MOV group (opcode group 00).
func decodeMov(addr address.EepromAddress, flags address.Flags) (signal.Signal, string) {
	op := addr.Opcode()
	dest, src := op.Dest(), op.Src()

	switch {
	case dest == register.Imm:
		return conditionalJump(addr, flags)

	case src == register.Imm:
		if dest == register.Acc {
			return clearAll(addr.Microtime())
		}
		return immediateMov(dest, addr.Microtime())

	case dest == register.Acc:
		if src == register.PC {
			return jmz(addr.Microtime())
		}
		if src != dest {
			return tst(src, addr.Microtime())
		}

	case src != dest:
		var desc string
		if dest == register.PC {
			desc = f("jmp %v", src)
		} else {
			desc = op.Describe()
		}
		switch addr.Microtime() {
		case step1:
			return src.WriteToBus() | dest.ReadFromBus() | signal.TR, desc
		}

	case dest == register.PC:
		return signal.HLT, f("hlt")

	case dest == register.Ra:
		return signal.TR, f("nop")
	}

	return signal.TR, ""
}

func conditionalJump(addr address.EepromAddress, flags address.Flags) (signal.Signal, string) {
	sel := uint8(addr.Opcode().Src())

	var desc string
	var doJump bool
	switch sel {
	case selCarry:
		desc, doJump = f("jc"), flags.CarrySet()
	case selZero:
		desc, doJump = f("jz"), flags.ZeroSet()
	case selOverflow:
		desc, doJump = f("jo"), flags.OverflowSet()
	case selNegative:
		desc, doJump = f("jn"), flags.NegativeSet()
	case (^uint8(selCarry)) & 0x7:
		desc, doJump = f("jnc"), !flags.CarrySet()
	case (^uint8(selZero)) & 0x7:
		desc, doJump = f("jnz"), !flags.ZeroSet()
	case (^uint8(selOverflow)) & 0x7:
		desc, doJump = f("jno"), !flags.OverflowSet()
	case (^uint8(selNegative)) & 0x7:
		desc, doJump = f("jnn"), !flags.NegativeSet()
	}

	if doJump {
		switch addr.Microtime() {
		case step1:
			return register.PC.WriteToBus() | signal.MAW, desc
		case step2:
			return readProgramMemory | register.PC.ReadFromBus() | signal.TR, desc
		}
	} else if addr.Microtime() == step1 {
		return signal.PCC, desc
	}
	return signal.TR, desc
}

func immediateMov(dest register.Register, microtime uint8) (signal.Signal, string) {
	var desc string
	if dest == register.PC {
		desc = f("jmpi Imm")
	} else {
		desc = f("movi %v, Imm", dest)
	}

	switch microtime {
	case step1:
		return register.PC.WriteToBus() | signal.MAW, desc
	case step2:
		word := readProgramMemory | dest.ReadFromBus() | signal.TR
		if dest != register.PC {
			word |= signal.PCC
		}
		return word, desc
	}
	return signal.TR, desc
}

func clearAll(microtime uint8) (signal.Signal, string) {
	desc := f("clra")
	switch microtime {
	case step1:
		return register.PC.WriteToBus() | signal.ALU_A_AND_B | signal.ALW, desc
	case step2:
		return register.Acc.WriteToBus() |
			register.Ra.ReadFromBus() |
			register.Rb.ReadFromBus() |
			register.Rc.ReadFromBus() |
			register.Rd.ReadFromBus() |
			register.StP.ReadFromBus() |
			signal.TR, desc
	}
	return signal.TR, desc
}

func jmz(microtime uint8) (signal.Signal, string) {
	desc := f("jmz")
	switch microtime {
	case step1:
		return register.PC.WriteToBus() | signal.ALU_A_AND_B | signal.ALW, desc
	case step2:
		return register.Acc.WriteToBus() | register.PC.ReadFromBus() | signal.TR, desc
	}
	return signal.TR, desc
}

func tst(src register.Register, microtime uint8) (signal.Signal, string) {
	desc := f("tst %v", src)
	switch microtime {
	case step1:
		return src.WriteToBus() | signal.ALU_A_PLUS_B | signal.ALW | signal.TR, desc
	}
	return signal.TR, desc
}
