package microcode

import (
	"github.com/go8bit/microcode/address"
	"github.com/go8bit/microcode/opcode"
	"github.com/go8bit/microcode/register"
	"github.com/go8bit/microcode/signal"
)

// decodeLod dispatches the LOD group (opcode group 01): load, pop, ret, and
// the LCD-from-memory variants, all sentinel-dispatched on dest/src hitting
// StPi (stack-indirect) or Imm.
func decodeLod(addr address.EepromAddress) (signal.Signal, string) {
	op := addr.Opcode()
	dest, src := op.Dest(), op.Src()
	mt := addr.Microtime()

	switch {
	case dest == register.StPi:
		switch {
		case src > register.PC && src < register.StP:
			return peek(src, mt)
		case src == register.StP:
			return lccMem(mt)
		case src == register.PC:
			return lcdMem(mt)
		case src == register.StPi:
			return lccPgm(mt)
		case src == register.Imm:
			return lcdPgm(mt)
		}

	case src == register.StPi:
		if dest == register.PC {
			return ret(mt)
		}
		if dest != register.Imm {
			return pop(dest, mt)
		}
		return lccImm(mt)

	case src == register.Imm:
		if dest != src {
			return lodImmAddr(dest, op, mt)
		}
		return lcdImm(mt)

	case dest == register.Imm:
		return clrReg(src, mt)

	default:
		return lodReg(dest, src, op, mt)
	}

	return signal.TR, ""
}

func peek(src register.Register, mt uint8) (signal.Signal, string) {
	desc := f("peek %v", src)
	switch mt {
	case step1:
		return register.StP.WriteToBus() | signal.MAW, desc
	case step2:
		return src.ReadFromBus() | readMemory | signal.TR, desc
	}
	return signal.TR, desc
}

func lccMem(mt uint8) (signal.Signal, string) {
	desc := f("lcc mem")
	switch mt {
	case step1:
		return signal.MAW | register.PC.WriteToBus(), desc
	case step2:
		return signal.PCC | readMemory | signal.PGM | signal.MAW, desc
	case step3:
		return readMemory | signal.LCD_COMMAND | signal.LCD | signal.TR, desc
	}
	return signal.TR, desc
}

func lcdMem(mt uint8) (signal.Signal, string) {
	desc := f("lcd mem")
	switch mt {
	case step1:
		return signal.MAW | register.PC.WriteToBus(), desc
	case step2:
		return signal.PCC | readMemory | signal.PGM | signal.MAW, desc
	case step3:
		return readMemory | signal.ALW | signal.ALU_A_PLUS_B, desc
	case step4:
		return signal.LCD_DATA | signal.LCD | register.Acc.WriteToBus() | signal.TR, desc
	}
	return signal.TR, desc
}

func lccPgm(mt uint8) (signal.Signal, string) {
	desc := f("lcc pgm")
	switch mt {
	case step1:
		return signal.MAW | register.PC.WriteToBus(), desc
	case step2:
		return signal.PCC | readMemory | signal.PGM | signal.MAW, desc
	case step3:
		return readMemory | signal.PGM | signal.ALW | signal.ALU_A_PLUS_B, desc
	case step4:
		return signal.LCD_COMMAND | signal.LCD | register.Acc.WriteToBus() | signal.TR, desc
	}
	return signal.TR, desc
}

func lcdPgm(mt uint8) (signal.Signal, string) {
	desc := f("lcd pgm")
	switch mt {
	case step1:
		return signal.MAW | register.PC.WriteToBus(), desc
	case step2:
		return signal.PCC | readMemory | signal.PGM | signal.MAW, desc
	case step3:
		return readMemory | signal.PGM | signal.LCD_DATA | signal.LCD | signal.TR, desc
	}
	return signal.TR, desc
}

// ret is shared by the LOD and STO groups: both encode src==StPi,
// dest==PC the same way (a return address is always popped, never
// pushed, by construction of the opcode space).
func ret(mt uint8) (signal.Signal, string) {
	desc := f("ret")
	switch mt {
	case step1:
		return register.Acc.WriteToBus() | register.PC.ReadFromBus(), desc
	case step2:
		return register.StP.WriteToBus() | signal.ALW | signal.ALC | signal.ALU_A_PLUS_B | signal.MAW, desc
	case step3:
		return register.StP.ReadFromBus() | signal.BW_ALU, desc
	case step4:
		return register.PC.WriteToBus() | signal.ALW | signal.ALU_A_PLUS_B, desc
	case step5:
		return register.PC.ReadFromBus() | readMemory | signal.TR, desc
	}
	return signal.TR, desc
}

func pop(dest register.Register, mt uint8) (signal.Signal, string) {
	desc := f("pop %v", dest)
	switch mt {
	case step1:
		return register.StP.WriteToBus() | signal.ALW | signal.ALC | signal.ALU_A_PLUS_B | signal.MAW, desc
	case step2:
		return register.StP.ReadFromBus() | signal.BW_ALU, desc
	case step3:
		return dest.ReadFromBus() | readMemory | signal.TR, desc
	}
	return signal.TR, desc
}

func lccImm(mt uint8) (signal.Signal, string) {
	desc := f("lcc imm")
	switch mt {
	case step1:
		return signal.MAW | register.PC.WriteToBus(), desc
	case step2:
		return signal.PCC | readProgramMemory | signal.ALW | signal.ALU_A_PLUS_B, desc
	case step3:
		return signal.LCD_COMMAND | signal.LCD | register.Acc.WriteToBus() | signal.TR, desc
	}
	return signal.TR, desc
}

func lodImmAddr(dest register.Register, op opcode.Opcode, mt uint8) (signal.Signal, string) {
	desc := f("%v (%v = *Imm)", op.Describe(), dest)
	switch mt {
	case step1:
		return signal.MAW | register.PC.WriteToBus(), desc
	case step2:
		return signal.PCC | readMemory | signal.PGM | signal.MAW, desc
	case step3:
		return readMemory | dest.ReadFromBus() | signal.TR, desc
	}
	return signal.TR, desc
}

func lcdImm(mt uint8) (signal.Signal, string) {
	desc := f("lcd imm")
	switch mt {
	case step1:
		return signal.MAW | register.PC.WriteToBus(), desc
	case step2:
		return signal.PCC | readMemory | signal.PGM | signal.LCD_DATA | signal.LCD | signal.TR, desc
	}
	return signal.TR, desc
}

func clrReg(src register.Register, mt uint8) (signal.Signal, string) {
	desc := f("clr %v", src)
	switch mt {
	case step1:
		return register.PC.WriteToBus() | signal.ALU_A_AND_B | signal.ALW, desc
	case step2:
		return register.Acc.WriteToBus() | src.ReadFromBus() | signal.TR, desc
	}
	return signal.TR, desc
}

func lodReg(dest, src register.Register, op opcode.Opcode, mt uint8) (signal.Signal, string) {
	from := "*" + src.String()
	if src == register.Rc {
		from = "PGM*" + src.String()
	}
	desc := f("%v (%v = %v)", op.Describe(), dest, from)
	switch mt {
	case step1:
		return signal.MAW | src.WriteToBus(), desc
	case step2:
		word := readMemory | dest.ReadFromBus() | signal.TR
		if src == register.Rc {
			word |= signal.PGM
		}
		return word, desc
	}
	return signal.TR, desc
}
