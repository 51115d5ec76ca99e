package microcode

import (
	"github.com/go8bit/microcode/address"
	"github.com/go8bit/microcode/opcode"
	"github.com/go8bit/microcode/register"
	"github.com/go8bit/microcode/signal"
)

// decodeSto dispatches the STO group (opcode group 10): store, push,
// push-immediate, call/calli, store-immediate, and the shared pop/ret
// paths (src==StPi mirrors LOD's since the stack side of the ISA is
// symmetric between the two groups).
func decodeSto(addr address.EepromAddress) (signal.Signal, string) {
	op := addr.Opcode()
	dest, src := op.Dest(), op.Src()
	mt := addr.Microtime()

	switch {
	case dest == register.StPi:
		switch {
		case src == register.Imm:
			return pushi(mt)
		case src == register.PC:
			return callRc(mt)
		default:
			return push(src, mt)
		}

	case dest == register.Imm:
		if src == register.PC {
			return calli(mt)
		}
		if src == register.Imm {
			return stoiImm(mt)
		}
		return stoiReg(src, mt)

	case src == register.StPi:
		if dest == register.PC {
			return ret(mt)
		}
		return popSto(dest, mt)

	default:
		return stoReg(dest, src, op, mt)
	}
}

func pushi(mt uint8) (signal.Signal, string) {
	desc := f("pushi <= Imm")
	switch mt {
	case step1:
		return register.StP.WriteToBus() | signal.ALW | signal.ALU_A_MINUS_B, desc
	case step2:
		return signal.StPW | signal.BW_ALU, desc
	case step3:
		return register.PC.WriteToBus() | signal.MAW, desc
	case step4:
		return signal.PCC | signal.PGM | readMemory | signal.ALW | signal.ALU_A_PLUS_B, desc
	case step5:
		return register.StP.WriteToBus() | signal.MAW, desc
	case step6:
		return signal.MW | register.Acc.WriteToBus() | signal.TR, desc
	}
	return signal.TR, desc
}

func callRc(mt uint8) (signal.Signal, string) {
	desc := f("call Rc")
	switch mt {
	case step1:
		return register.StP.WriteToBus() | signal.ALW | signal.ALU_A_MINUS_B, desc
	case step2:
		return signal.StPW | signal.BW_ALU | signal.MAW, desc
	case step3:
		return register.PC.WriteToBus() | signal.MW, desc
	case step4:
		return register.Rc.WriteToBus() | register.PC.ReadFromBus() | signal.TR, desc
	}
	return signal.TR, desc
}

func push(src register.Register, mt uint8) (signal.Signal, string) {
	desc := f("push <= %v", src)
	switch mt {
	case step1:
		return register.StP.WriteToBus() | signal.ALW | signal.ALU_A_MINUS_B, desc
	case step2:
		return signal.StPW | signal.BW_ALU | signal.MAW, desc
	case step3:
		return src.WriteToBus() | signal.MW | signal.TR, desc
	}
	return signal.TR, desc
}

func calli(mt uint8) (signal.Signal, string) {
	desc := f("calli")
	switch mt {
	case step1:
		return register.StP.WriteToBus() | signal.ALW | signal.ALU_A_MINUS_B, desc
	case step2:
		return signal.StPW | signal.BW_ALU | signal.MAW, desc
	case step3:
		return register.PC.WriteToBus() | signal.ALW | signal.ALU_A_PLUS_B | signal.ALC, desc
	case step4:
		return signal.BW_ALU | signal.MW, desc
	case step5:
		return register.PC.WriteToBus() | signal.MAW, desc
	case step6:
		return signal.PGM | readMemory | register.PC.ReadFromBus() | signal.TR, desc
	}
	return signal.TR, desc
}

func stoiImm(mt uint8) (signal.Signal, string) {
	desc := f("stoi (PGM*Imm2 = Imm1)")
	switch mt {
	case step1:
		return register.PC.WriteToBus() | signal.MAW, desc
	case step2:
		return signal.PCC | signal.PGM | readMemory | signal.MAW | signal.ALW | signal.ALU_A_PLUS_B, desc
	case step3:
		return register.PC.WriteToBus() | signal.MAW, desc
	case step4:
		return signal.PCC | signal.PGM | readMemory | signal.MAW, desc
	case step5:
		return signal.MW | signal.PGM | signal.BW_ALU | signal.TR, desc
	}
	return signal.TR, desc
}

func stoiReg(src register.Register, mt uint8) (signal.Signal, string) {
	desc := f("stoi %v (*Imm = %v)", src, src)
	switch mt {
	case step1:
		return register.PC.WriteToBus() | signal.MAW, desc
	case step2:
		return signal.PCC | signal.PGM | readMemory | signal.MAW, desc
	case step3:
		return signal.MW | src.WriteToBus() | signal.TR, desc
	}
	return signal.TR, desc
}

func popSto(dest register.Register, mt uint8) (signal.Signal, string) {
	desc := f("pop => %v", dest)
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

func stoReg(dest, src register.Register, op opcode.Opcode, mt uint8) (signal.Signal, string) {
	into := "*" + dest.String()
	if dest == register.Rc {
		into = "PGM*" + dest.String()
	}
	desc := f("%v (%v = %v)", op.Describe(), into, src)
	switch mt {
	case step1:
		return dest.WriteToBus() | signal.MAW, desc
	case step2:
		word := src.WriteToBus() | signal.MW | signal.TR
		if dest == register.Rc {
			word |= signal.PGM
		}
		return word, desc
	}
	return signal.TR, desc
}
