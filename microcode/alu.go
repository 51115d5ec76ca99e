package microcode

import (
	"github.com/go8bit/microcode/address"
	"github.com/go8bit/microcode/opcode"
	"github.com/go8bit/microcode/register"
	"github.com/go8bit/microcode/signal"
)

// decodeAlu dispatches the ALU group (opcode group 11). The useCarry bit
// both selects carry-in for the arithmetic modes and re-labels the
// logical modes as compare/LCD strobes (spec design note, preserved
// exactly rather than split into two clean opcode spaces).
func decodeAlu(addr address.EepromAddress, flags address.Flags) (signal.Signal, string) {
	aop := opcode.AluOpcode(addr.Opcode())
	reg := aop.Reg()
	mode := aop.Mode()
	mt := addr.Microtime()

	switch {
	case mode == opcode.INC_A:
		return incDec(reg, aop.UseCarry(), mt)

	case mode == opcode.A_PLUS_B:
		return aluAdd(reg, aop, mt, flags.CarrySet())

	case mode == opcode.A_MINUS_B || mode == opcode.B_MINUS_A:
		return aluSub(reg, aop, mode, mt, flags.CarrySet())

	case aop.UseCarry():
		return aluCompareOrLcd(reg, mode, mt)

	default:
		return aluLogical(reg, mode, mt)
	}
}

func incDec(reg register.Register, dec bool, mt uint8) (signal.Signal, string) {
	var desc string
	if dec {
		desc = f("dec %v", reg)
	} else {
		desc = f("inc %v", reg)
	}

	switch mt {
	case step1:
		op := signal.ALU_A_MINUS_B
		if !dec {
			op = signal.ALU_A_PLUS_B | signal.ALC
		}
		return reg.WriteToBus() | op | signal.ALW, desc
	case step2:
		return reg.ReadFromBus() | register.Acc.WriteToBus() | signal.TR, desc
	}
	return signal.TR, desc
}

func aluAdd(reg register.Register, aop opcode.AluOpcode, mt uint8, carryFlagSet bool) (signal.Signal, string) {
	desc := aop.Describe()
	switch mt {
	case step1:
		word := reg.WriteToBus() | signal.ALB | signal.AluMode(aop.Mode().Bits()) | signal.ALW
		if aop.UseCarry() && carryFlagSet {
			word |= signal.ALC
		}
		return word, desc
	case step2:
		return reg.ReadFromBus() | register.Acc.WriteToBus() | signal.TR, desc
	}
	return signal.TR, desc
}

func aluSub(reg register.Register, aop opcode.AluOpcode, mode opcode.AluMode, mt uint8, carryFlagSet bool) (signal.Signal, string) {
	desc := aop.Describe()
	switch mt {
	case step1:
		word := reg.WriteToBus() | signal.ALB | signal.AluMode(mode.Bits()) | signal.ALW
		if !(aop.UseCarry() && carryFlagSet) {
			word |= signal.ALC
		}
		return word, desc
	case step2:
		return reg.ReadFromBus() | register.Acc.WriteToBus() | signal.TR, desc
	}
	return signal.TR, desc
}

// aluCompareOrLcd handles the four useCarry==true logical modes: two are
// relabeled flags-only compares (A_OR_B -> cmp Rb,reg via B_MINUS_A;
// A_AND_B -> cmp reg,Rb via A_MINUS_B), the other two strobe the LCD.
func aluCompareOrLcd(reg register.Register, mode opcode.AluMode, mt uint8) (signal.Signal, string) {
	switch mode {
	case opcode.A_XOR_B:
		desc := f("lcc %v", reg)
		if mt == step1 {
			return signal.LCD_COMMAND | signal.LCD | reg.WriteToBus() | signal.TR, desc
		}
		return signal.TR, desc

	case opcode.NOT_A:
		desc := f("lcd %v", reg)
		if mt == step1 {
			return signal.LCD_DATA | signal.LCD | reg.WriteToBus() | signal.TR, desc
		}
		return signal.TR, desc
	}

	var desc string
	cmpMode := mode
	switch mode {
	case opcode.A_OR_B:
		desc = f("cmp Rb, %v", reg)
		cmpMode = opcode.B_MINUS_A
	case opcode.A_AND_B:
		desc = f("cmp %v, Rb", reg)
		cmpMode = opcode.A_MINUS_B
	}

	if mt == step1 {
		return reg.WriteToBus() | signal.ALB | signal.ALC | signal.AluMode(cmpMode.Bits()) | signal.ALW | signal.TR, desc
	}
	return signal.TR, desc
}

// aluLogical handles the four useCarry==false logical modes (AND/OR/XOR/
// NOT). NOT_A is remapped to B_MINUS_A's raw bits before reaching the
// control word, collapsing two modes onto one physical ALU select per
// the reference encoding; preserved exactly, not renamed away.
// AluOpcode.Mode yields the logical modes only when useCarry is set, and
// decodeAlu routes those to aluCompareOrLcd, so no opcode reaches this
// function.
func aluLogical(reg register.Register, mode opcode.AluMode, mt uint8) (signal.Signal, string) {
	desc := f("%v %v", mode, reg)
	encodeMode := mode
	if mode == opcode.NOT_A {
		encodeMode = opcode.B_MINUS_A
	}

	switch mt {
	case step1:
		return reg.WriteToBus() | signal.ALB | signal.AluMode(encodeMode.Bits()) | signal.ALW, desc
	case step2:
		return reg.ReadFromBus() | register.Acc.WriteToBus() | signal.TR, desc
	}
	return signal.TR, desc
}
