package microcode

import (
	"github.com/go8bit/microcode/register"
	"github.com/go8bit/microcode/signal"
)

// Fetch is the two-microtime prefix common to every instruction,
// unconditional on opcode: drive PC onto the bus and latch the
// memory-address register, then read program memory into the
// instruction register and advance PC.
func fetchStep0() signal.Signal {
	return register.PC.WriteToBus() | signal.MAW
}

func fetchStep1() signal.Signal {
	return signal.PGM | signal.BW_MEM | signal.IRW | signal.PCC
}

// readProgramMemory is the combination asserted whenever a microstep reads
// a byte of program (as opposed to data) memory onto the bus.
const readProgramMemory = signal.PGM | signal.BW_MEM

// readMemory reads data memory onto the bus.
const readMemory = signal.BW_MEM

// Microtime step numbers after the 2-step fetch prefix.
const (
	step1 = 2
	step2 = 3
	step3 = 4
	step4 = 5
	step5 = 6
	step6 = 7
)
