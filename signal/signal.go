// Package signal enumerates the 32 control-word bit positions driven by the
// microcode decoder: bus write/read lines, memory and LCD strobes, the ALU
// mode field, and the clock/halt lines. The set is closed and every bit has
// a fixed, documented position — any reordering changes the meaning of a
// decoded control word.
package signal

// Signal is a single control-word bit, or an OR of several.
type Signal uint32

// Bus write lines (bits 0-8): at most one of these is asserted per
// microstep (spec invariant: at most one bus driver active). PC, the four
// general-purpose registers, the stack pointer and the accumulator each
// drive the bus through a dedicated one-hot line rather than a shared
// 3-bit decode field — a shared field cannot express the MOV group's
// eventual single-driver guarantee any more simply, but it also cannot
// express the broadcast read below, so both sides use one-hot lines for
// symmetry.
const (
	BW_PC Signal = 1 << iota // PC drives the bus
	bwRa                     // Ra drives the bus
	bwRb                     // Rb drives the bus
	bwRc                     // Rc drives the bus
	bwRd                     // Rd drives the bus
	bwStP                    // StP drives the bus
	bwAcc                    // Acc drives the bus
	BW_MEM                   // memory drives the bus
	BW_ALU                   // ALU result drives the bus
)

// Bus read (load) lines (bits 9-15): independent per register, so several
// can latch from the same bus value in one microstep — required by clra,
// which broadcasts the accumulator's zero value into every GP register at
// once.
const (
	rdPC Signal = 1 << (iota + 9) // PC latches the bus
	rdRa                          // Ra latches the bus
	rdRb                          // Rb latches the bus
	rdRc                          // Rc latches the bus
	rdRd                          // Rd latches the bus
	rdStP                         // StP latches the bus
	rdAcc                        // Acc latches the bus
)

// Memory, ALU and clock strobes (bits 16-23). Names follow the reference
// decoder's (MAW == "_MAW", MW == "_MW", IRW == "_IRW", ALW == "_ALW");
// the leading underscore in the reference names an active-low EEPROM
// output pin and carries no meaning for a Go bit constant.
const (
	PGM Signal = 1 << 16 // select program memory instead of data memory
	MAW Signal = 1 << 17 // latch bus into memory-address register
	MW  Signal = 1 << 18 // write bus to memory
	IRW Signal = 1 << 19 // latch bus into instruction register
	ALW Signal = 1 << 20 // latch ALU output
	PCC Signal = 1 << 21 // increment PC
	ALC Signal = 1 << 22 // ALU carry-in
	ALB Signal = 1 << 23 // select "A op B" ALU form (vs single-operand increment)
)

// ALU_OFFSET is the shift of the 2-bit ALU operation select field (bits
// 24-25). The field holds the raw A_AND_B/A_PLUS_B/A_MINUS_B/B_MINUS_A
// selector; which of the 8 named ALU modes that corresponds to depends on
// whether the opcode's useCarry bit is set, resolved before the control
// word is built (see opcode.AluMode).
const ALU_OFFSET = 24

const (
	ALU_A_AND_B   Signal = 0b00 << ALU_OFFSET
	ALU_A_PLUS_B  Signal = 0b01 << ALU_OFFSET
	ALU_A_MINUS_B Signal = 0b10 << ALU_OFFSET
	ALU_B_MINUS_A Signal = 0b11 << ALU_OFFSET
)

// LCD strobes (bits 26-28).
const (
	LCD         Signal = 1 << 26 // LCD device is addressed this microstep
	LCD_COMMAND Signal = 1 << 27 // bus byte is an LCD command
	LCD_DATA    Signal = 1 << 28 // bus byte is LCD character data
)

// Remaining control lines (bits 29-31). TR == reference "_TR", StPW ==
// reference "_StPW".
const (
	HLT  Signal = 1 << 29 // halt the clock
	TR   Signal = 1 << 30 // reset microtime to 0, ending the instruction
	StPW Signal = 1 << 31 // latch bus into the stack pointer
)

// INSTRUCTION_END is the name used by the reference decoder for TR.
const INSTRUCTION_END = TR

// writeLines and readLines map a register's 3-bit code to its one-hot bus
// line. Code 7 (Imm) has no physical bus connection — it is a pure
// sentinel used during opcode decode, never driven onto or latched from
// the bus directly — so it maps to 0. Code 6 is physically the
// accumulator; it is called "StPi" (stack-pointer-indirect) when it
// appears in a LOD/STO operand field as a dispatch sentinel, and its bus
// lines are the accumulator's (register.Acc) in every group.
var writeLines = [8]Signal{BW_PC, bwRa, bwRb, bwRc, bwRd, bwStP, bwAcc, 0}
var readLines = [8]Signal{rdPC, rdRa, rdRb, rdRc, rdRd, rdStP, rdAcc, 0}

// WriteBus returns the one-hot bus-write line for the register code in
// [0..7], as used by register.Register.WriteToBus.
func WriteBus(code uint8) Signal {
	return writeLines[code&0x7]
}

// ReadBus returns the one-hot bus-read (load) line for the register code
// in [0..7], as used by register.Register.ReadFromBus.
func ReadBus(code uint8) Signal {
	return readLines[code&0x7]
}

// AluMode packs the raw 2-bit ALU operation select into the control
// word's ALU_OFFSET field.
func AluMode(bits uint8) Signal {
	return Signal(bits&0x3) << ALU_OFFSET
}
