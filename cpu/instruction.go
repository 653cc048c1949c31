// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// Instruction is an already-decoded ALU operation.
type Instruction int

//go:generate go tool stringer -linecomment -type=Instruction
const (
	INST_ADD    = Instruction(0)  // add
	INST_ADC    = Instruction(1)  // adc
	INST_ADD_HL = Instruction(2)  // addhl
	INST_SUB    = Instruction(3)  // sub
	INST_SBC    = Instruction(4)  // sbc
	INST_AND    = Instruction(5)  // and
	INST_OR     = Instruction(6)  // or
	INST_XOR    = Instruction(7)  // xor
	INST_CP     = Instruction(8)  // cp
	INST_INC    = Instruction(9)  // inc
	INST_DEC    = Instruction(10) // dec
	INST_INC16  = Instruction(11) // inc16
	INST_DEC16  = Instruction(12) // dec16
	INST_CCF    = Instruction(13) // ccf
	INST_SCF    = Instruction(14) // scf
	INST_RRA    = Instruction(15) // rra
	INST_RLA    = Instruction(16) // rla
	INST_RRCA   = Instruction(17) // rrca
	INST_RLCA   = Instruction(18) // rlca
	INST_CPL    = Instruction(19) // cpl
	INST_BIT    = Instruction(20) // bit
	INST_RES    = Instruction(21) // res
	INST_SET    = Instruction(22) // set
	INST_SRL    = Instruction(23) // srl
	INST_RR     = Instruction(24) // rr
	INST_RL     = Instruction(25) // rl
	INST_RRC    = Instruction(26) // rrc
	INST_RLC    = Instruction(27) // rlc
	INST_SRA    = Instruction(28) // sra
	INST_SLA    = Instruction(29) // sla
	INST_SWAP   = Instruction(30) // swap

	INST_COUNT = 31
)

// ParseInstruction looks up an instruction by its mnemonic.
func ParseInstruction(mnemonic string) (inst Instruction, ok bool) {
	for n := range INST_COUNT {
		if Instruction(n).String() == mnemonic {
			return Instruction(n), true
		}
	}

	return
}

// Operand returns the operand width the instruction takes.
// Instructions with no operand, such as ccf, return ok == false.
func (inst Instruction) Operand() (width Width, ok bool) {
	switch inst {
	case INST_ADD_HL, INST_INC16, INST_DEC16:
		return WIDTH_16, true
	case INST_CCF, INST_SCF, INST_RRA, INST_RLA, INST_RRCA, INST_RLCA, INST_CPL:
		return
	}

	if inst < 0 || inst >= INST_COUNT {
		return
	}

	return WIDTH_8, true
}
