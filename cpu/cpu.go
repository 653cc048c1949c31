// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
)

var _cpu_defines = map[string]string{
	"FLAG_ZERO":        fmt.Sprintf("%#x", FLAG_ZERO),
	"FLAG_SUBTRACTION": fmt.Sprintf("%#x", FLAG_SUBTRACTION),
	"FLAG_HALF_CARRY":  fmt.Sprintf("%#x", FLAG_HALF_CARRY),
	"FLAG_CARRY":       fmt.Sprintf("%#x", FLAG_CARRY),
	"FLAG_MASK":        fmt.Sprintf("%#x", FLAG_MASK),
}

// handler executes one instruction family against an operand target.
type handler func(cpu *Cpu, target Target) error

// accumulator handles 8-bit operations on A. If writeBack is false only
// the flags are committed.
func accumulator(op AccumulatorOp, writeBack bool) handler {
	return func(cpu *Cpu, target Target) (err error) {
		value, err := cpu.Registers.ResolveU8(target)
		if err != nil {
			return
		}

		result, flags := op(cpu.Registers.Get8(REG_A), value)
		if writeBack {
			cpu.Registers.Set8(REG_A, result)
		}
		cpu.Registers.SetFlags(flags)
		return
	}
}

// pairAccumulator handles 16-bit operations on HL.
func pairAccumulator(op func(hl, value uint16) (uint16, Flags)) handler {
	return func(cpu *Cpu, target Target) (err error) {
		value, err := cpu.Registers.ResolveU16(target)
		if err != nil {
			return
		}

		result, flags := op(cpu.Registers.GetPair(PAIR_HL), value)
		cpu.Registers.SetPair(PAIR_HL, result)
		cpu.Registers.SetFlags(flags)
		return
	}
}

// register handles in-place operations on a single 8-bit register.
func register(op RegisterOp) handler {
	return func(cpu *Cpu, target Target) (err error) {
		value, err := cpu.Registers.ResolveU8(target)
		if err != nil {
			return
		}

		result, flags := op(value, cpu.Registers.GetFlags())
		_ = cpu.Registers.StoreU8(target, result)
		cpu.Registers.SetFlags(flags)
		return
	}
}

// pair handles in-place operations on a register pair.
func pair(op PairOp) handler {
	return func(cpu *Cpu, target Target) (err error) {
		value, err := cpu.Registers.ResolveU16(target)
		if err != nil {
			return
		}

		// Flags first: a write to AF must win over the committed flags.
		result, flags := op(value, cpu.Registers.GetFlags())
		cpu.Registers.SetFlags(flags)
		_ = cpu.Registers.StoreU16(target, result)
		return
	}
}

// handlers is the instruction dispatch table. Instructions missing from
// the table are unsupported.
var handlers = map[Instruction]handler{
	INST_ADD:    accumulator(Add, true),
	INST_ADC:    accumulator(AddCarry, true),
	INST_SUB:    accumulator(Subtract, true),
	INST_SBC:    accumulator(SubtractCarry, true),
	INST_AND:    accumulator(And, true),
	INST_OR:     accumulator(Or, true),
	INST_XOR:    accumulator(Xor, true),
	INST_CP:     accumulator(Compare, false),
	INST_ADD_HL: pairAccumulator(AddPair),
	INST_INC:    register(Increment),
	INST_DEC:    register(Decrement),
	INST_INC16:  pair(IncrementPair),
	INST_DEC16:  pair(DecrementPair),
}

// Supported reports whether an instruction has a handler.
func (inst Instruction) Supported() bool {
	_, ok := handlers[inst]
	return ok
}

// Cpu is the SM83 execution context: the register file and the
// instruction dispatcher.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Registers RegisterFile // Register file.

	Ticks int // Executed instruction counter.
}

// NewCpu creates a new CPU with all registers zeroed.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Registers.Reset()
	cpu.Ticks = 0
}

// Execute executes a single decoded instruction against an operand target.
func (cpu *Cpu) Execute(inst Instruction, target Target) (err error) {
	if cpu.Verbose {
		log.Printf("%v %v", inst, target)
	}

	exec, ok := handlers[inst]
	if !ok {
		err = ErrInstruction(inst)
		return
	}

	err = exec(cpu, target)
	if err != nil {
		return
	}

	cpu.Ticks += 1

	if cpu.Verbose {
		log.Printf("%v", cpu.Snapshot())
	}

	return
}

// Snapshot returns a copy of the register state.
func (cpu *Cpu) Snapshot() (snap Snapshot) {
	snap.Reg = cpu.Registers.reg
	snap.Flags = cpu.Registers.GetFlags()
	return
}

// Snapshot is a read-only copy of the register file.
type Snapshot struct {
	Reg   [REG_COUNT]uint8
	Flags Flags
}

// Get8 returns the captured value of an 8-bit register.
func (snap Snapshot) Get8(r Reg) uint8 {
	return snap.Reg[r]
}

// GetPair returns the captured value of a register pair.
func (snap Snapshot) GetPair(p Pair) uint16 {
	rf := RegisterFile{reg: snap.Reg, f: snap.Flags.Byte()}
	return rf.GetPair(p)
}

// Registers iterates the 8-bit registers in A, B, C, D, E, H, L order.
func (snap Snapshot) Registers() iter.Seq2[Reg, uint8] {
	return func(yield func(r Reg, value uint8) bool) {
		for n, value := range snap.Reg {
			if !yield(Reg(n), value) {
				return
			}
		}
	}
}

// String returns the register state as a string.
func (snap Snapshot) String() (text string) {
	for r, value := range snap.Registers() {
		text += fmt.Sprintf("%v:%02x ", r, value)
	}
	text += fmt.Sprintf("f:%v", snap.Flags)

	return
}
