// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/sm83/cpu"
	"github.com/ezrec/sm83/internal"
)

const (
	U8_MAX  = 0xff   // Largest 8-bit register value.
	U16_MAX = 0xffff // Largest register pair value.
)

var _emulator_defines = map[string]string{
	"U8_MAX":  fmt.Sprintf("%#x", U8_MAX),
	"U16_MAX": fmt.Sprintf("%#x", U16_MAX),
}

// Emulator state. CPU + the listing being stepped.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	index int // Next opcode to run.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset the CPU and rewind the program.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.index = 0

	return
}

// Ticks returns the total instructions executed since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// LineNo returns the line number of the next opcode, or 0 when done.
func (emu *Emulator) LineNo() int {
	if emu.index >= len(emu.Program.Opcodes) {
		return 0
	}

	return emu.Program.Opcodes[emu.index].LineNo
}

// read returns the current value of a .set/.expect register name.
func (emu *Emulator) read(op *cpu.Opcode) (value uint16, err error) {
	regs := &emu.Cpu.Registers

	if op.Name == cpu.NAME_FLAGS {
		value = uint16(regs.F())
		return
	}

	width, ok := op.Target.Width()
	if !ok {
		err = ErrRegister
		return
	}

	switch width {
	case cpu.WIDTH_8:
		var v8 uint8
		v8, err = regs.ResolveU8(op.Target)
		value = uint16(v8)
	case cpu.WIDTH_16:
		value, err = regs.ResolveU16(op.Target)
	}

	return
}

// write presets a .set register name.
func (emu *Emulator) write(op *cpu.Opcode) (err error) {
	regs := &emu.Cpu.Registers

	if op.Name == cpu.NAME_FLAGS {
		regs.SetFlags(cpu.FlagsFromByte(uint8(op.Value)))
		return
	}

	width, ok := op.Target.Width()
	if !ok {
		err = ErrRegister
		return
	}

	switch width {
	case cpu.WIDTH_8:
		err = regs.StoreU8(op.Target, uint8(op.Value))
	case cpu.WIDTH_16:
		err = regs.StoreU16(op.Target, op.Value)
	}

	return
}

// Tick runs the next opcode of the program.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if emu.index >= len(emu.Program.Opcodes) {
		done = true
		return
	}

	op := &emu.Program.Opcodes[emu.index]
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: op.LineNo, Err: err}
		}
	}()

	if emu.Verbose {
		log.Printf("%d: %v", op.LineNo, op)
	}

	switch op.Kind {
	case cpu.OPCODE_EXEC:
		err = emu.Cpu.Execute(op.Inst, op.Target)
	case cpu.OPCODE_SET:
		err = emu.write(op)
	case cpu.OPCODE_EXPECT:
		var got uint16
		got, err = emu.read(op)
		if err == nil && got != op.Value {
			err = &ErrExpect{Name: op.Name, Want: op.Value, Got: got}
		}
	}
	if err != nil {
		return
	}

	emu.index++

	return
}

// Run ticks the program until it completes or fails.
func (emu *Emulator) Run() (err error) {
	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
