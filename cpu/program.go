package cpu

import (
	"fmt"
	"iter"
	"strings"
)

// OpcodeKind is the type of an assembled listing statement.
type OpcodeKind int

//go:generate go tool stringer -linecomment -type=OpcodeKind
const (
	OPCODE_EXEC   = OpcodeKind(0) // exec
	OPCODE_SET    = OpcodeKind(1) // .set
	OPCODE_EXPECT = OpcodeKind(2) // .expect
)

// NAME_FLAGS is the register name used by .set and .expect for F.
const NAME_FLAGS = "f"

// Opcode represents a line of assembled code with its source location.
type Opcode struct {
	LineNo int
	Words  []string
	Kind   OpcodeKind
	Inst   Instruction // OPCODE_EXEC instruction.
	Target Target      // OPCODE_EXEC operand, or the .set/.expect register.
	Name   string      // .set/.expect register name; NAME_FLAGS for F.
	Value  uint16      // .set/.expect value.
}

// String returns the canonical listing text of the opcode.
func (op Opcode) String() string {
	switch op.Kind {
	case OPCODE_EXEC:
		if op.Target == TARGET_NONE {
			return op.Inst.String()
		}
		return fmt.Sprintf("%v %v", op.Inst, op.Target)
	case OPCODE_SET, OPCODE_EXPECT:
		if op.Name == NAME_FLAGS {
			return fmt.Sprintf("%v flags %v", op.Kind, FlagsFromByte(uint8(op.Value)).Letters())
		}
		if width, _ := op.Target.Width(); width == WIDTH_16 {
			return fmt.Sprintf("%v %v 0x%04x", op.Kind, op.Name, op.Value)
		}
		return fmt.Sprintf("%v %v 0x%02x", op.Kind, op.Name, op.Value)
	}

	return fmt.Sprintf("%v", op.Kind)
}

// Program is an assembled listing.
type Program struct {
	Opcodes []Opcode
}

// Instructions iterates the executable opcodes, keyed by line number.
func (prog *Program) Instructions() iter.Seq2[int, Opcode] {
	return func(yield func(lineno int, op Opcode) bool) {
		for _, op := range prog.Opcodes {
			if op.Kind != OPCODE_EXEC {
				continue
			}
			if !yield(op.LineNo, op) {
				return
			}
		}
	}
}

// Listing returns the canonical text of the whole program.
func (prog *Program) Listing() string {
	var sb strings.Builder
	for _, op := range prog.Opcodes {
		fmt.Fprintf(&sb, "%v\n", op)
	}

	return sb.String()
}
