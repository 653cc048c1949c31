// Package cpu implements the arithmetic/logic unit and register file of
// the SM83, the 8-bit processor core of the Game Boy.
//
// The register file holds seven 8-bit registers (A, B, C, D, E, H, L) and a
// packed flag register F. Register pairs (AF, BC, DE, HL) are views derived
// from two 8-bit registers and are never stored.
//
// Cpu.Execute applies one already-decoded instruction to a named operand,
// routing it through the ALU functions and committing the result and the
// Zero, Subtraction, HalfCarry and Carry flags.
//
// The package also provides a small listing assembler, used to drive the
// processor from text for testing and debugging.
package cpu
