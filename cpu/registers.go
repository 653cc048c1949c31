// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// Reg names one of the seven 8-bit general registers.
type Reg int

//go:generate go tool stringer -linecomment -type=Reg
const (
	REG_A = Reg(0) // a
	REG_B = Reg(1) // b
	REG_C = Reg(2) // c
	REG_D = Reg(3) // d
	REG_E = Reg(4) // e
	REG_H = Reg(5) // h
	REG_L = Reg(6) // l

	REG_COUNT = 7
)

// Pair names a 16-bit register pair view.
type Pair int

//go:generate go tool stringer -linecomment -type=Pair
const (
	PAIR_AF = Pair(0) // af
	PAIR_BC = Pair(1) // bc
	PAIR_DE = Pair(2) // de
	PAIR_HL = Pair(3) // hl
)

// pairHalves maps a pair to its high and low registers. AF has no low
// register; its low byte is the flag register.
var pairHalves = [...][2]Reg{
	PAIR_AF: {REG_A, -1},
	PAIR_BC: {REG_B, REG_C},
	PAIR_DE: {REG_D, REG_E},
	PAIR_HL: {REG_H, REG_L},
}

// RegisterFile is the SM83 register set: A, B, C, D, E, H, L and the
// packed flag register F.
type RegisterFile struct {
	reg [REG_COUNT]uint8
	f   uint8
}

// Get8 returns the value of a single 8-bit register.
func (rf *RegisterFile) Get8(r Reg) uint8 {
	return rf.reg[r]
}

// Set8 sets the value of a single 8-bit register.
func (rf *RegisterFile) Set8(r Reg, value uint8) {
	rf.reg[r] = value
}

// GetPair returns the 16-bit composite of a register pair, high register
// in bits 15-8.
func (rf *RegisterFile) GetPair(p Pair) uint16 {
	halves := pairHalves[p]

	lo := rf.f
	if halves[1] >= 0 {
		lo = rf.reg[halves[1]]
	}

	return (uint16(rf.reg[halves[0]]) << 8) | uint16(lo)
}

// SetPair splits a 16-bit value across a register pair.
// Writing AF passes the low byte through the flag codec, so bits 3-0 of F
// stay zero.
func (rf *RegisterFile) SetPair(p Pair, value uint16) {
	halves := pairHalves[p]

	rf.reg[halves[0]] = uint8(value >> 8)
	if halves[1] >= 0 {
		rf.reg[halves[1]] = uint8(value)
	} else {
		rf.SetFlags(FlagsFromByte(uint8(value)))
	}
}

// GetFlags decodes the flag register.
func (rf *RegisterFile) GetFlags() Flags {
	return FlagsFromByte(rf.f)
}

// SetFlags overwrites the whole flag register.
func (rf *RegisterFile) SetFlags(fl Flags) {
	rf.f = fl.Byte()
}

// F returns the packed flag register.
func (rf *RegisterFile) F() uint8 {
	return rf.f
}

// Reset zeroes every register, including F.
func (rf *RegisterFile) Reset() {
	clear(rf.reg[:])
	rf.f = 0
}
