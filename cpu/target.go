// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// Width is an operand width.
type Width int

//go:generate go tool stringer -linecomment -type=Width
const (
	WIDTH_8  = Width(0) // 8-bit
	WIDTH_16 = Width(1) // 16-bit
)

// Target names the register or register pair that supplies an operand.
type Target int

//go:generate go tool stringer -linecomment -type=Target
const (
	TARGET_A  = Target(0)  // a
	TARGET_B  = Target(1)  // b
	TARGET_C  = Target(2)  // c
	TARGET_D  = Target(3)  // d
	TARGET_E  = Target(4)  // e
	TARGET_H  = Target(5)  // h
	TARGET_L  = Target(6)  // l
	TARGET_AF = Target(7)  // af
	TARGET_BC = Target(8)  // bc
	TARGET_DE = Target(9)  // de
	TARGET_HL = Target(10) // hl

	TARGET_NONE = Target(-1) // -
)

// targetInfo is the single accessor table for operand targets.
type targetInfo struct {
	width Width
	reg   Reg
	pair  Pair
}

var targetTable = [...]targetInfo{
	TARGET_A:  {width: WIDTH_8, reg: REG_A},
	TARGET_B:  {width: WIDTH_8, reg: REG_B},
	TARGET_C:  {width: WIDTH_8, reg: REG_C},
	TARGET_D:  {width: WIDTH_8, reg: REG_D},
	TARGET_E:  {width: WIDTH_8, reg: REG_E},
	TARGET_H:  {width: WIDTH_8, reg: REG_H},
	TARGET_L:  {width: WIDTH_8, reg: REG_L},
	TARGET_AF: {width: WIDTH_16, pair: PAIR_AF},
	TARGET_BC: {width: WIDTH_16, pair: PAIR_BC},
	TARGET_DE: {width: WIDTH_16, pair: PAIR_DE},
	TARGET_HL: {width: WIDTH_16, pair: PAIR_HL},
}

// ParseTarget looks up a target by its lower case name.
func ParseTarget(name string) (target Target, ok bool) {
	for n := range targetTable {
		if Target(n).String() == name {
			return Target(n), true
		}
	}

	return TARGET_NONE, false
}

func (t Target) info() (info targetInfo, ok bool) {
	if t < 0 || int(t) >= len(targetTable) {
		return
	}

	return targetTable[t], true
}

// Width returns the operand width of the target.
func (t Target) Width() (width Width, ok bool) {
	info, ok := t.info()
	width = info.width
	return
}

// Reg returns the 8-bit register named by the target.
func (t Target) Reg() (r Reg, ok bool) {
	info, ok := t.info()
	if !ok || info.width != WIDTH_8 {
		return 0, false
	}

	return info.reg, true
}

// Pair returns the register pair named by the target.
func (t Target) Pair() (p Pair, ok bool) {
	info, ok := t.info()
	if !ok || info.width != WIDTH_16 {
		return 0, false
	}

	return info.pair, true
}

// ResolveU8 reads the 8-bit register named by target.
func (rf *RegisterFile) ResolveU8(target Target) (value uint8, err error) {
	r, ok := target.Reg()
	if !ok {
		err = &ErrOperandWidth{Target: target, Want: WIDTH_8}
		return
	}

	value = rf.Get8(r)
	return
}

// ResolveU16 reads the register pair named by target.
func (rf *RegisterFile) ResolveU16(target Target) (value uint16, err error) {
	p, ok := target.Pair()
	if !ok {
		err = &ErrOperandWidth{Target: target, Want: WIDTH_16}
		return
	}

	value = rf.GetPair(p)
	return
}

// StoreU8 writes the 8-bit register named by target.
func (rf *RegisterFile) StoreU8(target Target, value uint8) (err error) {
	r, ok := target.Reg()
	if !ok {
		err = &ErrOperandWidth{Target: target, Want: WIDTH_8}
		return
	}

	rf.Set8(r, value)
	return
}

// StoreU16 writes the register pair named by target.
func (rf *RegisterFile) StoreU16(target Target, value uint16) (err error) {
	p, ok := target.Pair()
	if !ok {
		err = &ErrOperandWidth{Target: target, Want: WIDTH_16}
		return
	}

	rf.SetPair(p, value)
	return
}
