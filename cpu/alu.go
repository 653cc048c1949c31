// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// AccumulatorOp computes a new accumulator value from A and an operand.
type AccumulatorOp func(a, value uint8) (result uint8, flags Flags)

// RegisterOp computes a new 8-bit register value. Flags not affected by
// the operation are copied from prior.
type RegisterOp func(value uint8, prior Flags) (result uint8, flags Flags)

// PairOp computes a new 16-bit register pair value.
type PairOp func(value uint16, prior Flags) (result uint16, flags Flags)

// Add adds value to a.
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func Add(a, value uint8) (result uint8, flags Flags) {
	sum := uint16(a) + uint16(value)
	half := uint16(a&0xf) + uint16(value&0xf)

	flags = Flags{
		Zero:      (sum & 0xff) == 0,
		HalfCarry: half > 0xf,
		Carry:     sum > 0xff,
	}
	result = uint8(sum)
	return
}

// AddCarry adds value to a, plus one if that addition carried.
// Flags are those of the base addition.
func AddCarry(a, value uint8) (result uint8, flags Flags) {
	result, flags = Add(a, value)
	if flags.Carry {
		result++
	}
	return
}

// AddPair adds value to the HL pair.
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func AddPair(hl, value uint16) (result uint16, flags Flags) {
	sum := uint32(hl) + uint32(value)
	half := uint32(hl&0xfff) + uint32(value&0xfff)

	flags = Flags{
		Zero:      (sum & 0xffff) == 0,
		HalfCarry: half > 0xfff,
		Carry:     sum > 0xffff,
	}
	result = uint16(sum)
	return
}

// Subtract subtracts value from a.
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func Subtract(a, value uint8) (result uint8, flags Flags) {
	// A borrow wraps the wider difference past 0xff.
	diff := uint16(a) - uint16(value)
	half := uint16(a&0xf) - uint16(value&0xf)

	flags = Flags{
		Zero:        (diff & 0xff) == 0,
		Subtraction: true,
		HalfCarry:   half > 0xf,
		Carry:       diff > 0xff,
	}
	result = uint8(diff)
	return
}

// SubtractCarry subtracts value from a, and one more if that subtraction
// borrowed. Flags are those of the base subtraction.
func SubtractCarry(a, value uint8) (result uint8, flags Flags) {
	result, flags = Subtract(a, value)
	if flags.Carry {
		result--
	}
	return
}

// And is the bitwise AND of a and value. H is always set.
func And(a, value uint8) (result uint8, flags Flags) {
	result = a & value
	flags = Flags{Zero: result == 0, HalfCarry: true}
	return
}

// Or is the bitwise OR of a and value.
func Or(a, value uint8) (result uint8, flags Flags) {
	result = a | value
	flags = Flags{Zero: result == 0}
	return
}

// Xor is the bitwise XOR of a and value.
func Xor(a, value uint8) (result uint8, flags Flags) {
	result = a ^ value
	flags = Flags{Zero: result == 0}
	return
}

// Compare is Subtract; callers keep the flags and drop the result.
func Compare(a, value uint8) (result uint8, flags Flags) {
	return Subtract(a, value)
}

// Increment adds one to value.
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func Increment(value uint8, prior Flags) (result uint8, flags Flags) {
	sum := uint16(value) + 1

	result = uint8(sum)
	flags = Flags{
		Zero:      result == 0,
		HalfCarry: uint16(value&0xf)+1 > 0xf,
		Carry:     prior.Carry,
	}
	return
}

// Decrement subtracts one from value.
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func Decrement(value uint8, prior Flags) (result uint8, flags Flags) {
	diff := uint16(value) - 1

	result = uint8(diff)
	flags = Flags{
		Zero:        result == 0,
		Subtraction: true,
		HalfCarry:   (value & 0xf) == 0,
		Carry:       prior.Carry,
	}
	return
}

// IncrementPair adds one to a register pair. No flags are affected.
func IncrementPair(value uint16, prior Flags) (result uint16, flags Flags) {
	return uint16(uint32(value) + 1), prior
}

// DecrementPair subtracts one from a register pair. No flags are affected.
func DecrementPair(value uint16, prior Flags) (result uint16, flags Flags) {
	return uint16(uint32(value) - 1), prior
}
