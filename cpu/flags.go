// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// Flag register bit masks. The low nibble of F is always zero.
const (
	FLAG_ZERO        = uint8(1 << 7) // Z
	FLAG_SUBTRACTION = uint8(1 << 6) // N
	FLAG_HALF_CARRY  = uint8(1 << 5) // H
	FLAG_CARRY       = uint8(1 << 4) // C
	FLAG_MASK        = FLAG_ZERO | FLAG_SUBTRACTION | FLAG_HALF_CARRY | FLAG_CARRY
)

// Flags is the decoded state of the F register.
type Flags struct {
	Zero        bool
	Subtraction bool
	HalfCarry   bool
	Carry       bool
}

// FlagsFromByte decodes a packed flag byte. The low nibble is ignored.
func FlagsFromByte(value uint8) Flags {
	return Flags{
		Zero:        (value & FLAG_ZERO) != 0,
		Subtraction: (value & FLAG_SUBTRACTION) != 0,
		HalfCarry:   (value & FLAG_HALF_CARRY) != 0,
		Carry:       (value & FLAG_CARRY) != 0,
	}
}

// Byte encodes the flags into a fresh byte. Bits 3-0 are always zero.
func (fl Flags) Byte() (value uint8) {
	if fl.Zero {
		value |= FLAG_ZERO
	}
	if fl.Subtraction {
		value |= FLAG_SUBTRACTION
	}
	if fl.HalfCarry {
		value |= FLAG_HALF_CARRY
	}
	if fl.Carry {
		value |= FLAG_CARRY
	}

	return
}

// String renders the flags as "znhc", upper case letters are set.
func (fl Flags) String() string {
	out := []byte("znhc")
	for n, set := range []bool{fl.Zero, fl.Subtraction, fl.HalfCarry, fl.Carry} {
		if set {
			out[n] -= 'a' - 'A'
		}
	}

	return string(out)
}

// Letters lists the set flags in "znhc" order, or "-" if none are set.
// The output is accepted by ParseFlags.
func (fl Flags) Letters() string {
	var out []byte
	for n, set := range []bool{fl.Zero, fl.Subtraction, fl.HalfCarry, fl.Carry} {
		if set {
			out = append(out, "znhc"[n])
		}
	}
	if len(out) == 0 {
		return "-"
	}

	return string(out)
}

// ParseFlags parses a set of flag letters ("zhc", "C", "-") into Flags.
// Letters may appear in any order and case; "-" means no flags set.
func ParseFlags(text string) (fl Flags, err error) {
	if text == "-" {
		return
	}

	for _, ch := range text {
		switch ch {
		case 'z', 'Z':
			fl.Zero = true
		case 'n', 'N':
			fl.Subtraction = true
		case 'h', 'H':
			fl.HalfCarry = true
		case 'c', 'C':
			fl.Carry = true
		default:
			err = ErrParseFlags(text)
			return
		}
	}

	return
}
