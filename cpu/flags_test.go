package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// allFlags returns every reachable flag state.
func allFlags() (states []Flags) {
	for n := range 16 {
		states = append(states, Flags{
			Zero:        n&8 != 0,
			Subtraction: n&4 != 0,
			HalfCarry:   n&2 != 0,
			Carry:       n&1 != 0,
		})
	}
	return
}

func TestFlags_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	for _, fl := range allFlags() {
		value := fl.Byte()
		assert.Equal(uint8(0), value&0x0f, "%+v", fl)
		assert.Equal(fl, FlagsFromByte(value), "%+v", fl)
	}
}

func TestFlags_Positions(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint8(0x80), Flags{Zero: true}.Byte())
	assert.Equal(uint8(0x40), Flags{Subtraction: true}.Byte())
	assert.Equal(uint8(0x20), Flags{HalfCarry: true}.Byte())
	assert.Equal(uint8(0x10), Flags{Carry: true}.Byte())
	assert.Equal(FLAG_MASK, Flags{true, true, true, true}.Byte())
}

func TestFlags_FromByteIgnoresLowNibble(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Flags{}, FlagsFromByte(0x0f))
	assert.Equal(Flags{Zero: true, Carry: true}, FlagsFromByte(0x9f))
}

func TestFlags_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("znhc", Flags{}.String())
	assert.Equal("ZnhC", Flags{Zero: true, Carry: true}.String())
	assert.Equal("-", Flags{}.Letters())
	assert.Equal("nh", Flags{Subtraction: true, HalfCarry: true}.Letters())
}

func TestParseFlags(t *testing.T) {
	assert := assert.New(t)

	for _, fl := range allFlags() {
		parsed, err := ParseFlags(fl.Letters())
		assert.NoError(err)
		assert.Equal(fl, parsed)
	}

	fl, err := ParseFlags("CZ")
	assert.NoError(err)
	assert.Equal(Flags{Zero: true, Carry: true}, fl)

	_, err = ParseFlags("zx")
	assert.Equal(ErrParseFlags("zx"), err)
}
