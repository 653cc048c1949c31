package cpu

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Opcodes))

	assert.Equal("0", asm.Equate["LINENO"])
	assert.Equal(fmt.Sprintf("%#x", FLAG_ZERO), asm.Equate["FLAG_ZERO"])
	assert.Equal(fmt.Sprintf("%#x", FLAG_SUBTRACTION), asm.Equate["FLAG_SUBTRACTION"])
	assert.Equal(fmt.Sprintf("%#x", FLAG_HALF_CARRY), asm.Equate["FLAG_HALF_CARRY"])
	assert.Equal(fmt.Sprintf("%#x", FLAG_CARRY), asm.Equate["FLAG_CARRY"])
	assert.Equal(fmt.Sprintf("%#x", FLAG_MASK), asm.Equate["FLAG_MASK"])
}

func opEqual(t *testing.T, expected, opcodes []Opcode) {
	assert := assert.New(t)

	assert.Equal(len(expected), len(opcodes))
	if len(expected) == len(opcodes) {
		for n := range len(expected) {
			assert.Equal(expected[n], opcodes[n])
		}
	}
}

func TestAssemblerInstructions(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"add b",
		"  ADC  C   ; upper case is fine",
		"",
		"; only a comment",
		"addhl bc",
		"inc16 hl",
		"ccf",
		"swap a",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	expected := []Opcode{
		{LineNo: 1, Words: []string{"add", "b"}, Kind: OPCODE_EXEC, Inst: INST_ADD, Target: TARGET_B},
		{LineNo: 2, Words: []string{"ADC", "C"}, Kind: OPCODE_EXEC, Inst: INST_ADC, Target: TARGET_C},
		{LineNo: 5, Words: []string{"addhl", "bc"}, Kind: OPCODE_EXEC, Inst: INST_ADD_HL, Target: TARGET_BC},
		{LineNo: 6, Words: []string{"inc16", "hl"}, Kind: OPCODE_EXEC, Inst: INST_INC16, Target: TARGET_HL},
		{LineNo: 7, Words: []string{"ccf"}, Kind: OPCODE_EXEC, Inst: INST_CCF, Target: TARGET_NONE},
		{LineNo: 8, Words: []string{"swap", "a"}, Kind: OPCODE_EXEC, Inst: INST_SWAP, Target: TARGET_A},
	}

	opEqual(t, expected, prog.Opcodes)
}

func TestAssemblerWidthDeferred(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	// Width mismatches are reported by Execute, not the assembler.
	prog, err := asm.Parse(strings.NewReader("add hl\naddhl b"))
	assert.NoError(err)
	assert.Equal(2, len(prog.Opcodes))
	assert.Equal(TARGET_HL, prog.Opcodes[0].Target)
	assert.Equal(TARGET_B, prog.Opcodes[1].Target)
}

func TestAssemblerSetExpect(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		".set a 250",
		".set hl $(0x10000 - 6)",
		".set b -1",
		".set f 0xff",
		".set flags zc",
		".expect a $(LINENO)",
		".expect flags -",
		".expect F $(FLAG_CARRY | FLAG_ZERO)",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	expected := []Opcode{
		{LineNo: 1, Words: []string{".set", "a", "250"}, Kind: OPCODE_SET, Target: TARGET_A, Name: "a", Value: 250},
		{LineNo: 2, Words: []string{".set", "hl", "65530"}, Kind: OPCODE_SET, Target: TARGET_HL, Name: "hl", Value: 65530},
		{LineNo: 3, Words: []string{".set", "b", "-1"}, Kind: OPCODE_SET, Target: TARGET_B, Name: "b", Value: 0xff},
		{LineNo: 4, Words: []string{".set", "f", "0xff"}, Kind: OPCODE_SET, Target: TARGET_NONE, Name: NAME_FLAGS, Value: 0xf0},
		{LineNo: 5, Words: []string{".set", "flags", "zc"}, Kind: OPCODE_SET, Target: TARGET_NONE, Name: NAME_FLAGS, Value: 0x90},
		{LineNo: 6, Words: []string{".expect", "a", "6"}, Kind: OPCODE_EXPECT, Target: TARGET_A, Name: "a", Value: 6},
		{LineNo: 7, Words: []string{".expect", "flags", "-"}, Kind: OPCODE_EXPECT, Target: TARGET_NONE, Name: NAME_FLAGS, Value: 0},
		{LineNo: 8, Words: []string{".expect", "F", "144"}, Kind: OPCODE_EXPECT, Target: TARGET_NONE, Name: NAME_FLAGS, Value: 0x90},
	}

	opEqual(t, expected, prog.Opcodes)
}

func TestAssemblerEquate(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("SEED", "0x10")
	asm.Predefine("SEED", "0x20")

	program := []string{
		".equ ACC a",
		".equ STEP 5",
		".set ACC SEED",
		".set b $(STEP * 2)",
		"add ACC",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal("a", asm.Equate["ACC"])
	assert.Equal("5", asm.Equate["STEP"])

	expected := []Opcode{
		{LineNo: 3, Words: []string{".set", "a", "0x20"}, Kind: OPCODE_SET, Target: TARGET_A, Name: "a", Value: 0x20},
		{LineNo: 4, Words: []string{".set", "b", "10"}, Kind: OPCODE_SET, Target: TARGET_B, Name: "b", Value: 10},
		{LineNo: 5, Words: []string{"add", "a"}, Kind: OPCODE_EXEC, Inst: INST_ADD, Target: TARGET_A},
	}

	opEqual(t, expected, prog.Opcodes)

	// Equates do not leak between parses.
	_, err = asm.Parse(strings.NewReader(".equ STEP 6"))
	assert.NoError(err)
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		program []string
		lineno  int
		err     error
	}){
		{[]string{"nop"}, 1, ErrInstructionInvalid},
		{[]string{"add"}, 1, ErrTargetMissing},
		{[]string{"add b c"}, 1, ErrOpcodeExtraArgs},
		{[]string{"ccf", "ccf a"}, 2, ErrOpcodeExtraArgs},
		{[]string{"add q"}, 1, ErrTargetInvalid},
		{[]string{".bogus 1"}, 1, ErrDirectiveInvalid},
		{[]string{".equ X"}, 1, ErrEquateSyntax},
		{[]string{".equ X 1", ".equ X 2"}, 2, ErrEquateDuplicate},
		{[]string{".equ LINENO 2"}, 1, ErrEquateDuplicate},
		{[]string{".set a"}, 1, ErrOpcodeValueMissing},
		{[]string{".set a 1 2"}, 1, ErrOpcodeExtraArgs},
		{[]string{".set a 256"}, 1, ErrValueRange},
		{[]string{".set hl 0x10000"}, 1, ErrValueRange},
		{[]string{".expect q 1"}, 1, ErrTargetInvalid},
		{[]string{".set a zz"}, 1, ErrParseNumber("zz")},
		{[]string{".expect flags zx"}, 1, ErrParseFlags("zx")},
		{[]string{".set a $(\"text\")"}, 1, ErrParseExpression("\"text\"")},
	}

	for _, entry := range table {
		asm := &Assembler{}
		text := strings.Join(entry.program, "\n")

		prog, err := asm.Parse(strings.NewReader(text))
		assert.Nil(prog, text)
		assert.True(errors.Is(err, entry.err), "%v: %v", text, err)

		var syntax ErrSyntax
		if assert.True(errors.As(err, &syntax), text) {
			assert.Equal(entry.lineno, syntax.LineNo, text)
		}
	}
}

func TestAssemblerBadExpression(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	_, err := asm.Parse(strings.NewReader("\n.set a $(1 +)"))
	assert.Error(err)

	var syntax ErrSyntax
	assert.True(errors.As(err, &syntax))
	assert.Equal(2, syntax.LineNo)
}
