// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

func init() {
	maps.Copy(sysEquate, _cpu_defines)
}

// Assembler is a single pass assembler for SM83 ALU listings.
//
// Each line holds one statement:
//
//	add b               ; instruction and operand target
//	ccf                 ; operand-less instruction
//	.equ NAME VALUE     ; equate
//	.set hl 0x1234      ; preset a register, pair, or 'f'
//	.set flags zc       ; preset the flag letters
//	.expect a $(8 - 2)  ; check a register, pair, or 'f'
//	.expect flags -     ; check that no flag is set
//
// $(...) is evaluated as a starlark expression with the equates in scope.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value int64, err error) {
	invert := false
	if strings.HasPrefix(word, "~") {
		invert = true
		word = word[1:]
	}

	value, err = strconv.ParseInt(word, 0, 33)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if invert {
		value = ^value
	}

	return
}

// valueFit checks that value fits in the width, and returns it as the
// unsigned bit pattern of that width.
func valueFit(value int64, width Width) (out uint16, err error) {
	switch width {
	case WIDTH_8:
		if value < -0x80 || value > 0xff {
			err = ErrValueRange
			return
		}
		out = uint16(uint8(value))
	case WIDTH_16:
		if value < -0x8000 || value > 0xffff {
			err = ErrValueRange
			return
		}
		out = uint16(value)
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, _err := asm.valueOf(str)
		if _err != nil {
			// Ignore non-integer equates. They may be register names.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

var reParen = regexp.MustCompile(`\$\([^\$]*\)`)

// parseLine expands a single line into words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	line = reParen.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#v", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	return
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Opcode = asm.Opcode[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// parseRegValue parses the NAME VALUE arguments of .set and .expect.
func (asm *Assembler) parseRegValue(op *Opcode, words []string) (err error) {
	if len(words) < 2 {
		err = ErrOpcodeValueMissing
		return
	}
	if len(words) > 2 {
		err = ErrOpcodeExtraArgs
		return
	}

	name := strings.ToLower(words[0])
	op.Target = TARGET_NONE

	switch name {
	case "flags":
		var fl Flags
		fl, err = ParseFlags(words[1])
		if err != nil {
			return
		}
		op.Name = NAME_FLAGS
		op.Value = uint16(fl.Byte())
		return
	case NAME_FLAGS:
		op.Name = NAME_FLAGS
	default:
		target, ok := ParseTarget(name)
		if !ok {
			err = ErrTargetInvalid
			return
		}
		op.Name = name
		op.Target = target
	}

	width := WIDTH_8
	if op.Target != TARGET_NONE {
		width, _ = op.Target.Width()
	}

	value, err := asm.valueOf(words[1])
	if err != nil {
		return
	}

	op.Value, err = valueFit(value, width)
	if err != nil {
		return
	}

	if op.Name == NAME_FLAGS {
		op.Value &= uint16(FLAG_MASK)
	}

	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	op := Opcode{LineNo: lineno, Words: words, Target: TARGET_NONE}

	switch words[0] {
	case ".set":
		op.Kind = OPCODE_SET
		err = asm.parseRegValue(&op, words[1:])
	case ".expect":
		op.Kind = OPCODE_EXPECT
		err = asm.parseRegValue(&op, words[1:])
	default:
		if strings.HasPrefix(words[0], ".") {
			err = ErrDirectiveInvalid
			return
		}

		inst, ok := ParseInstruction(strings.ToLower(words[0]))
		if !ok {
			err = ErrInstructionInvalid
			return
		}
		op.Kind = OPCODE_EXEC
		op.Inst = inst

		_, has_operand := inst.Operand()
		switch {
		case !has_operand && len(words) > 1:
			err = ErrOpcodeExtraArgs
		case !has_operand:
			// pass
		case len(words) < 2:
			err = ErrTargetMissing
		case len(words) > 2:
			err = ErrOpcodeExtraArgs
		default:
			op.Target, ok = ParseTarget(strings.ToLower(words[1]))
			if !ok {
				err = ErrTargetInvalid
			}
		}
	}

	if err != nil {
		return
	}

	asm.Opcode = append(asm.Opcode, op)

	return
}
