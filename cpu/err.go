package cpu

import (
	"errors"

	"github.com/ezrec/sm83/translate"
)

var f = translate.From

var (
	// Execution errors
	ErrInvalidOperandWidth    = errors.New(f("invalid operand width"))
	ErrUnsupportedInstruction = errors.New(f("unsupported instruction"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrDirectiveInvalid   = errors.New(f("directive invalid"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrTargetMissing      = errors.New(f("target missing"))
	ErrTargetInvalid      = errors.New(f("target invalid"))
	ErrValueRange         = errors.New(f("value out of range"))
)

// ErrOperandWidth is returned when an operand target does not have the
// width an instruction requires.
type ErrOperandWidth struct {
	Target Target
	Want   Width
}

func (err *ErrOperandWidth) Error() string {
	return f("operand %v is not %v", err.Target, err.Want)
}

func (err *ErrOperandWidth) Unwrap() error {
	return ErrInvalidOperandWidth
}

// ErrInstruction is returned for an instruction with no handler.
type ErrInstruction Instruction

func (ei ErrInstruction) Error() string {
	return f("instruction %v has no handler", Instruction(ei))
}

func (ei ErrInstruction) Is(err error) bool {
	return err == ErrUnsupportedInstruction
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrParseFlags string

func (err ErrParseFlags) Error() string {
	return f("'%v' is not a flag set", string(err))
}
