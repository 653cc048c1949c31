package emulator

import (
	"errors"

	"github.com/ezrec/sm83/translate"
)

var f = translate.From

var (
	ErrExpectFailed = errors.New(f("expectation failed"))
	ErrRegister     = errors.New(f("register unknown"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrExpect reports a .expect mismatch.
type ErrExpect struct {
	Name string
	Want uint16
	Got  uint16
}

func (err *ErrExpect) Error() string {
	return f("%v is 0x%02x, expected 0x%02x", err.Name, err.Got, err.Want)
}

func (err *ErrExpect) Unwrap() error {
	return ErrExpectFailed
}
