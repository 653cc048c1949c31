package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/sm83/cpu"
	"github.com/ezrec/sm83/emulator"
)

func TestRun(t *testing.T) {
	assert := assert.New(t)

	opt := &options{defines: []string{"SEED=250", "FIVE=5"}}

	listing := strings.Join([]string{
		".set a SEED",
		".set b FIVE",
		"add b",
		"add b",
		".expect a 4",
		".expect flags hc",
	}, "\n")

	out := &bytes.Buffer{}
	err := opt.run(out, "test", strings.NewReader(listing))
	assert.NoError(err)
	assert.Equal("test: a:04 b:05 c:00 d:00 e:00 h:00 l:00 f:znHC (2 instructions)\n", out.String())
}

func TestRun_Errors(t *testing.T) {
	assert := assert.New(t)

	opt := &options{}

	err := opt.run(&bytes.Buffer{}, "bad", strings.NewReader("nop"))
	assert.True(errors.Is(err, cpu.ErrInstructionInvalid))
	assert.True(strings.HasPrefix(err.Error(), "bad: "))

	err = opt.run(&bytes.Buffer{}, "width", strings.NewReader("add hl"))
	assert.True(errors.Is(err, cpu.ErrInvalidOperandWidth))

	err = opt.run(&bytes.Buffer{}, "expect", strings.NewReader(".set a 1\n.expect a 2"))
	assert.True(errors.Is(err, emulator.ErrExpectFailed))
}
