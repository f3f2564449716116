package cpu

import (
	"errors"

	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrIpEmpty          = errors.New(f("ip empty"))
	ErrPointerRange     = errors.New(f("data pointer out of range"))
	ErrBracketUnmatched = errors.New(f("bracket unmatched"))
	ErrChannelInvalid   = errors.New(f("channel invalid"))

	// Instruction decode errors
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// ErrInstruction annotates an execution error with the failing instruction.
type ErrInstruction Instruction

func (ei ErrInstruction) Error() string {
	return f("instruction '%v'", Instruction(ei).String())
}

func (ei ErrInstruction) Is(err error) (ok bool) {
	_, ok = err.(ErrInstruction)
	return
}

// ErrUnmatched locates a loop bracket without a partner.
type ErrUnmatched struct {
	Ip          int
	Instruction Instruction
}

func (err *ErrUnmatched) Error() string {
	return f("ip %d '%v' unmatched", err.Ip, err.Instruction.String())
}

func (err *ErrUnmatched) Unwrap() error {
	return ErrBracketUnmatched
}
