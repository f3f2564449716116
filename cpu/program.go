package cpu

import (
	"iter"
	"strings"
)

// Program is the decoded, comment-free instruction sequence.
// It is not modified after NewProgram.
type Program struct {
	Instructions []Instruction
}

// NewProgram decodes a program from its source bytes, dropping comments.
func NewProgram(source []byte) (prog *Program) {
	prog = &Program{}

	for _, b := range source {
		ins, ok := Decode(b)
		if ok {
			prog.Instructions = append(prog.Instructions, ins)
		}
	}

	return
}

// Len returns the number of instructions in the program.
func (prog *Program) Len() int {
	return len(prog.Instructions)
}

// Fetch returns the instruction at ip.
// Past the end of the program, !ok is returned.
func (prog *Program) Fetch(ip int) (ins Instruction, ok bool) {
	if ip < 0 || ip >= len(prog.Instructions) {
		return
	}

	return prog.Instructions[ip], true
}

// Codes returns an iterator over the instruction pointer and instruction pairs.
func (prog *Program) Codes() iter.Seq2[int, Instruction] {
	return func(yield func(ip int, ins Instruction) bool) {
		for ip, ins := range prog.Instructions {
			if !yield(ip, ins) {
				return
			}
		}
	}
}

// String returns the canonical source of the program.
func (prog *Program) String() string {
	var sb strings.Builder

	sb.Grow(len(prog.Instructions))
	for _, ins := range prog.Instructions {
		sb.WriteByte(ins.Byte())
	}

	return sb.String()
}

// Validate checks that every loop bracket has a partner.
// The first unmatched bracket is returned as an *ErrUnmatched.
func (prog *Program) Validate() (err error) {
	var open Stack

	for ip, ins := range prog.Codes() {
		switch ins {
		case OP_LOOP_START:
			open.Push(ip)
		case OP_LOOP_END:
			_, ok := open.Pop()
			if !ok {
				err = &ErrUnmatched{Ip: ip, Instruction: ins}
				return
			}
		}
	}

	// Report the outermost unclosed loop.
	if !open.Empty() {
		err = &ErrUnmatched{Ip: open.Data[0], Instruction: OP_LOOP_START}
	}

	return
}
