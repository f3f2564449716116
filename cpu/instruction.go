// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// Instruction is one of the eight significant source bytes.
type Instruction int

//go:generate go tool stringer -linecomment -type=Instruction
const (
	OP_FORWARD    = Instruction(0) // >
	OP_BACKWARD   = Instruction(1) // <
	OP_INCREMENT  = Instruction(2) // +
	OP_DECREMENT  = Instruction(3) // -
	OP_OUTPUT     = Instruction(4) // .
	OP_INPUT      = Instruction(5) // ,
	OP_LOOP_START = Instruction(6) // [
	OP_LOOP_END   = Instruction(7) // ]
)

// Decode maps a source byte to its instruction.
// Bytes outside of the instruction set are comments, and return !ok.
func Decode(b byte) (ins Instruction, ok bool) {
	ok = true

	switch b {
	case '>':
		ins = OP_FORWARD
	case '<':
		ins = OP_BACKWARD
	case '+':
		ins = OP_INCREMENT
	case '-':
		ins = OP_DECREMENT
	case '.':
		ins = OP_OUTPUT
	case ',':
		ins = OP_INPUT
	case '[':
		ins = OP_LOOP_START
	case ']':
		ins = OP_LOOP_END
	default:
		ok = false
	}

	return
}

// Byte returns the source byte of the instruction.
func (ins Instruction) Byte() byte {
	if !ins.Valid() {
		return 0
	}

	return ins.String()[0]
}

// Valid returns true if the instruction is one of the eight defined.
func (ins Instruction) Valid() bool {
	return ins >= OP_FORWARD && ins <= OP_LOOP_END
}

// Bracket returns true for the loop control instructions.
func (ins Instruction) Bracket() bool {
	return ins == OP_LOOP_START || ins == OP_LOOP_END
}

// UsesCell returns true if the instruction reads or writes the cell
// under the data pointer.
func (ins Instruction) UsesCell() bool {
	return ins != OP_FORWARD && ins != OP_BACKWARD
}
