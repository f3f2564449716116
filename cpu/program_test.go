package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProgram(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram([]byte("a+b[c-d]e.\n,"))

	expected := []Instruction{
		OP_INCREMENT,
		OP_LOOP_START,
		OP_DECREMENT,
		OP_LOOP_END,
		OP_OUTPUT,
		OP_INPUT,
	}
	assert.Equal(expected, prog.Instructions)
	assert.Equal(6, prog.Len())
	assert.Equal("+[-].,", prog.String())
}

func TestNewProgram_Empty(t *testing.T) {
	assert := assert.New(t)

	for _, source := range []string{"", "comment only", "\n\r\t"} {
		prog := NewProgram([]byte(source))
		assert.Equal(0, prog.Len(), source)
		assert.Equal("", prog.String(), source)

		_, ok := prog.Fetch(0)
		assert.False(ok, source)
	}
}

func TestNewProgram_Deterministic(t *testing.T) {
	assert := assert.New(t)

	source := []byte("++[>++++<-]>. this is a comment")

	prog1 := NewProgram(source)
	prog2 := NewProgram(source)
	assert.Equal(prog1.Instructions, prog2.Instructions)
}

func TestProgram_Fetch(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram([]byte("+-"))

	ins, ok := prog.Fetch(0)
	assert.True(ok)
	assert.Equal(OP_INCREMENT, ins)

	ins, ok = prog.Fetch(1)
	assert.True(ok)
	assert.Equal(OP_DECREMENT, ins)

	_, ok = prog.Fetch(2)
	assert.False(ok)

	_, ok = prog.Fetch(-1)
	assert.False(ok)
}

func TestProgram_Codes(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram([]byte("><+"))

	ips := []int{}
	codes := []Instruction{}
	for ip, ins := range prog.Codes() {
		ips = append(ips, ip)
		codes = append(codes, ins)
	}

	assert.Equal([]int{0, 1, 2}, ips)
	assert.Equal([]Instruction{OP_FORWARD, OP_BACKWARD, OP_INCREMENT}, codes)
}

func TestProgram_Codes_EarlyReturn(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram([]byte("+++++"))

	count := 0
	for range prog.Codes() {
		count++
		if count == 2 {
			break
		}
	}

	assert.Equal(2, count)
}

func TestProgram_Validate(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		source string
		ok     bool
		ip     int
		ins    Instruction
	}){
		{"", true, 0, 0},
		{"[]", true, 0, 0},
		{"[[-]>]", true, 0, 0},
		{"+[>[-[+]]<]", true, 0, 0},
		{"[", false, 0, OP_LOOP_START},
		{"]", false, 0, OP_LOOP_END},
		{"[[]", false, 0, OP_LOOP_START},
		{"[]]", false, 2, OP_LOOP_END},
		{"+][", false, 1, OP_LOOP_END},
		{"x[ comment ]]", false, 2, OP_LOOP_END},
	}

	for _, entry := range table {
		err := NewProgram([]byte(entry.source)).Validate()
		if entry.ok {
			assert.NoError(err, entry.source)
			continue
		}

		assert.ErrorIs(err, ErrBracketUnmatched, entry.source)

		var unmatched *ErrUnmatched
		if assert.True(errors.As(err, &unmatched), entry.source) {
			assert.Equal(entry.ip, unmatched.Ip, entry.source)
			assert.Equal(entry.ins, unmatched.Instruction, entry.source)
		}
	}
}

func FuzzProgram(f *testing.F) {
	f.Add([]byte("++[>++++<-]>."))
	f.Add([]byte("hello, world."))

	f.Fuzz(func(t *testing.T, source []byte) {
		assert := assert.New(t)

		prog := NewProgram(source)
		assert.LessOrEqual(prog.Len(), len(source))

		// The canonical form decodes to the same program.
		again := NewProgram([]byte(prog.String()))
		assert.Equal(prog.Instructions, again.Instructions)
		assert.Equal(prog.Len(), len(prog.String()))
	})
}
