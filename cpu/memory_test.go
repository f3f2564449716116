package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_Reset(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	mem.Pointer = 5
	mem.Increment()
	mem.Reset()

	assert.Equal(0, mem.Pointer)
	assert.Equal(uint8(0), mem.Cell[5])
	assert.Equal(TAPE_SIZE, len(mem.Cell))
	assert.Equal(30720, TAPE_SIZE)
}

func TestMemory_Wrap(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	for v := range 256 {
		mem.SetValue(uint8(v))

		for range 256 {
			mem.Increment()
		}
		assert.Equal(uint8(v), mem.Value())

		mem.Decrement()
		mem.Increment()
		assert.Equal(uint8(v), mem.Value())

		mem.Increment()
		mem.Decrement()
		assert.Equal(uint8(v), mem.Value())
	}

	mem.SetValue(0)
	mem.Decrement()
	assert.Equal(uint8(255), mem.Value())
	mem.Increment()
	assert.Equal(uint8(0), mem.Value())
}

func TestMemory_Move(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	mem.MoveForward()
	mem.Increment()
	assert.Equal(1, mem.Pointer)
	assert.Equal(uint8(1), mem.Cell[1])
	assert.Equal(uint8(0), mem.Cell[0])

	mem.MoveBackward()
	assert.Equal(0, mem.Pointer)
	assert.True(mem.InRange())

	// Motion itself is never checked.
	mem.MoveBackward()
	assert.Equal(-1, mem.Pointer)
	assert.False(mem.InRange())

	mem.Pointer = TAPE_SIZE - 1
	assert.True(mem.InRange())
	mem.MoveForward()
	assert.False(mem.InRange())
}
