package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.True(s.Empty())

	s.Push(12)
	assert.False(s.Empty())
	assert.Equal(1, len(s.Data))
	assert.Equal(12, s.Data[0])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(3)
	s.Push(7)

	val, ok := s.Pop()
	assert.True(ok)
	assert.Equal(7, val)
	assert.Equal(1, len(s.Data))

	val, ok = s.Pop()
	assert.True(ok)
	assert.Equal(3, val)
	assert.Equal(0, len(s.Data))
}

func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	val, ok := s.Pop()
	assert.False(ok)
	assert.Equal(0, val)
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(3)
	s.Push(7)

	val, ok := s.Peek()
	assert.True(ok)
	assert.Equal(7, val)
	assert.Equal(2, len(s.Data))
}

func TestStack_Reset(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(3)
	s.Push(7)

	s.Reset()
	assert.True(s.Empty())

	s.Reset()
	assert.True(s.Empty())
}
