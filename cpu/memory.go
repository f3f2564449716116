package cpu

const (
	TAPE_SIZE = 30 * 1024 // Number of cells on the data tape.
)

// Memory is the data tape and its pointer.
//
// Pointer motion is never checked. A pointer outside of the tape
// is only detected when a cell is accessed, see InRange.
type Memory struct {
	Cell    [TAPE_SIZE]uint8 // Data cells.
	Pointer int              // Data pointer.
}

// Reset clears all cells and returns the pointer to the first cell.
func (mem *Memory) Reset() {
	clear(mem.Cell[:])
	mem.Pointer = 0
}

// InRange returns true if the pointer addresses a cell on the tape.
func (mem *Memory) InRange() bool {
	return mem.Pointer >= 0 && mem.Pointer < len(mem.Cell)
}

func (mem *Memory) MoveForward() {
	mem.Pointer++
}

func (mem *Memory) MoveBackward() {
	mem.Pointer--
}

// Increment the current cell, wrapping from 255 to 0.
func (mem *Memory) Increment() {
	mem.Cell[mem.Pointer]++
}

// Decrement the current cell, wrapping from 0 to 255.
func (mem *Memory) Decrement() {
	mem.Cell[mem.Pointer]--
}

// Value returns the current cell.
func (mem *Memory) Value() uint8 {
	return mem.Cell[mem.Pointer]
}

// SetValue replaces the current cell.
func (mem *Memory) SetValue(value uint8) {
	mem.Cell[mem.Pointer] = value
}
