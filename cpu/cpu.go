package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/bfvm/io"
)

// Channel is an I/O channel interface.
type Channel io.Channel

var _cpu_defines = map[string]string{
	"TAPE_SIZE": fmt.Sprintf("%d", TAPE_SIZE),
}

// Cpu is the simulation context for the tape machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.
	Strict  bool // Set to fail on unmatched brackets, instead of falling through.

	Program *Program // Program being executed.
	Memory  Memory   // Data tape.
	Ip      int      // Current instruction pointer.

	Ticks int // Instructions executed since reset.

	channel Channel // IO channel.
}

// NewCpu creates a new CPU with an empty program.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Program: &Program{},
	}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	ins := "-"
	if code, ok := cpu.Program.Fetch(cpu.Ip); ok {
		ins = code.String()
	}

	cell := "--"
	if cpu.Memory.InRange() {
		cell = fmt.Sprintf("%02X", cpu.Memory.Value())
	}

	text += fmt.Sprintf("% 5s: %d\n", "ip", cpu.Ip)
	text += fmt.Sprintf("% 5s: %v\n", "op", ins)
	text += fmt.Sprintf("% 5s: %d\n", "ptr", cpu.Memory.Pointer)
	text += fmt.Sprintf("% 5s: %v\n", "cell", cell)
	text += fmt.Sprintf("% 5s: %d\n", "ticks", cpu.Ticks)

	return
}

// Reset the CPU state.
// - Clears the tape, and returns the data pointer to the first cell.
// - Sets the IP to the start of the program.
// - Zeros the tick counter.
// - Rewinds the IO channel.
func (cpu *Cpu) Reset() (err error) {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Memory.Reset()
	cpu.Ip = 0
	cpu.Ticks = 0

	if cpu.channel != nil {
		cpu.channel.Rewind()
	}

	return
}

// SetChannel sets the I/O channel.
func (cpu *Cpu) SetChannel(channel Channel) {
	cpu.channel = channel
}

// GetChannel gets the I/O channel.
func (cpu *Cpu) GetChannel() (channel Channel, err error) {
	if cpu.channel == nil {
		err = ErrChannelInvalid
		return
	}

	channel = cpu.channel
	return
}

// Fetch fetches the next instruction to execute.
// Once the IP has run off the end of the program, ErrIpEmpty is returned.
func (cpu *Cpu) Fetch() (ins Instruction, err error) {
	ins, ok := cpu.Program.Fetch(cpu.Ip)
	if !ok {
		err = ErrIpEmpty
		return
	}

	return
}

// Tick executes a single CPU instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	ins, err := cpu.Fetch()
	if err != nil {
		return
	}

	err = cpu.Execute(ins)
	if err != nil {
		return
	}

	return
}

// Execute executes a single decoded instruction at the current IP.
func (cpu *Cpu) Execute(ins Instruction) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrInstruction(ins), err)
		}
	}()

	mem := &cpu.Memory

	if ins.UsesCell() && !mem.InRange() {
		err = ErrPointerRange
		return
	}

	if cpu.Verbose {
		if ins.UsesCell() {
			log.Printf("%05d: %v [%d]=%d", cpu.Ip, ins, mem.Pointer, mem.Value())
		} else {
			log.Printf("%05d: %v [%d]", cpu.Ip, ins, mem.Pointer)
		}
	}

	next_ip := cpu.Ip + 1

	switch ins {
	case OP_FORWARD:
		mem.MoveForward()
	case OP_BACKWARD:
		mem.MoveBackward()
	case OP_INCREMENT:
		mem.Increment()
	case OP_DECREMENT:
		mem.Decrement()
	case OP_OUTPUT:
		var channel Channel
		channel, err = cpu.GetChannel()
		if err != nil {
			return
		}
		err = channel.Send(mem.Value())
		if err != nil {
			return
		}
	case OP_INPUT:
		var channel Channel
		channel, err = cpu.GetChannel()
		if err != nil {
			return
		}
		var value uint8
		value, err = channel.Receive()
		if err != nil {
			return
		}
		mem.SetValue(value)
	case OP_LOOP_START:
		if mem.Value() == 0 {
			target, ok := cpu.scanForward(cpu.Ip)
			if ok {
				next_ip = target
			} else if cpu.Strict {
				err = &ErrUnmatched{Ip: cpu.Ip, Instruction: ins}
				return
			}
		}
	case OP_LOOP_END:
		if mem.Value() != 0 {
			target, ok := cpu.scanBackward(cpu.Ip)
			if ok {
				next_ip = target
			} else if cpu.Strict {
				err = &ErrUnmatched{Ip: cpu.Ip, Instruction: ins}
				return
			}
		}
	default:
		err = ErrInstructionInvalid
		return
	}

	cpu.Ip = next_ip
	cpu.Ticks++

	return
}
