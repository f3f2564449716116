// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"iter"
	"log"

	"github.com/ezrec/bfvm/cpu"
	"github.com/ezrec/bfvm/internal"
	"github.com/ezrec/bfvm/io"
)

// HELLO_WORLD is the built-in demonstration program.
const HELLO_WORLD = "++++++++++[>+++++++>++++++++++>+++>+<<<<-]>++.>+.+++++++..+++.>++.<<+++++++++++++++.>.+++.------.--------.>+.>."

// Emulator state. CPU + tape IO channel.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	Strict   bool // If set, unmatched brackets are an error.
	*cpu.Cpu      // Reference to the CPU simulation.

	Tape io.Tape // Tape IO channel.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(),
	}

	emu.Cpu.SetChannel(&emu.Tape)

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(
		emu.Cpu.Defines(),
		emu.Tape.Defines(),
	)
}

// Load decodes the program source.
// The emulator must be Reset before it is run.
func (emu *Emulator) Load(source []byte) {
	emu.Cpu.Program = cpu.NewProgram(source)

	if emu.Verbose {
		log.Printf("emulator: loaded %d instructions", emu.Cpu.Program.Len())
	}
}

// Reset the emulator state.
// In strict mode, a program with unmatched brackets is rejected.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Strict = emu.Strict

	if emu.Strict {
		err = emu.Cpu.Program.Validate()
		if err != nil {
			return
		}
	}

	err = emu.Cpu.Reset()
	if err != nil {
		return
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() int {
	return emu.Cpu.Ip
}

// Code returns the current instruction, if any.
func (emu *Emulator) Code() (ins cpu.Instruction, ok bool) {
	return emu.Cpu.Program.Fetch(emu.Cpu.Ip)
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	ip := emu.Cpu.Ip
	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: ip, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrIpEmpty) {
		err = nil
		done = true
		return
	}

	return
}

// Run ticks the emulator until the program halts or fails.
func (emu *Emulator) Run() (err error) {
	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	if emu.Verbose {
		log.Printf("emulator: halted after %d ticks, %d in, %d out",
			emu.Ticks(), emu.Tape.Received, emu.Tape.Sent)
	}

	return
}
