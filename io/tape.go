package io

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"maps"
	"runtime"
)

const (
	NEWLINE = uint8(10) // Cell value of a line break.
	EOF     = uint8(0)  // Cell value read at end of input.
)

// Line terminators written for NEWLINE.
const (
	LF   = "\n"
	CRLF = "\r\n"
)

var _tape_defines = map[string]string{
	"NEWLINE": fmt.Sprintf("%d", NEWLINE),
	"EOF":     fmt.Sprintf("%d", EOF),
	"LF":      LF,
	"CRLF":    CRLF,
}

// Tape provides sequential byte I/O, wrapping an io.Reader for input
// and an io.Writer for output.
//
// Line breaks are normalized in both directions: carriage return and
// line feed are both read as NEWLINE, and NEWLINE is written as the
// LineEnding.
type Tape struct {
	Input      io.Reader // If nil, the tape is always at end of input.
	Output     io.Writer // If nil, output is discarded.
	LineEnding string    // If empty, the platform line terminator is used.

	Received int // Bytes read from Input.
	Sent     int // Values written to Output.
}

var _ Channel = (*Tape)(nil)

// Defines returns an iter of defines for the channel.
func (tc *Tape) Defines() iter.Seq2[string, string] {
	return maps.All(_tape_defines)
}

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// lineEnding returns the terminator written for NEWLINE.
func (tc *Tape) lineEnding() string {
	if len(tc.LineEnding) != 0 {
		return tc.LineEnding
	}

	if runtime.GOOS == "windows" {
		return CRLF
	}

	return LF
}

// Receive reads a single byte from the input stream.
// End of input is not an error, and is returned as EOF.
func (tc *Tape) Receive() (value uint8, err error) {
	if tc.Input == nil {
		value = EOF
		return
	}

	var one [1]byte
	_, err = io.ReadFull(tc.Input, one[:])
	if errors.Is(err, io.EOF) {
		value = EOF
		err = nil
		return
	}
	if err != nil {
		err = errors.Join(ErrChannelRead, err)
		return
	}

	tc.Received++

	value = one[0]
	if value == '\r' || value == '\n' {
		value = NEWLINE
	}

	return
}

// Send writes a single value to the output stream.
func (tc *Tape) Send(value uint8) (err error) {
	if tc.Output == nil {
		return
	}

	if value == NEWLINE {
		_, err = io.WriteString(tc.Output, tc.lineEnding())
	} else {
		_, err = tc.Output.Write([]byte{value})
	}
	if err != nil {
		err = errors.Join(ErrChannelWrite, err)
		return
	}

	tc.Sent++

	return
}
