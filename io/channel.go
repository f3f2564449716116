// Package io provides the byte channels between the bfvm CPU and the
// outside world.
package io

// Channel defines the interface for the CPU's I/O channel.
// Channels operate one byte at a time.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive reads a single byte from the channel.
	Receive() (value uint8, err error)
	// Send writes a single byte to the channel.
	Send(value uint8) error
}
