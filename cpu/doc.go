// Package cpu implements the tape machine for the eight instruction
// bfvm language.
//
// The CPU consists of an instruction pointer (Ip) into a decoded
// Program, a 30K cell Memory tape with its data pointer, and a single
// byte-wide I/O channel. Loops are executed by scanning the program
// for the matching bracket each time a loop boundary is crossed, so
// no jump table or call stack is needed.
package cpu
