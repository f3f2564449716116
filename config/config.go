// Package config loads bfvm settings from Starlark files.
//
// A configuration file is a Starlark program. After it executes, the
// following globals are read, if defined:
//
//	program     = "hello.b"  # program source file
//	input       = "-"        # tape input file, "-" is stdin
//	output      = "-"        # tape output file, "-" is stdout
//	line_ending = CRLF       # written for NEWLINE, defaults to the platform
//	strict      = True       # reject unmatched brackets
//	verbose     = False      # trace every instruction
//
// The emulator defines (TAPE_SIZE, NEWLINE, EOF, LF, CRLF) are
// predeclared.
package config

import (
	"errors"
	"io"
	"iter"
	"log"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	ErrConfig = errors.New(f("config"))
)

// ErrConfigType reports a global with the wrong Starlark type.
type ErrConfigType struct {
	Name string
	Want string
	Got  string
}

func (err *ErrConfigType) Error() string {
	return f("%v is %v, want %v", err.Name, err.Got, err.Want)
}

func (err *ErrConfigType) Unwrap() error {
	return ErrConfig
}

// Config is the runtime configuration of the bfvm command.
type Config struct {
	Program    string
	Input      string
	Output     string
	LineEnding string
	Strict     bool
	Verbose    bool
}

// Default returns the configuration used without a configuration file.
func Default() *Config {
	return &Config{
		Input:  "-",
		Output: "-",
	}
}

// predeclare converts defines to Starlark values.
// Integer defines become Ints, everything else is a String.
func predeclare(defines iter.Seq2[string, string]) (pred starlark.StringDict) {
	pred = starlark.StringDict{}
	if defines == nil {
		return
	}

	for key, str := range defines {
		value, err := strconv.ParseInt(str, 0, 64)
		if err == nil {
			pred[key] = starlark.MakeInt64(value)
		} else {
			pred[key] = starlark.String(str)
		}
	}

	return
}

// Load executes a Starlark configuration file, on top of the defaults.
func Load(in io.Reader, filename string, defines iter.Seq2[string, string]) (conf *Config, err error) {
	src, err := io.ReadAll(in)
	if err != nil {
		return
	}

	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", filename, msg)
		},
	}
	opts := syntax.FileOptions{}

	dict, err := starlark.ExecFileOptions(&opts, thread, filename, src, predeclare(defines))
	if err != nil {
		err = errors.Join(ErrConfig, err)
		return
	}

	conf = Default()

	strs := []struct {
		name  string
		value *string
	}{
		{"program", &conf.Program},
		{"input", &conf.Input},
		{"output", &conf.Output},
		{"line_ending", &conf.LineEnding},
	}
	for _, entry := range strs {
		err = getString(dict, entry.name, entry.value)
		if err != nil {
			conf = nil
			return
		}
	}

	bools := []struct {
		name  string
		value *bool
	}{
		{"strict", &conf.Strict},
		{"verbose", &conf.Verbose},
	}
	for _, entry := range bools {
		err = getBool(dict, entry.name, entry.value)
		if err != nil {
			conf = nil
			return
		}
	}

	return
}

func getString(dict starlark.StringDict, name string, value *string) (err error) {
	st_value, ok := dict[name]
	if !ok {
		return
	}

	st_str, ok := st_value.(starlark.String)
	if !ok {
		err = &ErrConfigType{Name: name, Want: "string", Got: st_value.Type()}
		return
	}

	*value = st_str.GoString()
	return
}

func getBool(dict starlark.StringDict, name string, value *bool) (err error) {
	st_value, ok := dict[name]
	if !ok {
		return
	}

	st_bool, ok := st_value.(starlark.Bool)
	if !ok {
		err = &ErrConfigType{Name: name, Want: "bool", Got: st_value.Type()}
		return
	}

	*value = bool(st_bool)
	return
}
