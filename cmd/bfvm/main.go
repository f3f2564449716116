// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/bfvm/config"
	"github.com/ezrec/bfvm/emulator"
)

func main() {
	var compile string
	var conffile string
	var input string
	var output string
	var strict bool
	var verbose bool

	flag.StringVar(&compile, "c", "", "program file to run (default: hello world)")
	flag.StringVar(&conffile, "f", "", ".star configuration file")
	flag.StringVar(&input, "i", "-", "Tape input")
	flag.StringVar(&output, "o", "-", "Tape output")
	flag.BoolVar(&strict, "strict", false, "Reject unmatched brackets")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	emu := emulator.NewEmulator()

	conf := config.Default()
	if len(conffile) != 0 {
		inf, err := os.Open(conffile)
		if err != nil {
			log.Fatalf("%v: %v", conffile, err)
		}
		conf, err = config.Load(inf, conffile, emu.Defines())
		inf.Close()
		if err != nil {
			log.Fatalf("%v: %v", conffile, err)
		}
	}

	// Flags override the configuration file.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "c":
			conf.Program = compile
		case "i":
			conf.Input = input
		case "o":
			conf.Output = output
		case "strict":
			conf.Strict = strict
		case "v":
			conf.Verbose = verbose
		}
	})

	source := []byte(emulator.HELLO_WORLD)
	if len(conf.Program) != 0 {
		var err error
		source, err = os.ReadFile(conf.Program)
		if err != nil {
			log.Fatalf("%v: %v", conf.Program, err)
		}
	}

	emu.Verbose = conf.Verbose
	emu.Strict = conf.Strict
	emu.Tape.LineEnding = conf.LineEnding

	if conf.Input == "-" {
		emu.Tape.Input = os.Stdin
	} else {
		inf, err := os.Open(conf.Input)
		if err != nil {
			log.Fatalf("%v: %v", conf.Input, err)
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	if conf.Output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(conf.Output)
		if err != nil {
			log.Fatalf("%v: %v", conf.Output, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	emu.Load(source)

	err := emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	err = emu.Run()
	if err != nil {
		log.Fatal(err)
	}
}
