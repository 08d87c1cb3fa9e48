// Command wrangle extracts the Z80 instruction database from one of the two
// layouts of instruction documentation page and writes it to stdout.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/davecgh/go-spew/spew"

	"github.com/apparentlymart/z80-meta/clr"
	"github.com/apparentlymart/z80-meta/curated"
	"github.com/apparentlymart/z80-meta/isa"
	"github.com/apparentlymart/z80-meta/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// the exit status of a run
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	logger.Clear()
	logger.SetEcho(stderr)
	defer logger.SetEcho(nil)

	flgs := flag.NewFlagSet("wrangle", flag.ContinueOnError)
	flgs.SetOutput(stderr)
	layoutName := flgs.String("layout", "", "layout of the input document (grid or blocks)")
	formatName := flgs.String("fmt", "json", "output format (json, text or go)")
	pkg := flgs.String("pkg", "z80", "package name of generated Go source")
	variable := flgs.String("var", "instructions", "variable name of generated Go source")
	dump := flgs.Bool("dump", false, "dump the instruction table to stderr")
	viz := flgs.String("memviz", "", "write a graph of the instruction table to file")
	flgs.Usage = func() {
		fmt.Fprintf(stderr, "usage: wrangle [options] input.html\n")
		flgs.PrintDefaults()
	}

	if err := flgs.Parse(args); err != nil {
		return exitUsage
	}

	if flgs.NArg() != 1 {
		flgs.Usage()
		return exitUsage
	}

	if *layoutName == "" {
		logger.Log(logger.Allow, "error", "-layout is required")
		return exitUsage
	}

	layout, err := clr.ParseLayout(*layoutName)
	if err != nil {
		logger.Log(logger.Allow, "error", err)
		return exitUsage
	}

	format, err := parseFormat(*formatName)
	if err != nil {
		logger.Log(logger.Allow, "error", err)
		return exitUsage
	}

	tab, err := loadTable(flgs.Arg(0), layout)
	if err != nil {
		logger.Log(logger.Allow, "error", err)
		return exitError
	}

	if *dump {
		dumper.Fdump(stderr, tab.Instructions())
	}

	if *viz != "" {
		if err := writeMemviz(*viz, tab.Instructions()); err != nil {
			logger.Log(logger.Allow, "error", err)
			return exitError
		}
	}

	// nothing reaches stdout unless the whole output has been produced
	var out bytes.Buffer
	if err := format.write(&out, tab, *pkg, *variable); err != nil {
		logger.Log(logger.Allow, "error", err)
		return exitError
	}
	if _, err := out.WriteTo(stdout); err != nil {
		logger.Log(logger.Allow, "error", err)
		return exitError
	}

	logger.Logf(logger.Allow, "wrangle", "number of instructions: %d", tab.Len())

	return exitOK
}

// the String() methods of the instruction types hide the fields
var dumper = spew.ConfigState{Indent: "  ", DisableMethods: true}

func writeMemviz(filename string, instructions []isa.Instruction) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}

	memviz.Map(f, &instructions)

	if err := f.Close(); err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	return nil
}
