package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"

	"github.com/apparentlymart/z80-meta/curated"
	"github.com/apparentlymart/z80-meta/isa"
)

// writeGo writes Go source declaring the table as a slice of isa.Instruction.
func writeGo(w io.Writer, tab *isa.Table, pkg string, variable string) error {
	var b bytes.Buffer

	b.WriteString("// Code generated by wrangle. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", makeIdentPackage(pkg))
	b.WriteString("import \"github.com/apparentlymart/z80-meta/isa\"\n\n")
	fmt.Fprintf(&b, "var %s = []isa.Instruction{\n", makeIdentVariable(variable))
	for _, ins := range tab.Instructions() {
		b.WriteString("{\n")
		fmt.Fprintf(&b, "OpcodeBytes: %#v,\n", ins.OpcodeBytes)
		if ins.Undocumented {
			b.WriteString("Undocumented: true,\n")
		}
		b.WriteString("Flags: isa.Flags{")
		for i, c := range ins.Flags {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%q", rune(c))
		}
		b.WriteString("},\n")
		fmt.Fprintf(&b, "ByteCount: %d,\n", ins.ByteCount)
		fmt.Fprintf(&b, "ClockCountTaken: %d,\n", ins.ClockCountTaken)
		fmt.Fprintf(&b, "ClockCountNotTaken: %d,\n", ins.ClockCountNotTaken)
		fmt.Fprintf(&b, "Description: %q,\n", ins.Description)
		fmt.Fprintf(&b, "MnemonicText: %q,\n", ins.MnemonicText)
		b.WriteString("},\n")
	}
	b.WriteString("}\n")

	formatted, err := format.Source(b.Bytes())
	if err != nil {
		return curated.Errorf("go source: %v", err)
	}

	_, err = w.Write(formatted)
	return err
}
