package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/apparentlymart/z80-meta/isa"
)

// writeText writes one line per instruction, conditional instructions marked
// with a trailing asterisk.
func writeText(w io.Writer, tab *isa.Table) error {
	b := bufio.NewWriter(w)
	for _, ins := range tab.Instructions() {
		cond := ""
		if ins.IsConditional() {
			cond = " *"
		}
		fmt.Fprintf(b, "%s%s\n", ins, cond)
	}
	return b.Flush()
}
