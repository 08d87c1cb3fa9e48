package clr

import (
	"bufio"
	"io"
	"strings"

	"github.com/apparentlymart/z80-meta/curated"
	"github.com/apparentlymart/z80-meta/isa"
)

// maximum length of a line in the documentation
const maxLineLength = 1024 * 1024

// scan works through every line of r, in order, appending completed
// instructions to a new table. S is the parse state of the layout: each call
// to step consumes one line and returns the new state, and an instruction if
// the line completed one. The finish function checks the final state.
func scan[S any](r io.Reader, state S, step func(S, string) (S, *isa.Instruction, error), finish func(S) error) (*isa.Table, error) {
	tab := isa.NewTable()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	n := 0
	for sc.Scan() {
		n++

		var ins *isa.Instruction
		var err error

		state, ins, err = step(state, strings.TrimSpace(sc.Text()))
		if err != nil {
			return nil, curated.Errorf(AtLine, n, err)
		}

		if ins != nil {
			if err := tab.Append(*ins); err != nil {
				return nil, curated.Errorf(AtLine, n, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, curated.Errorf(AtLine, n+1, err)
	}

	if err := finish(state); err != nil {
		return nil, curated.Errorf(AtLine, n, err)
	}

	return tab, nil
}
