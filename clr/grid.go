package clr

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/apparentlymart/z80-meta/curated"
	"github.com/apparentlymart/z80-meta/isa"
	"github.com/apparentlymart/z80-meta/logger"
)

var (
	// <table title="ED">
	gridTable = regexp.MustCompile(`^<table title="(.*)">$`)

	// <th>0</th>
	gridRow = regexp.MustCompile(`^<th>(.*)</th>$`)

	// <td class="un" axis="++V+++|2|8|The contents of a are negated.">neg</td>
	//
	// cells with any other class (z180 only instructions, etc.) are not
	// instruction cells but still take up a column
	gridCell = regexp.MustCompile(`^<td (class="un" )?axis="(.*)">(.*)</td>$`)
)

const (
	cellsPerRow = 16

	// flags, byte count, cycle count, description
	cellFields = 4
)

type gridStage int

const (
	awaitingTable gridStage = iota
	awaitingRow
	inRow
)

// gridCursor is the position of the grid reader in the document.
type gridCursor struct {
	stage  gridStage
	prefix isa.OpcodeBytes
	high   int

	// low nybble of the next cell in the row. every cell counts, including
	// empty ones, otherwise the opcodes after a gap would be wrong
	low int
}

// ReadGrid reads a document in the grid layout.
func ReadGrid(r io.Reader) (*isa.Table, error) {
	return scan(r, gridCursor{}, gridCursor.advance, gridCursor.finish)
}

func (c gridCursor) advance(line string) (gridCursor, *isa.Instruction, error) {
	if m := gridTable.FindStringSubmatch(line); m != nil {
		prefix, err := isa.ParsePrefix(m[1])
		if err != nil {
			return c, nil, mismatch("table title (%q) is not an opcode prefix", m[1])
		}
		return gridCursor{stage: awaitingRow, prefix: prefix}, nil, nil
	}

	if m := gridRow.FindStringSubmatch(line); m != nil {
		if c.stage == awaitingTable {
			return c, nil, mismatch("row heading (%q) outside of a table", m[1])
		}
		high, err := strconv.ParseUint(m[1], 16, 8)
		if err != nil || len(m[1]) != 1 {
			return c, nil, mismatch("row heading (%q) is not a hex digit", m[1])
		}
		return gridCursor{stage: inRow, prefix: c.prefix, high: int(high)}, nil, nil
	}

	if !strings.HasPrefix(line, "<td") {
		return c, nil, nil
	}

	m := gridCell.FindStringSubmatch(line)

	if c.stage != inRow {
		if m != nil {
			return c, nil, mismatch("instruction cell outside of a row")
		}
		return c, nil, nil
	}

	if c.low >= cellsPerRow {
		return c, nil, mismatch("more than %d cells in row %X", cellsPerRow, c.high)
	}
	low := c.low
	c.low++

	if m == nil {
		return c, nil, nil
	}

	ins, err := gridInstruction(isa.GridOpcode(c.prefix, c.high, low), m[1] != "", m[2], m[3])
	return c, ins, err
}

func (c gridCursor) finish() error {
	if c.stage == awaitingTable {
		return mismatch("no opcode tables found")
	}
	return nil
}

func gridInstruction(opcode isa.OpcodeBytes, undocumented bool, axis string, text string) (*isa.Instruction, error) {
	fields := strings.Split(axis, "|")
	if len(fields) != cellFields {
		return nil, mismatch("cell for %s has %d fields, wanted %d", opcode, len(fields), cellFields)
	}

	flags, err := isa.ParseFlagField(fields[0])
	if err != nil {
		return nil, curated.Errorf("%s: %v", opcode, err)
	}
	byteCount, err := isa.ParseCount("byte count", fields[1])
	if err != nil {
		return nil, curated.Errorf("%s: %v", opcode, err)
	}
	clocks, err := isa.ParseClocks(fields[2])
	if err != nil {
		return nil, curated.Errorf("%s: %v", opcode, err)
	}

	ins := &isa.Instruction{
		OpcodeBytes:  opcode,
		Undocumented: undocumented,
		Flags:        flags,
		ByteCount:    byteCount,
		Description:  isa.StripOperandMarkup(fields[3]),
		MnemonicText: isa.StripOperandMarkup(text),
	}
	ins.SetClocks(clocks)

	if clocks.Split {
		logger.Logf(logger.Allow, "grid", "split clock count (%s) for %s (%s)", fields[2], opcode, ins.MnemonicText)
	}

	return ins, nil
}

func mismatch(detail string, args ...any) error {
	return curated.Errorf(StructuralMismatch, fmt.Sprintf(detail, args...))
}
