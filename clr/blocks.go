package clr

import (
	"io"
	"regexp"
	"strings"

	"github.com/apparentlymart/z80-meta/isa"
	"github.com/apparentlymart/z80-meta/logger"
)

// <td   class="undocumented"  >
var blockOpener = regexp.MustCompile(`<td\s+(?:class="(\w+)")?\s+>`)

type blockStage int

const (
	seekingBlock blockStage = iota
	awaitingMnemonic
	awaitingList
	awaitingLabel
	awaitingValue
	awaitingDescription
)

// blockField is a labelled entry of a definition block, in the order the
// entries appear.
type blockField int

const (
	fieldOpcode blockField = iota
	fieldBytes
	fieldCycles

	// one per flag, in isa.Flag order
	fieldCarry
	fieldSubtract
	fieldParityOverflow
	fieldHalfCarry
	fieldZero
	fieldSign

	numBlockFields
)

var blockLabels = [numBlockFields]string{
	fieldOpcode:         "Opcode",
	fieldBytes:          "Bytes",
	fieldCycles:         "Cycles",
	fieldCarry:          "C",
	fieldSubtract:       "N",
	fieldParityOverflow: "P/V",
	fieldHalfCarry:      "H",
	fieldZero:           "Z",
	fieldSign:           "S",
}

func (f blockField) String() string {
	return blockLabels[f]
}

func (f blockField) flag() isa.Flag {
	return isa.Flag(f - fieldCarry)
}

// blockCursor is the position of the block reader in the document, along with
// the instruction being built from the current block.
type blockCursor struct {
	stage blockStage
	field blockField
	ins   isa.Instruction

	// number of blocks completed
	blocks int
}

// ReadBlocks reads a document in the definition block layout.
func ReadBlocks(r io.Reader) (*isa.Table, error) {
	return scan(r, blockCursor{}, blockCursor.advance, blockCursor.finish)
}

func (c blockCursor) advance(line string) (blockCursor, *isa.Instruction, error) {
	switch c.stage {
	case seekingBlock:
		m := blockOpener.FindStringSubmatch(line)
		if m == nil || strings.Contains(line, "</td") {
			return c, nil, nil
		}
		return blockCursor{
			stage:  awaitingMnemonic,
			ins:    isa.Instruction{Undocumented: m[1] == "undocumented"},
			blocks: c.blocks,
		}, nil, nil

	case awaitingMnemonic:
		if strings.HasPrefix(line, "<a") {
			// a link to another table, not an instruction. the line might
			// still open the next block
			return blockCursor{blocks: c.blocks}.advance(line)
		}
		if line == "" {
			return c, nil, mismatch("expected instruction text, got an empty line")
		}
		c.ins.MnemonicText = isa.StripOperandMarkup(line)
		c.stage = awaitingList
		return c, nil, nil

	case awaitingList:
		if line != "<dl>" {
			return c, nil, mismatch("expected <dl> for %s, got %q", c.ins.MnemonicText, line)
		}
		c.stage = awaitingLabel
		c.field = fieldOpcode
		return c, nil, nil

	case awaitingLabel:
		want := "<dt>" + c.field.String() + "</dt>"
		if line != want {
			return c, nil, mismatch("expected %s for %s, got %q", want, c.ins.MnemonicText, line)
		}
		c.stage = awaitingValue
		return c, nil, nil

	case awaitingValue:
		value, err := definition(line, c.field.String())
		if err != nil {
			return c, nil, err
		}
		if err := c.store(value); err != nil {
			return c, nil, err
		}
		if c.field == fieldSign {
			c.stage = awaitingDescription
		} else {
			c.field++
			c.stage = awaitingLabel
		}
		return c, nil, nil

	case awaitingDescription:
		value, err := definition(line, "description")
		if err != nil {
			return c, nil, err
		}
		ins := c.ins
		ins.Description = isa.StripOperandMarkup(value)
		return blockCursor{blocks: c.blocks + 1}, &ins, nil
	}

	panic("unknown block reader stage")
}

// store the value of the current field in the instruction.
func (c *blockCursor) store(value string) error {
	var err error

	switch c.field {
	case fieldOpcode:
		c.ins.OpcodeBytes, err = isa.ParseOpcodeText(value)

	case fieldBytes:
		c.ins.ByteCount, err = isa.ParseCount("byte count", value)

	case fieldCycles:
		var clocks isa.Clocks
		clocks, err = isa.ParseClocks(value)
		if err == nil {
			c.ins.SetClocks(clocks)
			if clocks.Split {
				logger.Logf(logger.Allow, "blocks", "split clock count (%s) for %s (%s)", value, c.ins.OpcodeBytes, c.ins.MnemonicText)
			}
		}

	default:
		c.ins.Flags[c.field.flag()], err = isa.ParseFlagPhrase(value)
	}

	return err
}

func (c blockCursor) finish() error {
	if c.stage != seekingBlock {
		return mismatch("document ends inside the definition of %q", c.ins.MnemonicText)
	}
	if c.blocks == 0 {
		return mismatch("no instruction definitions found")
	}
	return nil
}

// definition returns the value of a <dd> line.
func definition(line string, what string) (string, error) {
	if !strings.HasPrefix(line, "<dd>") || !strings.HasSuffix(line, "</dd>") {
		return "", mismatch("expected <dd> value for %s, got %q", what, line)
	}
	return strings.TrimSpace(line[len("<dd>") : len(line)-len("</dd>")]), nil
}
