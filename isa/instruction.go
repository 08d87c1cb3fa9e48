package isa

import (
	"fmt"

	"github.com/apparentlymart/z80-meta/curated"
)

// Instruction is one entry of the instruction database. The field order is the
// order of the keys in the serialized document.
type Instruction struct {
	OpcodeBytes        OpcodeBytes `json:"opcode_bytes"`
	Undocumented       bool        `json:"undocumented"`
	Flags              Flags       `json:"flags"`
	ByteCount          int         `json:"byte_count"`
	ClockCountTaken    int         `json:"clock_count_taken"`
	ClockCountNotTaken int         `json:"clock_count_not_taken"`
	Description        string      `json:"description"`
	MnemonicText       string      `json:"mnemonic_text"`
}

// SetClocks copies the clock counts into the instruction.
func (ins *Instruction) SetClocks(c Clocks) {
	ins.ClockCountTaken = c.Taken
	ins.ClockCountNotTaken = c.NotTaken
}

// IsConditional returns true if the instruction's timing depends on whether a
// condition holds.
func (ins Instruction) IsConditional() bool {
	return ins.ClockCountTaken != ins.ClockCountNotTaken
}

// Validate checks the invariants every consumer of the database relies on. The
// byte count and the length of the opcode are sourced independently and are
// not checked against each other.
func (ins Instruction) Validate() error {
	if !ins.OpcodeBytes.Valid() {
		return curated.Errorf(InvalidInstruction, fmt.Sprintf("opcode bytes (%s)", ins.OpcodeBytes))
	}
	if !ins.Flags.Valid() {
		return curated.Errorf(InvalidInstruction, fmt.Sprintf("flags (%q)", ins.Flags.String()))
	}
	if ins.ByteCount <= 0 {
		return curated.Errorf(InvalidInstruction, fmt.Sprintf("byte count (%d)", ins.ByteCount))
	}
	if ins.ClockCountTaken <= 0 || ins.ClockCountNotTaken <= 0 {
		return curated.Errorf(InvalidInstruction, fmt.Sprintf("clock count (%d/%d)", ins.ClockCountTaken, ins.ClockCountNotTaken))
	}
	return nil
}

// String returns the instruction as a single line of text.
func (ins Instruction) String() string {
	clocks := fmt.Sprintf("%d", ins.ClockCountTaken)
	if ins.IsConditional() {
		clocks = fmt.Sprintf("%d/%d", ins.ClockCountTaken, ins.ClockCountNotTaken)
	}

	undoc := ""
	if ins.Undocumented {
		undoc = " (undocumented)"
	}

	return fmt.Sprintf("%-14s %-18s %dbytes (%s cycles) [%s]%s", ins.OpcodeBytes, ins.MnemonicText, ins.ByteCount, clocks, ins.Flags, undoc)
}
