package isa

// Table is the instruction database under construction. Instructions are kept
// in the order they were appended. There is no deduplication: a malformed
// document that lists an opcode twice produces two entries.
type Table struct {
	instructions []Instruction
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable() *Table {
	return &Table{
		instructions: make([]Instruction, 0, 256),
	}
}

// Append adds an instruction to the end of the table. The instruction is
// validated first and is not added if it is invalid.
func (tab *Table) Append(ins Instruction) error {
	if err := ins.Validate(); err != nil {
		return err
	}

	// the opcode slice is shared with the caller otherwise
	ins.OpcodeBytes = append(OpcodeBytes(nil), ins.OpcodeBytes...)

	tab.instructions = append(tab.instructions, ins)
	return nil
}

// Len returns the number of instructions in the table.
func (tab *Table) Len() int {
	return len(tab.instructions)
}

// Instructions returns a copy of the instructions in the table.
func (tab *Table) Instructions() []Instruction {
	c := make([]Instruction, len(tab.instructions))
	copy(c, tab.instructions)
	return c
}
