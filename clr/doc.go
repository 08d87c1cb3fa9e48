// Package clr reads the HTML instruction tables published at clrhome.org and
// builds an instruction database from them.
//
// Two layouts of the documentation are supported. The grid layout (ReadGrid)
// has one table per opcode prefix, one row per high nybble and one cell per
// low nybble; the cell's axis attribute holds the flags, byte count, cycle
// count and description. The block layout (ReadBlocks) has one definition
// list per instruction.
//
// Both readers are strict. They work through the document a line at a time,
// and a line that doesn't have the shape the reader expects at that point
// stops the read. There is no attempt to resynchronise: if the structure has
// drifted, nothing after it can be trusted.
package clr
