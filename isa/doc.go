// Package isa is the instruction database model: one Instruction per opcode,
// collected in document order in a Table and serialized for the assemblers
// and disassemblers that load it.
//
// The package also holds the field normalizers shared by the document
// readers. They turn the raw text of a documentation cell or definition
// block into typed values and fail on anything they don't recognise.
package isa
