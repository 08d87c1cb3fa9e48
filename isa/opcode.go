package isa

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/apparentlymart/z80-meta/curated"
)

// Displacement stands in for a relative displacement byte, computed from the
// target address minus the address of the instruction minus two. It is kept
// exactly as the documentation writes it.
const Displacement = "-$-2"

// OpcodeBytes is the encoding of an instruction, prefix bytes included. Each
// entry is two upper-case hex digits or Displacement.
type OpcodeBytes []string

func (ob OpcodeBytes) String() string {
	return strings.Join(ob, " ")
}

// Valid returns true if the sequence is not empty and every token is
// well formed.
func (ob OpcodeBytes) Valid() bool {
	if len(ob) == 0 {
		return false
	}
	for _, tok := range ob {
		if tok != Displacement && !isHexByte(tok) {
			return false
		}
	}
	return true
}

func isHexByte(tok string) bool {
	if len(tok) != 2 {
		return false
	}
	for _, r := range tok {
		if !strings.ContainsRune("0123456789ABCDEF", r) {
			return false
		}
	}
	return true
}

// hexBytes splits a run of hex digits into byte tokens. The case of the
// digits doesn't matter; the tokens are upper-case.
func hexBytes(s string) (OpcodeBytes, bool) {
	if len(s)%2 != 0 {
		return nil, false
	}
	s = strings.ToUpper(s)
	ob := make(OpcodeBytes, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		if !isHexByte(s[i : i+2]) {
			return nil, false
		}
		ob = append(ob, s[i:i+2])
	}
	return ob, true
}

// ParsePrefix parses the opcode prefix label of a grid table, eg. "CB" or
// "DDCB". The unprefixed table has an empty label.
func ParsePrefix(label string) (OpcodeBytes, error) {
	ob, ok := hexBytes(label)
	if !ok {
		return nil, curated.Errorf(MalformedNumericField, "opcode prefix", label)
	}
	return ob, nil
}

// GridOpcode returns the opcode of the cell at row high and column low of the
// grid table for prefix.
func GridOpcode(prefix OpcodeBytes, high int, low int) OpcodeBytes {
	ob := make(OpcodeBytes, 0, len(prefix)+1)
	ob = append(ob, prefix...)
	return append(ob, fmt.Sprintf("%02X", high*16+low))
}

// ParseOpcodeText parses the opcode of a definition block, eg. "DD 36
// <var>d</var> <var>n</var>" or "10 <var>e</var>-$-2". Operand placeholders are
// dropped. The spacing between bytes is for readability only and is ignored.
func ParseOpcodeText(s string) (OpcodeBytes, error) {
	raw := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, StripOperands(s))

	hex := strings.TrimSuffix(raw, Displacement)
	relative := len(hex) != len(raw)

	ob, ok := hexBytes(hex)
	if !ok || len(ob) == 0 {
		return nil, curated.Errorf(MalformedNumericField, "opcode", s)
	}
	if relative {
		ob = append(ob, Displacement)
	}
	return ob, nil
}
