package isa

import (
	"fmt"
	"strings"

	"github.com/apparentlymart/z80-meta/curated"
)

// Flag is a status flag of the CPU. The order of the values is the order of
// the entries in Flags.
type Flag int

const (
	Carry Flag = iota
	Subtract
	ParityOverflow
	HalfCarry
	Zero
	Sign

	NumFlags
)

func (f Flag) String() string {
	switch f {
	case Carry:
		return "C"
	case Subtract:
		return "N"
	case ParityOverflow:
		return "P/V"
	case HalfCarry:
		return "H"
	case Zero:
		return "Z"
	case Sign:
		return "S"
	}
	return fmt.Sprintf("Flag(%d)", int(f))
}

// FlagCode is the effect an instruction has on one flag.
type FlagCode byte

const (
	AsDefined       FlagCode = '+'
	Exceptional     FlagCode = '*'
	DetectsOverflow FlagCode = 'V'
	Reset           FlagCode = '0'
	Set             FlagCode = '1'
	Unaffected      FlagCode = '-'
	Undefined       FlagCode = ' '
	DetectsParity   FlagCode = 'P'
)

// flagPhrases is the closed mapping from documentation phrase to code.
var flagPhrases = map[string]FlagCode{
	"as defined":       AsDefined,
	"exceptional":      Exceptional,
	"detects overflow": DetectsOverflow,
	"reset":            Reset,
	"set":              Set,
	"unaffected":       Unaffected,
	"undefined":        Undefined,
	"detects parity":   DetectsParity,
}

// Valid returns true if the code is one of the eight known codes.
func (c FlagCode) Valid() bool {
	switch c {
	case AsDefined, Exceptional, DetectsOverflow, Reset, Set, Unaffected, Undefined, DetectsParity:
		return true
	}
	return false
}

func (c FlagCode) String() string {
	return string(rune(c))
}

// ParseFlagPhrase returns the code for one of the eight documentation phrases,
// eg. "detects overflow". There is no fuzzy matching.
func ParseFlagPhrase(phrase string) (FlagCode, error) {
	c, ok := flagPhrases[phrase]
	if !ok {
		return 0, curated.Errorf(UnknownFlagPhrase, phrase)
	}
	return c, nil
}

// Flags is the effect of an instruction on every flag, indexed by Flag.
type Flags [NumFlags]FlagCode

// Valid returns true if every entry is a valid code.
func (fs Flags) Valid() bool {
	for _, c := range fs {
		if !c.Valid() {
			return false
		}
	}
	return true
}

// String returns the codes as a single string in Flag order, eg. "-+V+++".
func (fs Flags) String() string {
	var b strings.Builder
	for _, c := range fs {
		b.WriteByte(byte(c))
	}
	return b.String()
}

// ParseFlags parses a string of exactly NumFlags codes, the compact form used
// by the grid documentation.
func ParseFlags(s string) (Flags, error) {
	var fs Flags
	if len(s) != int(NumFlags) {
		return fs, curated.Errorf(UnknownFlagPhrase, s)
	}
	for i := range fs {
		fs[i] = FlagCode(s[i])
		if !fs[i].Valid() {
			return fs, curated.Errorf(UnknownFlagPhrase, s)
		}
	}
	return fs, nil
}

// ParseFlagField parses the flags field of a grid cell. The field is either the
// compact code string (see ParseFlags) or a single phrase that applies to every
// flag.
func ParseFlagField(s string) (Flags, error) {
	if fs, err := ParseFlags(s); err == nil {
		return fs, nil
	}

	c, err := ParseFlagPhrase(s)
	if err != nil {
		return Flags{}, err
	}

	var fs Flags
	for i := range fs {
		fs[i] = c
	}
	return fs, nil
}
