package isa_test

import (
	"testing"

	"github.com/apparentlymart/z80-meta/curated"
	"github.com/apparentlymart/z80-meta/isa"
	"github.com/apparentlymart/z80-meta/test"
)

func TestFlagPhrases(t *testing.T) {
	phrases := []struct {
		phrase string
		code   isa.FlagCode
	}{
		{"as defined", '+'},
		{"exceptional", '*'},
		{"detects overflow", 'V'},
		{"reset", '0'},
		{"set", '1'},
		{"unaffected", '-'},
		{"undefined", ' '},
		{"detects parity", 'P'},
	}

	for _, p := range phrases {
		c, err := isa.ParseFlagPhrase(p.phrase)
		test.ExpectSuccess(t, err, p.phrase)
		test.ExpectEquality(t, c, p.code, p.phrase)
		test.ExpectSuccess(t, c.Valid(), p.phrase)
	}
}

func TestUnknownFlagPhrase(t *testing.T) {
	for _, phrase := range []string{"", "As defined", "as  defined", "detects", "affected", "+"} {
		_, err := isa.ParseFlagPhrase(phrase)
		test.ExpectFailure(t, err, phrase)
		test.ExpectSuccess(t, curated.Is(err, isa.UnknownFlagPhrase), phrase)
	}
}

func TestFlagField(t *testing.T) {
	fs, err := isa.ParseFlagField("++V+++")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fs, isa.Flags{'+', '+', 'V', '+', '+', '+'})

	fs, err = isa.ParseFlagField("--0 0P")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fs[isa.HalfCarry], isa.Undefined)
	test.ExpectEquality(t, fs[isa.Sign], isa.DetectsParity)

	fs, err = isa.ParseFlagField("unaffected")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fs.String(), "------")

	_, err = isa.ParseFlagField("++X+++")
	test.ExpectSuccess(t, curated.Has(err, isa.UnknownFlagPhrase))

	_, err = isa.ParseFlagField("+++++")
	test.ExpectSuccess(t, curated.Has(err, isa.UnknownFlagPhrase))
}

func TestFlagValid(t *testing.T) {
	test.ExpectFailure(t, isa.Flags{}.Valid())
	test.ExpectSuccess(t, isa.Flags{'-', '-', '-', '-', '-', '-'}.Valid())
	test.ExpectFailure(t, isa.FlagCode('x').Valid())
}

func TestFlagNames(t *testing.T) {
	test.ExpectEquality(t, isa.Carry.String(), "C")
	test.ExpectEquality(t, isa.ParityOverflow.String(), "P/V")
	test.ExpectEquality(t, isa.Sign.String(), "S")
	test.ExpectEquality(t, int(isa.NumFlags), 6)
}
