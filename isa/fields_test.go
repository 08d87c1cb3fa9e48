package isa_test

import (
	"testing"

	"github.com/apparentlymart/z80-meta/curated"
	"github.com/apparentlymart/z80-meta/isa"
	"github.com/apparentlymart/z80-meta/test"
)

func TestClocks(t *testing.T) {
	c, err := isa.ParseClocks("8")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c, isa.Clocks{Taken: 8, NotTaken: 8})

	c, err = isa.ParseClocks("12/7")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c, isa.Clocks{Taken: 12, NotTaken: 7, Split: true})

	// the longer path is the taken path whichever way round it is written
	c, err = isa.ParseClocks("8/13")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c, isa.Clocks{Taken: 13, NotTaken: 8, Split: true})
}

func TestMalformedClocks(t *testing.T) {
	for _, s := range []string{"", "/", "8/", "/8", "8/13/21", "x", "8/x", "0", "-4", "+4", "4.5", "8 / 13"} {
		_, err := isa.ParseClocks(s)
		test.ExpectSuccess(t, curated.Is(err, isa.MalformedNumericField), s)
	}
}

func TestCount(t *testing.T) {
	n, err := isa.ParseCount("byte count", "3")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 3)

	_, err = isa.ParseCount("byte count", "three")
	test.ExpectSuccess(t, curated.Is(err, isa.MalformedNumericField))
	test.ExpectEquality(t, err.Error(), `malformed byte count ("three")`)

	_, err = isa.ParseCount("byte count", "0")
	test.ExpectFailure(t, err)
}
