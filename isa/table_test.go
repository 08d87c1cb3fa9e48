package isa_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/apparentlymart/z80-meta/curated"
	"github.com/apparentlymart/z80-meta/isa"
	"github.com/apparentlymart/z80-meta/test"
)

func rlcB() isa.Instruction {
	return isa.Instruction{
		OpcodeBytes:        isa.OpcodeBytes{"CB", "00"},
		Flags:              isa.Flags{'+', '0', 'P', '0', '+', '+'},
		ByteCount:          2,
		ClockCountTaken:    8,
		ClockCountNotTaken: 8,
		Description:        "The contents of b are rotated left one bit position.",
		MnemonicText:       "rlc b",
	}
}

func jrNZ() isa.Instruction {
	return isa.Instruction{
		OpcodeBytes:        isa.OpcodeBytes{"20", isa.Displacement},
		Flags:              isa.Flags{'-', '-', '-', '-', '-', '-'},
		ByteCount:          2,
		ClockCountTaken:    12,
		ClockCountNotTaken: 7,
		Description:        "If the zero flag is unset, the signed value d is added to pc.",
		MnemonicText:       "jr nz,d",
	}
}

func TestAppend(t *testing.T) {
	tab := isa.NewTable()
	test.DemandSuccess(t, tab.Append(rlcB()))
	test.DemandSuccess(t, tab.Append(jrNZ()))

	// duplicates are passed through
	test.DemandSuccess(t, tab.Append(rlcB()))

	test.ExpectEquality(t, tab.Len(), 3)
	ins := tab.Instructions()
	test.ExpectEquality(t, ins[0].MnemonicText, "rlc b")
	test.ExpectEquality(t, ins[1].MnemonicText, "jr nz,d")
	test.ExpectEquality(t, ins[2].MnemonicText, "rlc b")

	// the returned slice is a copy
	ins[0].MnemonicText = "changed"
	test.ExpectEquality(t, tab.Instructions()[0].MnemonicText, "rlc b")
}

func TestAppendInvalid(t *testing.T) {
	tab := isa.NewTable()

	bad := rlcB()
	bad.Flags[isa.Zero] = 'x'
	test.ExpectSuccess(t, curated.Is(tab.Append(bad), isa.InvalidInstruction))

	bad = rlcB()
	bad.OpcodeBytes = nil
	test.ExpectSuccess(t, curated.Is(tab.Append(bad), isa.InvalidInstruction))

	bad = rlcB()
	bad.ByteCount = 0
	test.ExpectSuccess(t, curated.Is(tab.Append(bad), isa.InvalidInstruction))

	bad = rlcB()
	bad.ClockCountNotTaken = 0
	test.ExpectSuccess(t, curated.Is(tab.Append(bad), isa.InvalidInstruction))

	test.ExpectEquality(t, tab.Len(), 0)
}

func TestConditional(t *testing.T) {
	test.ExpectFailure(t, rlcB().IsConditional())
	test.ExpectSuccess(t, jrNZ().IsConditional())
	test.ExpectSuccess(t, strings.Contains(jrNZ().String(), "(12/7 cycles)"))
	test.ExpectSuccess(t, strings.Contains(rlcB().String(), "(8 cycles)"))
}

func TestWriteJSON(t *testing.T) {
	tab := isa.NewTable()
	test.DemandSuccess(t, tab.Append(jrNZ()))

	var b bytes.Buffer
	test.DemandSuccess(t, isa.WriteJSON(&b, tab))

	want := `{
    "instructions": [
        {
            "opcode_bytes": [
                "20",
                "-$-2"
            ],
            "undocumented": false,
            "flags": [
                "-",
                "-",
                "-",
                "-",
                "-",
                "-"
            ],
            "byte_count": 2,
            "clock_count_taken": 12,
            "clock_count_not_taken": 7,
            "description": "If the zero flag is unset, the signed value d is added to pc.",
            "mnemonic_text": "jr nz,d"
        }
    ]
}
`
	test.ExpectEquality(t, b.String(), want)
}

func TestWriteEmptyJSON(t *testing.T) {
	var b bytes.Buffer
	test.DemandSuccess(t, isa.WriteJSON(&b, &isa.Table{}))
	test.ExpectEquality(t, b.String(), "{\n    \"instructions\": []\n}\n")
}

// dumps every field rather than the String() form
var fields = spew.ConfigState{Indent: " ", DisableMethods: true}

func TestRoundTrip(t *testing.T) {
	tab := isa.NewTable()
	test.DemandSuccess(t, tab.Append(rlcB()))
	test.DemandSuccess(t, tab.Append(jrNZ()))

	var first, second bytes.Buffer
	test.DemandSuccess(t, isa.WriteJSON(&first, tab))
	test.DemandSuccess(t, isa.WriteJSON(&second, tab))
	test.ExpectEquality(t, first.String(), second.String())

	reread, err := isa.ReadJSON(bytes.NewReader(first.Bytes()))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, reread.Len(), tab.Len())

	for i, ins := range reread.Instructions() {
		want := tab.Instructions()[i]
		if fields.Sdump(ins) != fields.Sdump(want) {
			t.Errorf("entry %d differs after round trip:\n%s\nwanted:\n%s", i, fields.Sdump(ins), fields.Sdump(want))
		}
	}

	var third bytes.Buffer
	test.DemandSuccess(t, isa.WriteJSON(&third, reread))
	test.ExpectEquality(t, third.String(), first.String())
}

func TestReadInvalidJSON(t *testing.T) {
	_, err := isa.ReadJSON(strings.NewReader(`{"instructions": [{"opcode_bytes": ["CB"], "flags": ["+"], "byte_count": 1, "clock_count_taken": 4, "clock_count_not_taken": 4}]}`))
	test.ExpectSuccess(t, curated.Has(err, isa.InvalidInstruction))

	_, err = isa.ReadJSON(strings.NewReader(`{"instructions": [{"opcode_bytes": ["CB"], "flags": ["+","+","+","+","+","+"], "byte_count": 0, "clock_count_taken": 4, "clock_count_not_taken": 4}]}`))
	test.ExpectSuccess(t, curated.Has(err, isa.InvalidInstruction))

	_, err = isa.ReadJSON(strings.NewReader(`{"opcodes": []}`))
	test.ExpectFailure(t, err)
}
