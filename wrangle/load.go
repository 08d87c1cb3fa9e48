package main

import (
	"bytes"
	"os"

	"github.com/apparentlymart/z80-meta/clr"
	"github.com/apparentlymart/z80-meta/curated"
	"github.com/apparentlymart/z80-meta/isa"
)

// LoadFailed is the error pattern for problems reading or parsing the input.
const LoadFailed = "failed to load %s: %v"

func loadTable(filename string, layout clr.Layout) (*isa.Table, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(LoadFailed, filename, err)
	}

	tab, err := clr.Read(layout, bytes.NewReader(data))
	if err != nil {
		return nil, curated.Errorf(LoadFailed, filename, err)
	}

	return tab, nil
}
