package main

import (
	"errors"
	"io"
	"strings"

	"github.com/beevik/prefixtree/v2"

	"github.com/apparentlymart/z80-meta/curated"
	"github.com/apparentlymart/z80-meta/isa"
)

// UnknownFormat is the error pattern for output format names that can't be
// resolved.
const UnknownFormat = "unknown output format (%s): %v"

type outputFormat struct {
	name  string
	write func(w io.Writer, tab *isa.Table, pkg string, variable string) error
}

var formats = prefixtree.New[outputFormat]()

func init() {
	for _, f := range []outputFormat{
		{name: "json", write: func(w io.Writer, tab *isa.Table, _ string, _ string) error {
			return isa.WriteJSON(w, tab)
		}},
		{name: "text", write: func(w io.Writer, tab *isa.Table, _ string, _ string) error {
			return writeText(w, tab)
		}},
		{name: "go", write: writeGo},
	} {
		formats.Add(f.name, f)
	}
}

func parseFormat(name string) (outputFormat, error) {
	f, err := formats.FindValue(strings.ToLower(name))
	switch {
	case errors.Is(err, prefixtree.ErrPrefixAmbiguous):
		return outputFormat{}, curated.Errorf(UnknownFormat, name, "ambiguous")
	case err != nil:
		return outputFormat{}, curated.Errorf(UnknownFormat, name, "not found")
	}
	return f, nil
}
