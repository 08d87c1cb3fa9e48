package clr

import (
	"errors"
	"io"
	"strings"

	"github.com/beevik/prefixtree/v2"

	"github.com/apparentlymart/z80-meta/curated"
	"github.com/apparentlymart/z80-meta/isa"
)

// Layout is the structure of a documentation page.
type Layout int

const (
	Grid Layout = iota
	Blocks
)

func (l Layout) String() string {
	switch l {
	case Grid:
		return "grid"
	case Blocks:
		return "blocks"
	}
	return "unknown"
}

// UnknownLayout is the error pattern for layout names that can't be resolved.
const UnknownLayout = "unknown layout (%s): %v"

var layouts = prefixtree.New[Layout]()

func init() {
	for _, l := range []Layout{Grid, Blocks} {
		layouts.Add(l.String(), l)
	}
}

// ParseLayout returns the layout with the given name. Any unambiguous prefix
// of the name will do, in any case.
func ParseLayout(name string) (Layout, error) {
	l, err := layouts.FindValue(strings.ToLower(name))
	switch {
	case errors.Is(err, prefixtree.ErrPrefixAmbiguous):
		return 0, curated.Errorf(UnknownLayout, name, "ambiguous")
	case err != nil:
		return 0, curated.Errorf(UnknownLayout, name, "not found")
	}
	return l, nil
}

// Read reads a document in the given layout.
func Read(layout Layout, r io.Reader) (*isa.Table, error) {
	switch layout {
	case Grid:
		return ReadGrid(r)
	case Blocks:
		return ReadBlocks(r)
	}
	return nil, curated.Errorf(UnknownLayout, layout, "not supported")
}
