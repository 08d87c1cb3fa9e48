package isa

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/apparentlymart/z80-meta/curated"
)

// Document is the shape of the serialized database.
type Document struct {
	Instructions []Instruction `json:"instructions"`
}

// MarshalJSON encodes the flags as an array of single character strings.
func (fs Flags) MarshalJSON() ([]byte, error) {
	s := make([]string, len(fs))
	for i, c := range fs {
		s[i] = c.String()
	}
	return json.Marshal(s)
}

// UnmarshalJSON is the reverse of MarshalJSON.
func (fs *Flags) UnmarshalJSON(data []byte) error {
	var s []string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if len(s) != len(fs) {
		return curated.Errorf(InvalidInstruction, fmt.Sprintf("%d flags", len(s)))
	}
	for i := range s {
		if len(s[i]) != 1 || !FlagCode(s[i][0]).Valid() {
			return curated.Errorf(InvalidInstruction, fmt.Sprintf("flag code (%q)", s[i]))
		}
		fs[i] = FlagCode(s[i][0])
	}
	return nil
}

// WriteJSON writes the table as a single JSON document. The output for a table
// is always the same, byte for byte.
func WriteJSON(w io.Writer, tab *Table) error {
	doc := Document{Instructions: tab.instructions}
	if doc.Instructions == nil {
		doc.Instructions = []Instruction{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")

	// descriptions are plain text. escaping '<' and '&' makes them harder to
	// read for no benefit
	enc.SetEscapeHTML(false)

	return enc.Encode(doc)
}

// ReadJSON reads a document written by WriteJSON. Every instruction is
// validated as it is added to the returned table.
func ReadJSON(r io.Reader) (*Table, error) {
	var doc Document

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, curated.Errorf("instruction document: %v", err)
	}

	tab := NewTable()
	for i, ins := range doc.Instructions {
		if err := tab.Append(ins); err != nil {
			return nil, curated.Errorf("instruction document: entry %d: %v", i, err)
		}
	}
	return tab, nil
}
