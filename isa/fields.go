package isa

import (
	"strconv"
	"strings"

	"github.com/apparentlymart/z80-meta/curated"
)

// Clocks is the execution time of an instruction in clock cycles. Conditional
// instructions take longer when the condition holds (the jump is taken or the
// block instruction repeats) and the documentation then gives both counts.
type Clocks struct {
	Taken    int
	NotTaken int

	// Split is true if the documentation gave two counts.
	Split bool
}

// ParseClocks parses a cycle count field. The field is either a single count,
// used for both Taken and NotTaken, or two counts separated by a slash.
//
// The documentation lists the taken count first but nothing depends on that:
// the larger of the two counts is always the taken count.
func ParseClocks(s string) (Clocks, error) {
	rawA, rawB := partition(s, "/")
	if rawB == "" {
		if strings.Contains(s, "/") {
			return Clocks{}, curated.Errorf(MalformedNumericField, "clock count", s)
		}
		n, err := parsePositive(rawA)
		if err != nil {
			return Clocks{}, curated.Errorf(MalformedNumericField, "clock count", s)
		}
		return Clocks{Taken: n, NotTaken: n}, nil
	}

	if strings.Contains(rawB, "/") {
		return Clocks{}, curated.Errorf(MalformedNumericField, "clock count", s)
	}
	a, err := parsePositive(rawA)
	if err != nil {
		return Clocks{}, curated.Errorf(MalformedNumericField, "clock count", s)
	}
	b, err := parsePositive(rawB)
	if err != nil {
		return Clocks{}, curated.Errorf(MalformedNumericField, "clock count", s)
	}

	c := Clocks{Taken: a, NotTaken: b, Split: true}
	if b > a {
		c.Taken, c.NotTaken = b, a
	}
	return c, nil
}

// ParseCount parses a positive decimal count. The what argument names the
// field in the error message.
func ParseCount(what string, s string) (int, error) {
	n, err := parsePositive(s)
	if err != nil {
		return 0, curated.Errorf(MalformedNumericField, what, s)
	}
	return n, nil
}

func parsePositive(s string) (int, error) {
	for _, r := range s {
		// strconv.Atoi() allows a sign
		if r < '0' || r > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}

func partition(s string, sep string) (l, r string) {
	idx := strings.Index(s, sep)
	if idx == -1 {
		return s, ""
	}
	return s[:idx], s[idx+len(sep):]
}
