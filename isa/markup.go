package isa

import "regexp"

// operands in the documentation are typeset as <var>n</var>, <var>d</var> etc.
var (
	operandTag     = regexp.MustCompile(`</?var>`)
	operandElement = regexp.MustCompile(`<var>\w*</var>`)
)

// StripOperandMarkup removes the typesetting around operand placeholders but
// keeps the placeholders themselves: "ld a,<var>n</var>" becomes "ld a,n".
func StripOperandMarkup(s string) string {
	return operandTag.ReplaceAllString(s, "")
}

// StripOperands removes operand placeholders completely, markup and all.
func StripOperands(s string) string {
	return operandElement.ReplaceAllString(s, "")
}
