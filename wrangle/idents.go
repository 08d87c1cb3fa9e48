package main

import (
	"go/token"
	"strings"
	"unicode"
)

// makeIdentPackage turns a name into something usable as a package name:
// lower case letters, digits and underscores only.
func makeIdentPackage(inp string) string {
	var b strings.Builder
	for i, r := range inp {
		switch {
		case unicode.IsDigit(r):
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		case unicode.IsLetter(r) && r < unicode.MaxASCII:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "z80"
	}
	return notKeyword(b.String())
}

// makeIdentVariable turns a name into a camel case identifier. The case of
// the first letter is kept, so the name decides whether the identifier is
// exported.
func makeIdentVariable(inp string) string {
	var b strings.Builder
	nextUpper := false
	for _, r := range inp {
		switch {
		case unicode.IsDigit(r):
			if b.Len() == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		case unicode.IsLetter(r) && r < unicode.MaxASCII:
			if nextUpper {
				b.WriteRune(unicode.ToUpper(r))
			} else {
				b.WriteRune(r)
			}
			nextUpper = false
		default:
			nextUpper = b.Len() > 0
		}
	}
	if b.Len() == 0 {
		return "instructions"
	}
	return notKeyword(b.String())
}

func notKeyword(ident string) string {
	if token.IsKeyword(ident) {
		return ident + "_"
	}
	return ident
}
