// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function checks whether an error was created with a specific
// pattern. The Has() function is similar but checks if a pattern occurs
// somewhere in the error chain:
//
//	e := curated.Errorf(isa.UnknownFlagPhrase, "maybe")
//	f := curated.Errorf("line %d: %v", 12, e)
//
//	curated.Has(f, isa.UnknownFlagPhrase) // true
//	curated.Is(f, isa.UnknownFlagPhrase)  // false
//
// Sentinel patterns are stored as const strings next to the code that raises
// them, suitably named and commented.
//
// The Error() implementation normalises the chain so that adjacent duplicate
// parts appear only once. Parts are separated by the sub-string ": ", as
// suggested on p239 of "The Go Programming Language" (Donovan, Kernighan).
package curated
