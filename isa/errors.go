package isa

// Error patterns raised by the normalizers. Test for them with curated.Has().
const (
	UnknownFlagPhrase     = "unknown flag phrase (%q)"
	MalformedNumericField = "malformed %s (%q)"
	InvalidInstruction    = "invalid instruction: %s"
)
