package clr

// Error patterns raised by the readers. Test for them with curated.Has().
const (
	// the document does not have the structure of the layout being read
	StructuralMismatch = "structural mismatch: %s"

	// wraps every error with the line it was raised on
	AtLine = "line %d: %v"
)
