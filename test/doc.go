// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure and let the test continue. The
// Demand*() functions stop the test immediately.
//
// It is worth describing how the success/failure functions handle the nil type
// because it is not obvious. The nil type is considered a success and
// consequently will cause ExpectFailure to fail and ExpectSuccess to succeed.
// Because of how errors usually work (nil to indicate no error) we need to
// interpret nil in this way.
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output. CompareWriter.Compare() can then be used to test for
// equality.
package test
