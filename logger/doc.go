// Package logger is the central log for the application. Readers log
// non-fatal conditions here (a taken/not-taken clock split, for example) and
// the command echoes the entries to its diagnostic channel as they are made.
//
// Entries are a tag and a detail. The tag says where the entry came from, the
// detail says what happened:
//
//	logger.Logf(logger.Allow, "grid", "split clock count (%s) for %s", clocks, mnemonic)
//
// An identical entry made immediately after another is not stored twice.
// Instead the existing entry is marked as repeated.
package logger
