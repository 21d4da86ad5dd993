package collect

import "errors"

// Sentinel errors for collection runs. Callers match them with errors.Is to
// distinguish setup failures from output failures.
var (
	// ErrInvalidInput indicates the input directory does not exist or is not
	// a directory.
	ErrInvalidInput = errors.New("invalid input directory")
	// ErrInvalidIgnoreFile indicates the ignore file cannot be read or holds
	// a pattern that does not compile.
	ErrInvalidIgnoreFile = errors.New("invalid ignore file")
	// ErrOutputWrite indicates the output file could not be created or
	// written.
	ErrOutputWrite = errors.New("output write failed")
)
