package app

import "errors"

// Sentinel kinds for pipeline errors.
var (
	// ErrFilesFailed reports that one or more files aborted; the rest of
	// the run completed normally.
	ErrFilesFailed = errors.New("some files failed")
)
