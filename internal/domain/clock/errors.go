package clock

import "errors"

// Sentinel kinds for clock extraction failures.
var (
	ErrNoClock     = errors.New("no clock command")
	ErrClockFormat = errors.New("invalid clock value")
)
