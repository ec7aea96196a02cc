package header

import "errors"

// Sentinel kinds for header parse failures.
var (
	ErrRating      = errors.New("invalid rating")
	ErrRatingDiff  = errors.New("invalid rating diff")
	ErrTimeControl = errors.New("invalid time control")
	ErrTermination = errors.New("unexpected termination type")
	ErrResult      = errors.New("unexpected result type")
)
