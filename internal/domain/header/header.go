// Package header parses lichess PGN tag-pair values into typed fields.
//
// Parsing is lazy: a value is only parsed when the classifier observes its
// tag. Absent tags keep the zero value of their type.
package header

import (
	"bytes"
	"fmt"
	"strconv"
)

// Rating is a player rating such as WhiteElo.
type Rating uint16

// ParseRating parses an unsigned rating value.
func ParseRating(raw []byte) (Rating, error) {
	v, err := strconv.ParseUint(string(raw), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRating, err)
	}
	return Rating(v), nil
}

// RatingDiff is a signed rating change such as WhiteRatingDiff. Lichess
// writes these with an explicit sign, e.g. "+8" or "-8".
type RatingDiff int16

// ParseRatingDiff parses a signed rating change.
func ParseRatingDiff(raw []byte) (RatingDiff, error) {
	v, err := strconv.ParseInt(string(raw), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRatingDiff, err)
	}
	return RatingDiff(v), nil
}

// TimeControl is a time control header like e.g. 300+0. This is the only
// time control format currently supported; the PGN spec allows a variety of
// other forms, all of which are treated as a parse failure.
type TimeControl struct {
	InitialTime uint32
	Increment   uint32
}

// ParseTimeControl parses the two-field "time+inc" form, both in seconds.
func ParseTimeControl(raw []byte) (TimeControl, error) {
	initial, inc, ok := bytes.Cut(raw, []byte("+"))
	if !ok {
		return TimeControl{}, fmt.Errorf("%w: expected time control with form time+inc", ErrTimeControl)
	}
	t, err := strconv.ParseUint(string(initial), 10, 32)
	if err != nil {
		return TimeControl{}, fmt.Errorf("%w: %v", ErrTimeControl, err)
	}
	i, err := strconv.ParseUint(string(inc), 10, 32)
	if err != nil {
		return TimeControl{}, fmt.Errorf("%w: %v", ErrTimeControl, err)
	}
	return TimeControl{InitialTime: uint32(t), Increment: uint32(i)}, nil
}

// Termination enumerates the possible values of the Termination tag in
// lichess PGNs.
type Termination int

const (
	TerminationNormal Termination = iota
	TerminationTimeForfeit
	TerminationAbandoned
	TerminationRulesInfraction
	TerminationUnterminated
	TerminationUnknown
)

// ParseTermination maps a raw Termination value to its enum.
func ParseTermination(raw []byte) (Termination, error) {
	switch string(raw) {
	case "Normal":
		return TerminationNormal, nil
	case "Time forfeit":
		return TerminationTimeForfeit, nil
	case "Abandoned":
		return TerminationAbandoned, nil
	case "Rules infraction":
		return TerminationRulesInfraction, nil
	case "Unterminated":
		return TerminationUnterminated, nil
	case "Unknown":
		return TerminationUnknown, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrTermination, raw)
	}
}

// Result enumerates the standard PGN game results.
type Result int

const (
	ResultWhiteWin Result = iota
	ResultDraw
	ResultBlackWin
	// ResultOther covers "*": unfinished or otherwise undecided.
	ResultOther
)

// ParseResult maps a raw Result value to its enum.
func ParseResult(raw []byte) (Result, error) {
	switch string(raw) {
	case "1-0":
		return ResultWhiteWin, nil
	case "1/2-1/2":
		return ResultDraw, nil
	case "0-1":
		return ResultBlackWin, nil
	case "*":
		return ResultOther, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrResult, raw)
	}
}
