package classify

import (
	"bytes"

	"github.com/okian/pgn2csv/internal/domain/clock"
	"github.com/okian/pgn2csv/internal/domain/header"
)

// TimeOddsRow is the output schema of the time-odds classifier. Initial
// times are in seconds; Tournament records whether the Event tag mentions a
// tournament, independent of acceptance.
type TimeOddsRow struct {
	WhiteRating      header.Rating `csv:"white_rating"`
	BlackRating      header.Rating `csv:"black_rating"`
	WhiteInitialTime uint32        `csv:"white_initial_time"`
	BlackInitialTime uint32        `csv:"black_initial_time"`
	InitialTime      uint32        `csv:"initial_time"`
	Increment        uint32        `csv:"increment"`
	Result           uint8         `csv:"result"`
	Termination      uint8         `csv:"termination"`
	Tournament       bool          `csv:"tournament"`
}

// timeOddsScratch is the per-game scratch state of the time-odds classifier.
// The prev caches hold each side's last accepted clock sample.
type timeOddsScratch struct {
	movesWithClk  uint32
	whiteTimeOdds bool
	blackTimeOdds bool
	whitePrevTime uint32
	blackPrevTime uint32
	skip          bool
}

func (s *timeOddsScratch) reset() {
	*s = timeOddsScratch{}
}

// whiteMove reports whether the next clock sample belongs to white. Plies
// alternate starting with white.
func (s *timeOddsScratch) whiteMove() bool {
	return s.movesWithClk%2 == 0
}

// TimeOdds selects games where one player started with more clock time than
// the other. The vast majority of these come from berserking, but the
// classifier is independent of tournament context.
type TimeOdds struct {
	row     TimeOddsRow
	scratch timeOddsScratch
	clk     clock.Extractor
}

// NewTimeOdds constructs a time-odds classifier.
func NewTimeOdds() Classifier {
	return &TimeOdds{clk: clock.NewExtractor(clockCommand)}
}

func (o *TimeOdds) BeginGame() {
	o.scratch.reset()
}

func (o *TimeOdds) Header(key, value []byte) {
	if o.scratch.skip {
		return
	}

	switch string(key) {
	case "WhiteElo":
		rating, err := header.ParseRating(value)
		if err != nil {
			o.scratch.skip = true
			return
		}
		o.row.WhiteRating = rating
	case "BlackElo":
		rating, err := header.ParseRating(value)
		if err != nil {
			o.scratch.skip = true
			return
		}
		o.row.BlackRating = rating
	case "Event":
		o.row.Tournament = bytes.Contains(value, []byte("tournament"))
	case "TimeControl":
		tc, err := header.ParseTimeControl(value)
		if err != nil {
			o.scratch.skip = true
			return
		}
		o.row.InitialTime = tc.InitialTime
		o.row.Increment = tc.Increment
	case "Termination":
		term, err := header.ParseTermination(value)
		if err != nil {
			o.scratch.skip = true
			return
		}
		code, ok := terminationCode(term)
		if !ok {
			o.scratch.skip = true
			return
		}
		o.row.Termination = code
	case "Result":
		result, err := header.ParseResult(value)
		if err != nil {
			o.scratch.skip = true
			return
		}
		code, ok := resultCode(result)
		if !ok {
			o.scratch.skip = true
			return
		}
		o.row.Result = code
	}
}

func (o *TimeOdds) EndHeaders() bool {
	return o.scratch.skip
}

// Comment processes one clock sample per ply. The first two samples decide
// whether odds are present at all; later samples guard against mid-game time
// grants.
func (o *TimeOdds) Comment(raw []byte) {
	if o.scratch.skip {
		return
	}

	tm, err := o.clk.Extract(raw)
	if err != nil {
		o.scratch.skip = true
		return
	}

	t := tm.TotalSeconds()
	switch {
	case o.scratch.movesWithClk == 0:
		// White's first move.
		if o.row.InitialTime != t {
			o.scratch.whiteTimeOdds = true
		}
		o.row.WhiteInitialTime = t
		o.scratch.whitePrevTime = t
	case o.scratch.movesWithClk == 1:
		// Whether or not either side's initial time differs from the time
		// control, equal starting times are not odds.
		if t == o.row.WhiteInitialTime {
			o.scratch.skip = true
			return
		}
		// Black's first move.
		if o.row.InitialTime != t {
			o.scratch.blackTimeOdds = true
		}
		o.row.BlackInitialTime = t
		o.scratch.blackPrevTime = t
	case !o.scratch.whiteTimeOdds && !o.scratch.blackTimeOdds:
		o.scratch.skip = true
		return
	case o.scratch.whiteMove():
		// Drop games where a side gained time mid-game beyond increment
		// accrual; this won't catch every grant, but better than nothing.
		// The +1 tolerates sub-second rounding in the annotations.
		if t > o.scratch.whitePrevTime+o.row.Increment+1 {
			o.scratch.skip = true
			return
		}
		o.scratch.whitePrevTime = t
	default:
		if t > o.scratch.blackPrevTime+o.row.Increment+1 {
			o.scratch.skip = true
			return
		}
		o.scratch.blackPrevTime = t
	}
	o.scratch.movesWithClk++
}

func (o *TimeOdds) BeginVariation() bool {
	return true
}

func (o *TimeOdds) EndGame() {
	// Both players must have made at least one clocked move.
	if o.scratch.movesWithClk < 2 {
		o.scratch.skip = true
	}
}

func (o *TimeOdds) Finalize() (any, bool) {
	row := o.row
	o.row = TimeOddsRow{}
	if o.scratch.skip {
		return nil, false
	}
	return row, true
}
