package classify

import (
	"bytes"

	"github.com/okian/pgn2csv/internal/domain/clock"
	"github.com/okian/pgn2csv/internal/domain/header"
)

// BerserkRow is the output schema of the berserk classifier. Time is in
// whole minutes; the berserk code is 0 neither, 1 white only, 2 black only,
// 3 both.
type BerserkRow struct {
	WhiteRating header.Rating `csv:"white_rating"`
	BlackRating header.Rating `csv:"black_rating"`
	Time        uint32        `csv:"time"`
	Berserk     uint8         `csv:"berserk"`
	Result      uint8         `csv:"result"`
	Termination uint8         `csv:"termination"`
}

// berserkScratch is the per-game scratch state of the berserk classifier.
type berserkScratch struct {
	movesWithClk   uint8
	whiteBerserked bool
	blackBerserked bool
	skip           bool
}

func (s *berserkScratch) reset() {
	*s = berserkScratch{}
}

func (s *berserkScratch) berserkCode() uint8 {
	switch {
	case s.whiteBerserked && s.blackBerserked:
		return 3
	case s.whiteBerserked:
		return 1
	case s.blackBerserked:
		return 2
	default:
		return 0
	}
}

// Berserk selects lichess arena tournament games with time control 1+0 or
// 3+0 where at least one player berserked. A side berserked when its first
// recorded remaining time is below the game's initial allotment.
type Berserk struct {
	row     BerserkRow
	scratch berserkScratch
	clk     clock.Extractor
}

// NewBerserk constructs a berserk classifier.
func NewBerserk() Classifier {
	return &Berserk{clk: clock.NewExtractor(clockCommand)}
}

func (b *Berserk) BeginGame() {
	b.scratch.reset()
}

func (b *Berserk) Header(key, value []byte) {
	if b.scratch.skip {
		return
	}

	switch string(key) {
	case "WhiteElo":
		rating, err := header.ParseRating(value)
		if err != nil {
			b.scratch.skip = true
			return
		}
		b.row.WhiteRating = rating
	case "BlackElo":
		rating, err := header.ParseRating(value)
		if err != nil {
			b.scratch.skip = true
			return
		}
		b.row.BlackRating = rating
	case "Event":
		// Arena games only. Swiss events would be nice to exclude too, but
		// lichess does not distinguish them in the Event tag.
		if !bytes.Contains(value, []byte("tournament")) {
			b.scratch.skip = true
		}
	case "TimeControl":
		tc, err := header.ParseTimeControl(value)
		if err != nil {
			b.scratch.skip = true
			return
		}
		// Only 1+0 and 3+0 games; increments change the berserk economics.
		if tc.Increment > 0 || (tc.InitialTime != 60 && tc.InitialTime != 180) {
			b.scratch.skip = true
			return
		}
		b.row.Time = tc.InitialTime
	case "Termination":
		term, err := header.ParseTermination(value)
		if err != nil {
			b.scratch.skip = true
			return
		}
		code, ok := terminationCode(term)
		if !ok {
			b.scratch.skip = true
			return
		}
		b.row.Termination = code
	case "Result":
		result, err := header.ParseResult(value)
		if err != nil {
			b.scratch.skip = true
			return
		}
		code, ok := resultCode(result)
		if !ok {
			b.scratch.skip = true
			return
		}
		b.row.Result = code
	}
}

func (b *Berserk) EndHeaders() bool {
	return b.scratch.skip
}

// Comment inspects the first two clock samples only: white's first move and
// black's first move. Assumes at most one comment per ply.
func (b *Berserk) Comment(raw []byte) {
	if b.scratch.skip || b.scratch.movesWithClk >= 2 {
		return
	}

	tm, err := b.clk.Extract(raw)
	if err != nil {
		b.scratch.skip = true
		return
	}

	t := tm.TotalSeconds()
	if b.scratch.movesWithClk == 0 {
		if b.row.Time > t {
			b.scratch.whiteBerserked = true
		}
	} else if b.row.Time > t {
		b.scratch.blackBerserked = true
	}
	b.scratch.movesWithClk++
}

func (b *Berserk) BeginVariation() bool {
	return true
}

func (b *Berserk) EndGame() {
	if b.scratch.skip {
		return
	}
	// Both players must have made at least one clocked move.
	if b.scratch.movesWithClk < 2 {
		b.scratch.skip = true
		return
	}
	// Only 1+0 and 3+0 are accepted, so whole minutes lose nothing.
	b.row.Time /= 60
	b.row.Berserk = b.scratch.berserkCode()
}

func (b *Berserk) Finalize() (any, bool) {
	row := b.row
	b.row = BerserkRow{}
	if b.scratch.skip {
		return nil, false
	}
	return row, true
}
