// Package classify implements per-game incremental classifiers over a PGN
// event stream.
//
// A classifier consumes one file's games strictly in order through the
// visitor methods, keeping constant-size scratch state per game. Rejection
// is monotonic within a game: once the reject flag is set, every later
// header or comment event for that game is a no-op, and EndHeaders reports
// the flag back to the reader so it can skip the movetext.
//
// Classifier instances are not safe for concurrent use; the pipeline gives
// each file worker its own instance.
package classify

import "github.com/okian/pgn2csv/internal/domain/header"

// Classifier is the per-game state machine fed by the PGN reader.
//
// Event order per game: BeginGame, Header*, EndHeaders, (Comment |
// BeginVariation)*, EndGame, Finalize. Finalize is the take-and-reset step:
// it returns the finished row, if the game was accepted, and leaves the
// classifier ready for the next game.
type Classifier interface {
	// BeginGame resets all scratch state for a new game.
	BeginGame()

	// Header observes one tag pair. Unrecognized tags are ignored.
	Header(key, value []byte)

	// EndHeaders reports whether the movetext can be skipped outright.
	EndHeaders() (skipMoves bool)

	// Comment observes one move annotation.
	Comment(raw []byte)

	// BeginVariation reports whether the variation should be skipped.
	// Classifiers never traverse variations.
	BeginVariation() (skip bool)

	// EndGame runs the variant's end-of-game checks.
	EndGame()

	// Finalize returns the output row for an accepted game and resets the
	// row for the next one. At most one row is produced per game.
	Finalize() (row any, ok bool)
}

// Factory constructs a fresh classifier instance. Each file worker calls it
// once per file.
type Factory func() Classifier

// clockCommand is the enhanced-PGN command carrying remaining time.
const clockCommand = "clk"

// resultCode maps a parsed result to the 0/1/2 output code shared by the
// berserk and time-odds schemas: 0 black win, 1 draw, 2 white win. Unfinished
// games are not coded.
func resultCode(r header.Result) (code uint8, ok bool) {
	switch r {
	case header.ResultBlackWin:
		return 0, true
	case header.ResultDraw:
		return 1, true
	case header.ResultWhiteWin:
		return 2, true
	default:
		return 0, false
	}
}

// terminationCode maps a parsed termination to the 0/1 output code: 0 normal,
// 1 time forfeit. Aborted and rules-infraction games are not coded.
func terminationCode(t header.Termination) (code uint8, ok bool) {
	switch t {
	case header.TerminationNormal:
		return 0, true
	case header.TerminationTimeForfeit:
		return 1, true
	default:
		return 0, false
	}
}
