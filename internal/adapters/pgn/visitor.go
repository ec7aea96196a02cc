// Package pgn implements a streaming, forward-only PGN reader.
//
// The reader tokenizes one game at a time and drives a Visitor with the
// game's events in order: BeginGame, Header per tag pair, EndHeaders,
// Comment per movetext annotation, EndGame. It never builds a game tree and
// never validates moves; movetext tokens other than comments, variations
// and the game terminator are discarded unseen. Memory use is bounded by
// the longest input line.
package pgn

// Visitor receives one game's events in order. Byte slices passed to
// Header and Comment are only valid for the duration of the call.
type Visitor interface {
	// BeginGame marks the start of a game.
	BeginGame()

	// Header delivers one tag pair from the tag section.
	Header(key, value []byte)

	// EndHeaders marks the end of the tag section. Returning true skips the
	// remaining movetext of this game; no further Comment or BeginVariation
	// calls are made before EndGame.
	EndHeaders() (skipMoves bool)

	// Comment delivers the body of one {...} movetext comment, braces
	// excluded.
	Comment(raw []byte)

	// BeginVariation marks a parenthesized side-variation. Returning true
	// skips everything up to the matching close parenthesis.
	BeginVariation() (skip bool)

	// EndGame marks the end of a game.
	EndGame()
}
