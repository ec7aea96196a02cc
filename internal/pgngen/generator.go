// Package pgngen generates synthetic lichess-style PGN files for smoke
// testing and benchmarking the classifiers without hauling real dumps
// around.
package pgngen

import (
	"fmt"
	"io"
	"math/rand"
)

// Default generation constants.
const (
	defaultGames   = 1000
	defaultPlies   = 40
	berserkOdds    = 4 // one game in four gets a berserking side
	tournamentOdds = 2 // one game in two is an arena game
)

var timeControls = []struct {
	initial   uint32
	increment uint32
	name      string
}{
	{60, 0, "Bullet"},
	{180, 0, "Blitz"},
	{300, 0, "Blitz"},
	{600, 5, "Rapid"},
}

var results = []string{"1-0", "0-1", "1/2-1/2"}

// Generator writes synthetic games. The zero value is not usable; use New.
type Generator struct {
	games int
	plies int
	rng   *rand.Rand
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithGames sets how many games to generate.
func WithGames(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.games = n
		}
	}
}

// WithMaxPlies bounds the movetext length of each game.
func WithMaxPlies(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.plies = n
		}
	}
}

// WithSeed makes the output reproducible.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// New constructs a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		games: defaultGames,
		plies: defaultPlies,
		rng:   rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// moves is a pool of plausible-looking SAN tokens; classifiers never read
// them, only the clock comments matter.
var moves = []string{"e4", "d4", "Nf3", "c4", "e5", "c5", "Nf6", "d5", "g6", "Bb4"}

// WriteTo writes every generated game to w.
func (g *Generator) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i := 0; i < g.games; i++ {
		n, err := g.writeGame(w, i)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (g *Generator) writeGame(w io.Writer, idx int) (int64, error) {
	tc := timeControls[g.rng.Intn(len(timeControls))]

	event := fmt.Sprintf("Rated %s game", tc.name)
	if g.rng.Intn(tournamentOdds) == 0 {
		event = fmt.Sprintf("Rated %s tournament https://lichess.org/tournament/%08x", tc.name, g.rng.Uint32())
	}

	whiteStart := tc.initial
	blackStart := tc.initial
	if g.rng.Intn(berserkOdds) == 0 {
		if g.rng.Intn(2) == 0 {
			whiteStart /= 2
		} else {
			blackStart /= 2
		}
	}

	result := results[g.rng.Intn(len(results))]
	termination := "Normal"
	if g.rng.Intn(3) == 0 {
		termination = "Time forfeit"
	}

	header := fmt.Sprintf(`[Event "%s"]
[Site "https://lichess.org/%08x"]
[White "player%d"]
[Black "player%d"]
[Result "%s"]
[UTCDate "2024.01.01"]
[UTCTime "00:00:00"]
[WhiteElo "%d"]
[BlackElo "%d"]
[WhiteRatingDiff "%+d"]
[BlackRatingDiff "%+d"]
[TimeControl "%d+%d"]
[Termination "%s"]

`,
		event, g.rng.Uint32(), idx*2, idx*2+1, result,
		1000+g.rng.Intn(1800), 1000+g.rng.Intn(1800),
		g.rng.Intn(21)-10, g.rng.Intn(21)-10,
		tc.initial, tc.increment, termination)

	n, err := io.WriteString(w, header)
	total := int64(n)
	if err != nil {
		return total, err
	}

	plies := 2 + g.rng.Intn(g.plies)
	whiteClk, blackClk := whiteStart, blackStart
	for ply := 0; ply < plies; ply++ {
		move := moves[g.rng.Intn(len(moves))]
		var line string
		if ply%2 == 0 {
			// The first sample of each side is its starting time, the way
			// lichess stamps the clock before any time is spent.
			if ply > 0 {
				whiteClk = tick(whiteClk, tc.increment, g.rng)
			}
			line = fmt.Sprintf("%d. %s { [%%clk %s] } ", ply/2+1, move, formatClock(whiteClk))
		} else {
			if ply > 1 {
				blackClk = tick(blackClk, tc.increment, g.rng)
			}
			line = fmt.Sprintf("%d... %s { [%%clk %s] } ", ply/2+1, move, formatClock(blackClk))
		}
		n, err = io.WriteString(w, line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	n, err = io.WriteString(w, result+"\n\n")
	total += int64(n)
	return total, err
}

// tick spends a few seconds of clock and credits the increment, never going
// below one second.
func tick(clk, increment uint32, rng *rand.Rand) uint32 {
	spent := uint32(rng.Intn(5))
	if spent >= clk {
		return 1 + increment
	}
	return clk - spent + increment
}

func formatClock(seconds uint32) string {
	return fmt.Sprintf("%d:%02d:%02d", seconds/3600, seconds/60%60, seconds%60)
}
