// Command gen-pgns writes a synthetic lichess-style PGN file for smoke
// testing the classifiers.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/okian/pgn2csv/internal/pgngen"
)

// Default generation constants.
const (
	defaultGames = 10000
	defaultPlies = 60
	defaultSeed  = 1
)

func main() {
	var (
		games  = flag.Int("games", defaultGames, "Number of games to generate")
		plies  = flag.Int("plies", defaultPlies, "Maximum plies per game")
		seed   = flag.Int64("seed", defaultSeed, "Random seed for reproducible output")
		output = flag.String("output", "games.pgn", "Output PGN file")
	)
	flag.Parse()

	f, err := os.Create(*output)
	if err != nil {
		fmt.Fprintln(os.Stderr, "create output:", err)
		os.Exit(1)
	}

	g := pgngen.New(
		pgngen.WithGames(*games),
		pgngen.WithMaxPlies(*plies),
		pgngen.WithSeed(*seed),
	)
	n, err := g.WriteTo(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generate:", err)
		_ = f.Close()
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "close output:", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d games (%d bytes) to %s\n", *games, n, *output)
}
