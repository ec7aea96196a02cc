// Command timeodds extracts lichess games where one player started with
// more clock time than the other, almost always from berserking.
package main

import (
	"os"

	"github.com/okian/pgn2csv/cmd/internal/run"
	"github.com/okian/pgn2csv/internal/domain/classify"
)

func main() {
	os.Exit(run.Main("timeodds", classify.NewTimeOdds))
}
