// Command berserk extracts lichess arena tournament games with time control
// 1+0 or 3+0 where at least one player berserked.
package main

import (
	"os"

	"github.com/okian/pgn2csv/cmd/internal/run"
	"github.com/okian/pgn2csv/internal/domain/classify"
)

func main() {
	os.Exit(run.Main("berserk", classify.NewBerserk))
}
