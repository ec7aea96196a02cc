// Command blitz extracts rated blitz games as a header projection.
package main

import (
	"os"

	"github.com/okian/pgn2csv/cmd/internal/run"
	"github.com/okian/pgn2csv/internal/domain/classify"
)

func main() {
	os.Exit(run.Main("blitz", classify.NewBlitz))
}
