package source

import "errors"

// Sentinel kinds for source errors.
var (
	ErrDiscover = errors.New("list pgn dir failed")
	ErrOpen     = errors.New("open pgn source failed")
)
