package sink

import "errors"

// Sentinel kinds for sink errors.
var (
	ErrCreate = errors.New("create csv sink failed")
	ErrWrite  = errors.New("write csv row failed")
)
