// Package clock extracts clock readings from enhanced-PGN move comments.
//
// Lichess annotates each move with a command string like:
//
//	{ [%eval 0.17] [%clk 0:00:30] }
//
// The command format (see enpassant.dk's enhanced PGN notes) is a leading
// "[%", an alphanumeric command name, a space, a comma-delimited parameter
// list, and a closing "]".
package clock

import (
	"bytes"
	"fmt"
	"strconv"
)

// Command is one embedded comment command, e.g. name "clk" with a single
// "0:00:30" parameter.
type Command struct {
	Name   []byte
	Params [][]byte
}

// NextCommand scans comment for the next embedded command. It returns the
// command and the remainder of the comment after it, or ok=false when no
// further well-formed command exists.
func NextCommand(comment []byte) (cmd Command, rest []byte, ok bool) {
	start := bytes.Index(comment, []byte("[%"))
	if start < 0 {
		return Command{}, nil, false
	}
	end := bytes.IndexByte(comment[start:], ']')
	if end < 0 {
		return Command{}, nil, false
	}
	end += start

	body := comment[start+2 : end]
	name, params, found := bytes.Cut(body, []byte(" "))
	if !found {
		return Command{}, nil, false
	}
	return Command{Name: name, Params: bytes.Split(params, []byte(","))}, comment[end:], true
}

// Time is a remaining-time reading in H:MM:SS form.
type Time struct {
	Hours   uint16
	Minutes uint8
	Seconds uint8
}

// TotalSeconds converts the reading to whole seconds.
func (t Time) TotalSeconds() uint32 {
	return uint32(t.Hours)*3600 + uint32(t.Minutes)*60 + uint32(t.Seconds)
}

// parseTime parses an H:MM:SS value.
func parseTime(raw []byte) (Time, error) {
	parts := bytes.Split(raw, []byte(":"))
	if len(parts) != 3 {
		return Time{}, fmt.Errorf("%w: expected H:MM:SS, got %q", ErrClockFormat, raw)
	}
	h, err := strconv.ParseUint(string(parts[0]), 10, 16)
	if err != nil {
		return Time{}, fmt.Errorf("%w: %v", ErrClockFormat, err)
	}
	m, err := strconv.ParseUint(string(parts[1]), 10, 8)
	if err != nil {
		return Time{}, fmt.Errorf("%w: %v", ErrClockFormat, err)
	}
	s, err := strconv.ParseUint(string(parts[2]), 10, 8)
	if err != nil {
		return Time{}, fmt.Errorf("%w: %v", ErrClockFormat, err)
	}
	return Time{Hours: uint16(h), Minutes: uint8(m), Seconds: uint8(s)}, nil
}

// Extractor recognizes one comment command and parses its parameter as a
// clock reading. Each classifier instance holds its own Extractor, so there
// is no shared matcher state between concurrent file workers.
type Extractor struct {
	name []byte
}

// NewExtractor returns an Extractor for the given command name,
// conventionally "clk".
func NewExtractor(command string) Extractor {
	return Extractor{name: []byte(command)}
}

// Extract returns the first matching clock reading in comment. It fails when
// no matching command is present or its parameter is not a valid H:MM:SS
// value.
func (e Extractor) Extract(comment []byte) (Time, error) {
	rest := comment
	for {
		cmd, next, ok := NextCommand(rest)
		if !ok {
			return Time{}, fmt.Errorf("%w: no %s command in comment", ErrNoClock, e.name)
		}
		rest = next
		if !bytes.Equal(cmd.Name, e.name) {
			continue
		}
		if len(cmd.Params) != 1 {
			return Time{}, fmt.Errorf("%w: expected a single parameter", ErrClockFormat)
		}
		return parseTime(cmd.Params[0])
	}
}
