package pgn

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

const readerBufferSize = 64 * 1024

// Reader reads games from a PGN stream one at a time.
// It is not safe for concurrent use.
type Reader struct {
	br          *bufio.Reader
	pending     []byte // pushed-back line, consumed before the underlying reader
	havePending bool

	// comment accumulation across lines
	comment []byte
}

// NewReader constructs a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReaderSize(r, readerBufferSize)}
}

// readLine returns the next line without its trailing newline.
func (r *Reader) readLine() ([]byte, error) {
	if r.havePending {
		r.havePending = false
		return r.pending, nil
	}
	line, err := r.br.ReadBytes('\n')
	if len(line) > 0 {
		line = bytes.TrimRight(line, "\r\n")
		return line, nil
	}
	return nil, err
}

// unreadLine pushes line back so the next readLine returns it.
func (r *Reader) unreadLine(line []byte) {
	r.pending = append(r.pending[:0], line...)
	r.havePending = true
}

// game terminator tokens at the end of movetext.
var terminators = [][]byte{
	[]byte("1-0"),
	[]byte("0-1"),
	[]byte("1/2-1/2"),
	[]byte("*"),
}

func isTerminator(tok []byte) bool {
	for _, t := range terminators {
		if bytes.Equal(tok, t) {
			return true
		}
	}
	return false
}

// gameState tracks one in-flight game while scanning lines.
type gameState struct {
	inHeaders         bool
	blankAfterHeaders bool
	skipMoves         bool
	inComment         bool
	varDepth          int
	skipVarDepth      int // depth of the variation being skipped, 0 if none
}

// ReadGame reads the next game from the stream and feeds it to v. It
// returns false when the stream is exhausted before another game starts.
// A malformed game is terminated at the next tag section so that one bad
// record only costs itself.
func (r *Reader) ReadGame(v Visitor) (bool, error) {
	started := false
	st := gameState{inHeaders: true}
	r.comment = r.comment[:0]

	for {
		line, err := r.readLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return false, fmt.Errorf("read pgn: %w", err)
			}
			if !started {
				return false, nil
			}
			if st.inHeaders {
				st.skipMoves = v.EndHeaders()
			}
			v.EndGame()
			return true, nil
		}

		trimmed := bytes.TrimSpace(line)

		if !started {
			// Skip leading blank lines and % escape lines between games.
			if len(trimmed) == 0 || trimmed[0] == '%' {
				continue
			}
			started = true
			v.BeginGame()
		}

		if st.inHeaders {
			if len(trimmed) == 0 {
				st.blankAfterHeaders = true
				continue
			}
			if isTagLine(trimmed) {
				if st.blankAfterHeaders {
					// A blank line followed by a new tag section: the game
					// had no movetext. Close it and hand the line to the
					// next ReadGame call.
					r.unreadLine(line)
					st.skipMoves = v.EndHeaders()
					v.EndGame()
					return true, nil
				}
				key, value, ok := parseTag(trimmed)
				if ok {
					v.Header(key, value)
				}
				continue
			}
			st.inHeaders = false
			st.skipMoves = v.EndHeaders()
		} else if !st.inComment && st.varDepth == 0 && isTagLine(trimmed) {
			// Movetext ran into the next game's tag section without a
			// terminator token.
			r.unreadLine(line)
			v.EndGame()
			return true, nil
		}

		if !st.inComment && len(trimmed) > 0 && trimmed[0] == '%' {
			continue
		}

		if r.scanMovetext(line, &st, v) {
			v.EndGame()
			return true, nil
		}
	}
}

// scanMovetext consumes one movetext line, returning true when the game's
// terminator token was reached.
func (r *Reader) scanMovetext(line []byte, st *gameState, v Visitor) bool {
	i := 0
	for i < len(line) {
		if st.inComment {
			j := bytes.IndexByte(line[i:], '}')
			if j < 0 {
				// Comment continues on the next line; a space stands in
				// for the newline.
				r.comment = append(r.comment, line[i:]...)
				r.comment = append(r.comment, ' ')
				return false
			}
			r.comment = append(r.comment, line[i:i+j]...)
			st.inComment = false
			if !st.skipMoves && st.skipVarDepth == 0 {
				v.Comment(r.comment)
			}
			r.comment = r.comment[:0]
			i += j + 1
			continue
		}

		c := line[i]
		switch {
		case c == '{':
			st.inComment = true
			r.comment = r.comment[:0]
			i++
		case c == ';':
			// Rest-of-line comment; carries no clock commands.
			return false
		case c == '(':
			st.varDepth++
			if st.skipVarDepth == 0 && !st.skipMoves {
				if v.BeginVariation() {
					st.skipVarDepth = st.varDepth
				}
			}
			i++
		case c == ')':
			if st.varDepth > 0 {
				if st.skipVarDepth == st.varDepth {
					st.skipVarDepth = 0
				}
				st.varDepth--
			}
			i++
		case c == ' ' || c == '\t':
			i++
		default:
			j := i
			for j < len(line) && !isTokenDelim(line[j]) {
				j++
			}
			tok := line[i:j]
			if st.varDepth == 0 && isTerminator(tok) {
				return true
			}
			i = j
		}
	}
	return false
}

func isTokenDelim(c byte) bool {
	switch c {
	case ' ', '\t', '{', '}', '(', ')', ';':
		return true
	}
	return false
}

// isTagLine reports whether a trimmed line looks like a [Key "value"] tag
// pair.
func isTagLine(trimmed []byte) bool {
	return len(trimmed) > 1 && trimmed[0] == '[' && trimmed[1] != '%' &&
		bytes.IndexByte(trimmed, '"') > 0
}

// parseTag splits a [Key "value"] line into its key and value. Escaped
// quotes and backslashes inside the value are unescaped.
func parseTag(trimmed []byte) (key, value []byte, ok bool) {
	body := trimmed[1:]

	sp := bytes.IndexAny(body, " \t")
	if sp <= 0 {
		return nil, nil, false
	}
	key = body[:sp]

	rest := bytes.TrimLeft(body[sp:], " \t")
	if len(rest) == 0 || rest[0] != '"' {
		return nil, nil, false
	}
	rest = rest[1:]

	// Fast path: no escapes before the closing quote.
	end := bytes.IndexByte(rest, '"')
	if end < 0 {
		return nil, nil, false
	}
	if bytes.IndexByte(rest[:end], '\\') < 0 {
		return key, rest[:end], true
	}

	// Slow path: unescape \" and \\ into a fresh buffer.
	value = make([]byte, 0, len(rest))
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case '\\':
			if i+1 < len(rest) {
				i++
				value = append(value, rest[i])
			}
		case '"':
			return key, value, true
		default:
			value = append(value, rest[i])
		}
	}
	return nil, nil, false
}

// ReadAll reads every remaining game in the stream into v, returning the
// number of games read.
func (r *Reader) ReadAll(v Visitor) (int, error) {
	n := 0
	for {
		ok, err := r.ReadGame(v)
		if err != nil {
			return n, err
		}
		if !ok {
			return n, nil
		}
		n++
	}
}
