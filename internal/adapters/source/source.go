// Package source discovers PGN input files and opens them as uncompressed
// byte streams.
package source

import (
	"compress/bzip2"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Compression enumerates the supported container formats, selected by file
// extension.
type Compression int

const (
	None Compression = iota
	Bzip2
	Zstd
)

// suffixes recognized by Discover, in the order they are stripped when
// deriving the CSV path.
var suffixes = []string{".pgn", ".pgn.bz2", ".pgn.zst"}

// Source is one input file.
type Source struct {
	path string
}

// Discover lists the PGN files directly inside dir (no recursion): plain
// .pgn plus bzip2 and zstd compressed dumps.
func Discover(dir string) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDiscover, err)
	}

	var sources []Source
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		for _, suffix := range suffixes {
			if strings.HasSuffix(name, suffix) {
				sources = append(sources, Source{path: filepath.Join(dir, name)})
				break
			}
		}
	}
	return sources, nil
}

// Path returns the file path of the source.
func (s Source) Path() string {
	return s.path
}

// Compression returns the container format implied by the file extension.
func (s Source) Compression() Compression {
	switch filepath.Ext(s.path) {
	case ".bz2":
		return Bzip2
	case ".zst":
		return Zstd
	default:
		return None
	}
}

// CSVPath returns the output path for this source inside csvDir: the same
// base name with the .pgn[.bz2|.zst] suffix replaced by .csv.
func (s Source) CSVPath(csvDir string) string {
	name := filepath.Base(s.path)
	name = strings.TrimSuffix(name, ".bz2")
	name = strings.TrimSuffix(name, ".zst")
	name = strings.TrimSuffix(name, ".pgn")
	return filepath.Join(csvDir, name+".csv")
}

// Open returns the decompressed byte stream of the source. Closing the
// returned reader closes the underlying file.
func (s Source) Open() (io.ReadCloser, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}

	switch s.Compression() {
	case Bzip2:
		// compress/bzip2 transparently handles the multi-stream files
		// lichess publishes.
		return &streamCloser{Reader: bzip2.NewReader(f), closers: []io.Closer{f}}, nil
	case Zstd:
		dec, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("%w: %v", ErrOpen, err)
		}
		return &streamCloser{Reader: dec, closers: []io.Closer{closerFunc(func() error {
			dec.Close()
			return nil
		}), f}}, nil
	default:
		return f, nil
	}
}

// streamCloser pairs a decompressing reader with the resources it sits on.
type streamCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *streamCloser) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
