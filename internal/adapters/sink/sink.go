// Package sink writes accepted rows to per-file CSV outputs.
//
// Each sink has exactly one producer, the file worker that owns it, so no
// locking is needed.
package sink

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/jszwec/csvutil"
)

// Sink appends rows in file order.
type Sink interface {
	// Append writes one row. The header line is written before the first
	// row.
	Append(row any) error

	// Close flushes and closes the sink.
	Close() error
}

// CSV implements Sink over a csvutil encoder.
type CSV struct {
	f   *os.File
	w   *csv.Writer
	enc *csvutil.Encoder
}

// NewCSV creates (or truncates) the CSV file at path.
func NewCSV(path string) (*CSV, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreate, err)
	}
	w := csv.NewWriter(f)
	return &CSV{f: f, w: w, enc: csvutil.NewEncoder(w)}, nil
}

// Append writes one row.
func (c *CSV) Append(row any) error {
	if err := c.enc.Encode(row); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

// Close flushes buffered rows and closes the file.
func (c *CSV) Close() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		_ = c.f.Close()
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := c.f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
