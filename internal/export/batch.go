package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
	"github.com/zarlcorp/zprofile/internal/identity"
)

// BatchWriter streams many profiles as CSV (one header, one row each) or
// JSON Lines. It is not safe for concurrent use.
type BatchWriter struct {
	format Format
	zw     *lz4.Writer
	csv    *csv.Writer
	enc    *json.Encoder
	header bool
	count  int
}

// NewBatchWriter wraps w. With compress set the output is a single LZ4
// frame, finished by Close.
func NewBatchWriter(w io.Writer, f Format, compress bool) (*BatchWriter, error) {
	if f != FormatCSV && f != FormatJSONL {
		return nil, fmt.Errorf("batch writer: %w: %q", ErrUnknownFormat, f)
	}

	bw := &BatchWriter{format: f}
	if compress {
		bw.zw = lz4.NewWriter(w)
		w = bw.zw
	}

	switch f {
	case FormatCSV:
		bw.csv = csv.NewWriter(w)
	case FormatJSONL:
		bw.enc = json.NewEncoder(w)
	}
	return bw, nil
}

// Write appends one profile.
func (b *BatchWriter) Write(p identity.Profile) error {
	switch b.format {
	case FormatCSV:
		if !b.header {
			if err := b.csv.Write(Columns); err != nil {
				return fmt.Errorf("write header: %w", err)
			}
			b.header = true
		}
		if err := b.csv.Write(Record(p)); err != nil {
			return fmt.Errorf("write record %d: %w", b.count, err)
		}
	case FormatJSONL:
		if err := b.enc.Encode(p); err != nil {
			return fmt.Errorf("write record %d: %w", b.count, err)
		}
	}
	b.count++
	return nil
}

// Count returns the number of profiles written.
func (b *BatchWriter) Count() int {
	return b.count
}

// Close flushes buffered output and ends the LZ4 frame. It does not close
// the underlying writer.
func (b *BatchWriter) Close() error {
	if b.csv != nil {
		if !b.header {
			if err := b.csv.Write(Columns); err != nil {
				return fmt.Errorf("write header: %w", err)
			}
			b.header = true
		}
		b.csv.Flush()
		if err := b.csv.Error(); err != nil {
			return fmt.Errorf("flush csv: %w", err)
		}
	}
	if b.zw != nil {
		if err := b.zw.Close(); err != nil {
			return fmt.Errorf("close lz4: %w", err)
		}
	}
	return nil
}

// WriteBatch writes all profiles to w in one call.
func WriteBatch(w io.Writer, f Format, profiles []identity.Profile, compress bool) error {
	bw, err := NewBatchWriter(w, f, compress)
	if err != nil {
		return err
	}
	for _, p := range profiles {
		if err := bw.Write(p); err != nil {
			return err
		}
	}
	return bw.Close()
}
