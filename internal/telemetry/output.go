package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// CSVWriter appends Samples to a CSV stream, writing the header once.
type CSVWriter struct {
	w             io.Writer
	closer        io.Closer
	headerWritten bool
}

// NewCSVWriter writes to w. The caller keeps ownership of w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: w}
}

// CreateCSV creates (or truncates) path, making parent directories.
// Returns nil if path is empty (output disabled).
func CreateCSV(path string) (*CSVWriter, error) {
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	return &CSVWriter{w: f, closer: f}, nil
}

// Write appends one row. A nil writer is a no-op.
func (cw *CSVWriter) Write(s Sample) error {
	if cw == nil {
		return nil
	}

	records := []Sample{s}
	if !cw.headerWritten {
		if err := gocsv.Marshal(records, cw.w); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
		cw.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, cw.w); err != nil {
		return fmt.Errorf("writing stats: %w", err)
	}
	return nil
}

// Close closes the underlying file if CreateCSV opened it.
func (cw *CSVWriter) Close() error {
	if cw == nil || cw.closer == nil {
		return nil
	}
	return cw.closer.Close()
}
