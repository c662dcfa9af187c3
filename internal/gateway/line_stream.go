package gateway

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"parcel-pricing/internal/domain"
)

// LineSource implements the usecase.RecordSource interface over a
// line-oriented stream. Blank lines are yielded like any other record;
// deciding what to do with them is the processor's job.
type LineSource struct {
	scanner *bufio.Scanner
	closer  io.Closer
}

// NewLineSource creates a source reading from r.
func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{scanner: bufio.NewScanner(r)}
}

// OpenLineSource creates a source reading from a file. Close releases
// the file.
func OpenLineSource(path string) (*LineSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	source := NewLineSource(file)
	source.closer = file
	return source, nil
}

// Next returns the next input line, or io.EOF once the stream is done.
func (s *LineSource) Next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("error reading input: %w", err)
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

// Close releases the underlying file, if the source owns one.
func (s *LineSource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// LineWriter implements the usecase.ResultSink interface, rendering one
// formatted line per result.
type LineWriter struct {
	w *bufio.Writer
}

// NewLineWriter creates a sink writing to w.
func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{w: bufio.NewWriter(w)}
}

// Write renders one result line.
func (lw *LineWriter) Write(ctx context.Context, result domain.PricedResult) error {
	if _, err := fmt.Fprintln(lw.w, result.Line()); err != nil {
		return fmt.Errorf("failed to write result line: %w", err)
	}
	return nil
}

// Flush writes out any buffered lines.
func (lw *LineWriter) Flush() error {
	return lw.w.Flush()
}
