// Package bedgraph contains code for writing bedGraph track files: a
// fixed declarative header line followed by one
// chrom/start/end/value line per interval. See
// https://genome.ucsc.edu/goldenPath/help/bedgraph.html.
package bedgraph

import (
	"io"

	"github.com/grailbio/base/tsv"
)

// Header is the track declaration emitted before any records.
const Header = "track type=bedGraph"

// A Record pairs one genomic interval with its track value.
type Record struct {
	Chrom string
	Start uint32
	End   uint32
	Value float64
}

// Writer is a bedGraph file writer.
type Writer struct {
	w *tsv.Writer
}

// NewWriter constructs a new bedGraph writer that writes records to the
// underlying writer w. The track header is written and flushed
// immediately; an error is returned if that write fails.
func NewWriter(w io.Writer) (*Writer, error) {
	tw := tsv.NewWriter(w)
	tw.WriteString(Header)
	if err := tw.EndLine(); err != nil {
		return nil, err
	}
	// Flush so that the header reaches the sink even if no record is
	// ever written.
	if err := tw.Flush(); err != nil {
		return nil, err
	}
	return &Writer{w: tw}, nil
}

// Write writes the record r as one track line. Values render in
// shortest round-trip decimal form, so integral values carry no
// fractional digits. An error is returned if the write failed.
func (w *Writer) Write(r *Record) error {
	w.w.WriteString(r.Chrom)
	w.w.WriteUint32(r.Start)
	w.w.WriteUint32(r.End)
	w.w.WriteFloat64(r.Value, 'g', -1)
	return w.w.EndLine()
}

// Flush writes any buffered records to the underlying writer. Callers
// must flush on every exit path, including early aborts.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
