// Package bed contains code for streaming BED-like interval files: tab
// separated text with at least chrom/start/end/name/score columns,
// optionally followed by additional value columns. For example:
//
// chr1	100	200	exon1	4.5	0.2	0.9
// chr1	300	420	exon2	7	1.1	0.4
//
// Coordinate ordering is not validated and overlapping intervals are
// not merged; records are surfaced exactly as they appear.
package bed

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrMalformedRecord is returned when a line has fewer than the five
	// required BED columns.
	ErrMalformedRecord = errors.New("malformed BED record")
	// ErrParse is returned when a coordinate column holds non-numeric
	// text.
	ErrParse = errors.New("unparsable BED field")
)

// A Record is one BED-like interval line. Columns past the fifth are
// retained unparsed, in order, in Values.
type Record struct {
	Chrom string
	Start uint32
	End   uint32
	Name  string
	Score float64
	// Values holds the raw text of columns six onward. Callers parse
	// entries lazily, only when selected.
	Values []string
}

// requiredFields names the mandatory leading columns, in order. A short
// line's error message reports the first one missing.
var requiredFields = [...]string{"chrom", "start", "end", "name", "score"}

var errEOF = errors.New("eof")

// Scanner provides a convenient interface for reading BED-like records.
// The Scan method advances to the next record, returning a boolean
// indicating whether the scan succeeded. Scanners are not threadsafe.
//
// Scanner requires the start and end columns to parse as unsigned
// 32-bit integers. A score column that fails to parse as a float is not
// an error: the record's Score silently becomes 0. Chrom and name are
// taken verbatim, with no validation.
type Scanner struct {
	b    *bufio.Scanner
	line int
	err  error
}

// NewScanner constructs a new Scanner that reads BED records from the
// provided reader.
func NewScanner(r io.Reader) *Scanner {
	// Note that bufio.Scanner does not handle very long lines unless we
	// specify an adequate buffer size in advance; it does not
	// auto-resize. Shouldn't matter for BED files, though.
	return &Scanner{b: bufio.NewScanner(r)}
}

// Scan the next record into the provided record. Scan returns a boolean
// indicating whether the scan succeeded. Once Scan returns false, it
// never returns true again. Upon completion, the user should check the
// Err method to determine whether scanning stopped because of an error
// or because the end of the stream was reached.
func (s *Scanner) Scan(rec *Record) bool {
	if s.err != nil {
		return false
	}
	if !s.b.Scan() {
		if s.err = s.b.Err(); s.err == nil {
			s.err = errEOF
		}
		return false
	}
	s.line++
	fields := strings.Split(s.b.Text(), "\t")
	if len(fields) < len(requiredFields) {
		s.err = errors.Wrapf(ErrMalformedRecord,
			"line %d has %d column(s), missing required column %q",
			s.line, len(fields), requiredFields[len(fields)])
		return false
	}
	rec.Chrom = fields[0]
	start, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		s.err = errors.Wrapf(ErrParse, "line %d: invalid start coordinate %q", s.line, fields[1])
		return false
	}
	rec.Start = uint32(start)
	end, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		s.err = errors.Wrapf(ErrParse, "line %d: invalid end coordinate %q", s.line, fields[2])
		return false
	}
	rec.End = uint32(end)
	rec.Name = fields[3]
	// A malformed score is not fatal, unlike the coordinates: downstream
	// tools treat it as a missing measurement, not a broken interval.
	if rec.Score, err = strconv.ParseFloat(fields[4], 64); err != nil {
		rec.Score = 0
	}
	rec.Values = fields[5:]
	return true
}

// Err returns the scanning error, if any. End of input is not an error.
func (s *Scanner) Err() error {
	if s.err == errEOF {
		return nil
	}
	return s.err
}

// Line returns the 1-based number of the most recently scanned line.
func (s *Scanner) Line() int {
	return s.line
}
