package converter

// Utility for converting BED-like interval files to bedGraph tracks.

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/klauspost/compress/gzip"
	"github.com/matty234/bed-to-bedgraph/encoding/bed"
	"github.com/matty234/bed-to-bedgraph/encoding/bedgraph"
	"github.com/pkg/errors"
)

// ErrColumnOutOfRange is returned (wrapped, matchable with errors.Is)
// when the selected value column does not exist in the input's records.
var ErrColumnOutOfRange = errors.New("value column out of range")

// A ValueColumn selects which column of a BED record becomes the track
// value: either the score (fifth) column, or a 0-based index into the
// value columns after it. The zero value selects index 0. Negative
// indices do not exist; ParseValueColumn rejects them outright.
type ValueColumn struct {
	useScore bool
	index    int
}

// UseScore selects the score column.
var UseScore = ValueColumn{useScore: true}

// UseIndex selects the idx'th value column after the score column,
// counting from 0. It panics if idx is negative.
func UseIndex(idx int) ValueColumn {
	if idx < 0 {
		panic("converter: negative value column index")
	}
	return ValueColumn{index: idx}
}

// ParseValueColumn parses a value-column token: either the literal
// "score", or a non-negative integer indexing the columns after the
// score column.
func ParseValueColumn(token string) (ValueColumn, error) {
	if token == "score" {
		return UseScore, nil
	}
	idx, err := strconv.Atoi(token)
	if err != nil {
		return ValueColumn{}, fmt.Errorf("converter: invalid value column %q: want \"score\" or a non-negative integer", token)
	}
	if idx < 0 {
		return ValueColumn{}, fmt.Errorf("converter: invalid value column %d: negative indices are not allowed", idx)
	}
	return UseIndex(idx), nil
}

// value resolves the track value for rec. The caller has already
// range-checked index columns against the first record.
func (c ValueColumn) value(rec *bed.Record) (float64, error) {
	if c.useScore {
		return rec.Score, nil
	}
	v, err := strconv.ParseFloat(rec.Values[c.index], 64)
	if err != nil {
		return 0, errors.Wrapf(bed.ErrParse, "value column %d: unparsable value %q", c.index, rec.Values[c.index])
	}
	return v, nil
}

// checkRange validates an index column against rec's shape. It runs
// against the first record only; the input is assumed to keep a uniform
// column count, so later records are trusted.
func (c ValueColumn) checkRange(rec *bed.Record) error {
	if c.useScore || c.index < len(rec.Values) {
		return nil
	}
	return errors.Wrapf(ErrColumnOutOfRange,
		"could not find value column %d in record with %d value column(s); indices are 0-based and column 0 is the first column after the score",
		c.index, len(rec.Values))
}

// Convert streams BED records from in and writes one bedGraph line per
// record to out, preceded by the track header. The header is written
// even when the input is empty, and buffered output is flushed on every
// exit path, including failures.
func Convert(in io.Reader, out io.Writer, col ValueColumn) (err error) {
	w, err := bedgraph.NewWriter(out)
	if err != nil {
		return err
	}
	defer func() {
		if e := w.Flush(); e != nil && err == nil {
			err = e
		}
	}()
	scanner := bed.NewScanner(in)
	var (
		rec   bed.Record
		first = true
	)
	for scanner.Scan(&rec) {
		if first {
			first = false
			if err = col.checkRange(&rec); err != nil {
				return err
			}
		}
		var v float64
		if v, err = col.value(&rec); err != nil {
			return errors.Wrapf(err, "line %d", scanner.Line())
		}
		if err = w.Write(&bedgraph.Record{
			Chrom: rec.Chrom,
			Start: rec.Start,
			End:   rec.End,
			Value: v,
		}); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// ConvertPaths converts the BED file at inPath into a bedGraph track at
// outPath. An empty outPath writes the track to standard output. An
// outPath with a gzip extension is compressed transparently; inPath is
// always read as plain text.
func ConvertPaths(ctx context.Context, inPath, outPath string, col ValueColumn) (err error) {
	in, err := file.Open(ctx, inPath)
	if err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, in, &err)

	if outPath == "" {
		return Convert(in.Reader(ctx), os.Stdout, col)
	}
	out, err := file.Create(ctx, outPath)
	if err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, out, &err)

	w := io.Writer(out.Writer(ctx))
	switch fileio.DetermineType(outPath) {
	case fileio.Gzip:
		gz := gzip.NewWriter(w)
		defer func() {
			if e := gz.Close(); e != nil && err == nil {
				err = e
			}
		}()
		w = gz
	}
	return Convert(in.Reader(ctx), w, col)
}
