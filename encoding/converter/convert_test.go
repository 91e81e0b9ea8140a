package converter_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/testutil"
	"github.com/klauspost/compress/gzip"
	"github.com/matty234/bed-to-bedgraph/encoding/bed"
	"github.com/matty234/bed-to-bedgraph/encoding/converter"
	"github.com/stretchr/testify/require"
)

const header = "track type=bedGraph\n"

func convert(t *testing.T, in string, col converter.ValueColumn) (string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	err := converter.Convert(strings.NewReader(in), out, col)
	return out.String(), err
}

func TestConvertScore(t *testing.T) {
	got, err := convert(t, "chrom1\t10\t20\tnameA\t5.0\n", converter.UseScore)
	require.NoError(t, err)
	require.Equal(t, header+"chrom1\t10\t20\t5\n", got)
}

func TestConvertValueColumns(t *testing.T) {
	const in = "chrom1\t10\t20\tnameA\t5.0\t7.5\t9.0\n"
	got, err := convert(t, in, converter.UseIndex(0))
	require.NoError(t, err)
	require.Equal(t, header+"chrom1\t10\t20\t7.5\n", got)

	got, err = convert(t, in, converter.UseIndex(1))
	require.NoError(t, err)
	require.Equal(t, header+"chrom1\t10\t20\t9\n", got)
}

func TestConvertPreservesOrderAndCount(t *testing.T) {
	const in = "chr1\t0\t10\ta\t1\n" +
		"chr1\t10\t30\tb\t2.5\n" +
		"chr2\t5\t6\tc\t-3\n"
	got, err := convert(t, in, converter.UseScore)
	require.NoError(t, err)
	require.Equal(t, header+
		"chr1\t0\t10\t1\n"+
		"chr1\t10\t30\t2.5\n"+
		"chr2\t5\t6\t-3\n", got)
}

func TestConvertEmptyInput(t *testing.T) {
	got, err := convert(t, "", converter.UseScore)
	require.NoError(t, err)
	require.Equal(t, header, got)
}

func TestConvertBadScoreDefaultsToZero(t *testing.T) {
	got, err := convert(t, "chrom1\t10\t20\tnameA\tnot-a-number\n", converter.UseScore)
	require.NoError(t, err)
	require.Equal(t, header+"chrom1\t10\t20\t0\n", got)
}

func TestConvertColumnOutOfRange(t *testing.T) {
	// Two value columns; index 2 does not exist. The run halts before
	// the record's line is emitted, but the already-written header
	// stays.
	const in = "chrom1\t10\t20\tnameA\t5.0\t7.5\t9.0\n"
	got, err := convert(t, in, converter.UseIndex(2))
	require.ErrorIs(t, err, converter.ErrColumnOutOfRange)
	require.Contains(t, err.Error(), "value column 2")
	require.Contains(t, err.Error(), "0-based")
	require.Equal(t, header, got)
}

func TestConvertUnparsableValue(t *testing.T) {
	_, err := convert(t, "chrom1\t10\t20\tnameA\t5.0\tabc\n", converter.UseIndex(0))
	require.ErrorIs(t, err, bed.ErrParse)
	require.Contains(t, err.Error(), `"abc"`)
}

func TestConvertMalformedRecord(t *testing.T) {
	got, err := convert(t, "chr1\t10\t20\n", converter.UseScore)
	require.True(t, errors.Is(err, bed.ErrMalformedRecord), "got %v", err)
	require.Equal(t, header, got)
}

func TestParseValueColumn(t *testing.T) {
	col, err := converter.ParseValueColumn("score")
	require.NoError(t, err)
	require.Equal(t, converter.UseScore, col)

	col, err = converter.ParseValueColumn("3")
	require.NoError(t, err)
	require.Equal(t, converter.UseIndex(3), col)

	_, err = converter.ParseValueColumn("-1")
	require.Error(t, err)
	_, err = converter.ParseValueColumn("first")
	require.Error(t, err)
}

func TestConvertPaths(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	ctx := context.Background()

	bedPath := filepath.Join(tempDir, "test.bed")
	require.NoError(t, os.WriteFile(bedPath, []byte("chr1\t1\t2\tn\t0.5\n"), 0600))

	outPath := filepath.Join(tempDir, "test.bedgraph")
	require.NoError(t, converter.ConvertPaths(ctx, bedPath, outPath, converter.UseScore))
	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, header+"chr1\t1\t2\t0.5\n", string(got))
}

func TestConvertPathsGzip(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	ctx := context.Background()

	bedPath := filepath.Join(tempDir, "test.bed")
	require.NoError(t, os.WriteFile(bedPath, []byte("chr1\t1\t2\tn\t0.5\n"), 0600))

	outPath := filepath.Join(tempDir, "test.bedgraph.gz")
	require.NoError(t, converter.ConvertPaths(ctx, bedPath, outPath, converter.UseScore))

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close() // nolint: errcheck
	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = buf.ReadFrom(gz)
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.Equal(t, header+"chr1\t1\t2\t0.5\n", buf.String())
}

func TestConvertPathsMissingInput(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	ctx := context.Background()

	err := converter.ConvertPaths(ctx, filepath.Join(tempDir, "no-such.bed"), filepath.Join(tempDir, "out"), converter.UseScore)
	require.Error(t, err)
}
