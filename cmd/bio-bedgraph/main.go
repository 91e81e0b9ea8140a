package main

// See doc.go for documentation

import (
	"flag"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/matty234/bed-to-bedgraph/encoding/converter"
)

var (
	input       = flag.String("input", "", "Input BED path (required)")
	output      = flag.String("output", "", "Output bedGraph path; empty writes to standard output. A .gz suffix gzip-compresses the output")
	valueColumn = flag.String("value-column", "0", "Column holding the track value: 'score', or a 0-based index into the columns after the score column")
)

func main() {
	shutdown := grail.Init()
	defer shutdown()

	if *input == "" {
		log.Fatalf("Missing required -input flag")
	}
	col, err := converter.ParseValueColumn(*valueColumn)
	if err != nil {
		log.Fatalf("%v", err)
	}
	ctx := vcontext.Background()
	if err := converter.ConvertPaths(ctx, *input, *output, col); err != nil {
		log.Fatalf("%v", err)
	}
	log.Debug.Printf("exiting")
}
