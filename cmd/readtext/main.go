// Command readtext loads a delimited text file with a caller-chosen dtype
// schema and prints the resulting table, adapted from
// oleg578-swiftcsv/examples/main.go (open a file, wrap it in a reader,
// print rows) generalized to the dtype-directed row reader.
package main

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/spf13/pflag"

	"github.com/dtypeio/readtext"
)

func main() {
	var (
		delimiter = pflag.StringP("delimiter", "d", ",", "field delimiter (single character, or \"ws\" for whitespace)")
		quote     = pflag.StringP("quote", "q", "\"", "quote character")
		comment   = pflag.StringP("comment", "c", "", "comment character (empty disables comments)")
		skiprows  = pflag.IntP("skiprows", "s", 0, "number of leading physical lines to discard")
		maxRows   = pflag.Int64P("max-rows", "n", -1, "maximum number of data rows to read (-1 for unlimited)")
		dtype     = pflag.String("dtype", "string", "column type for every column: int64, float64, or string")
	)
	pflag.Parse()

	if pflag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: readtext [flags] <file>")
		os.Exit(2)
	}

	f, err := os.Open(pflag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "readtext: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	dialect := readtext.DefaultDialect()
	if *delimiter == "ws" {
		dialect.DelimiterIsWhitespace = true
	} else if len(*delimiter) > 0 {
		dialect.Delimiter = []rune(*delimiter)[0]
	}
	if len(*quote) > 0 {
		dialect.Quote = []rune(*quote)[0]
	}
	if len(*comment) > 0 {
		dialect.Comment = []rune(*comment)[0]
	}

	schema, err := schemaFor(*dtype)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readtext: %v\n", err)
		os.Exit(1)
	}

	stream := readtext.NewFileStream(f, 0)
	table, err := readtext.Read(stream, dialect, nil, *skiprows, *maxRows, nil, schema)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readtext: %v\n", err)
		os.Exit(1)
	}

	printTable(table, *dtype)
}

func schemaFor(dtype string) (readtext.Schema, error) {
	switch dtype {
	case "int64":
		return readtext.Schema{Layout: readtext.Homogeneous, Fields: []readtext.FieldType{readtext.Int64Field(0, false)}}, nil
	case "float64":
		return readtext.Schema{Layout: readtext.Homogeneous, Fields: []readtext.FieldType{readtext.Float64Field(0, false)}}, nil
	case "string":
		return readtext.Schema{
			Layout:           readtext.Homogeneous,
			Fields:           []readtext.FieldType{readtext.NarrowStringField(0, 0)},
			AutoWidenStrings: true,
		}, nil
	default:
		return readtext.Schema{}, fmt.Errorf("unknown dtype %q (want int64, float64, or string)", dtype)
	}
}

func printTable(t *readtext.Table, dtype string) {
	fmt.Printf("%d rows x %d cols (row size %d bytes)\n", t.Rows, t.Cols, t.RowSize)
	for r := 0; r < t.Rows; r++ {
		for c := 0; c < t.Cols; c++ {
			if c > 0 {
				fmt.Print("\t")
			}
			fmt.Print(formatCell(t, r, c, dtype))
		}
		fmt.Println()
	}
}

func formatCell(t *readtext.Table, r, c int, dtype string) string {
	cell := t.Cell(r, c)
	switch dtype {
	case "int64":
		return fmt.Sprintf("%d", int64(binary.LittleEndian.Uint64(cell)))
	case "float64":
		return fmt.Sprintf("%g", math.Float64frombits(binary.LittleEndian.Uint64(cell)))
	default:
		n := 0
		for n < len(cell) && cell[n] != 0 {
			n++
		}
		return string(cell[:n])
	}
}
