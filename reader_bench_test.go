package readtext

import (
	"strconv"
	"strings"
	"testing"
)

func buildIntCSV(rows, cols int) string {
	var b strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(r*cols + c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func BenchmarkReadHomogeneousInt64(b *testing.B) {
	input := buildIntCSV(10000, 8)
	schema := int64Schema()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		stream := NewFileStream(strings.NewReader(input), 0)
		if _, err := Read(stream, DefaultDialect(), nil, 0, -1, nil, schema); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTokenizerOnly(b *testing.B) {
	input := buildIntCSV(10000, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		stream := NewFileStream(strings.NewReader(input), 0)
		tok := NewTokenizer(stream, DefaultDialect())
		for {
			if err := tok.NextRow(); err != nil {
				break
			}
		}
	}
}

func BenchmarkReadAutoWidenStrings(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 5000; i++ {
		sb.WriteString("some,moderately,long,strings,here\n")
	}
	input := sb.String()
	schema := narrowStringSchema(0)
	schema.AutoWidenStrings = true
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		stream := NewFileStream(strings.NewReader(input), 0)
		if _, err := Read(stream, DefaultDialect(), nil, 0, -1, nil, schema); err != nil {
			b.Fatal(err)
		}
	}
}
