package readtext

import (
	"io"
	"strings"
	"testing"
)

func collectRows(t *testing.T, input string, dialect Dialect) [][]string {
	t.Helper()
	stream := NewFileStream(strings.NewReader(input), 0)
	tok := NewTokenizer(stream, dialect)
	var rows [][]string
	for {
		err := tok.NextRow()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("NextRow: %v", err)
		}
		row := make([]string, tok.NumFields())
		for i := range row {
			text, _ := tok.Field(i)
			row[i] = string(text)
		}
		rows = append(rows, row)
	}
	return rows
}

func TestTokenizerRows(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		dialect Dialect
		want    [][]string
	}{
		{
			name:    "basicRecords",
			input:   "a,b,c\n1,2,3\n",
			dialect: DefaultDialect(),
			want:    [][]string{{"a", "b", "c"}, {"1", "2", "3"}},
		},
		{
			name:    "finalRecordWithoutTerminator",
			input:   "a,b,c\n1,2,3",
			dialect: DefaultDialect(),
			want:    [][]string{{"a", "b", "c"}, {"1", "2", "3"}},
		},
		{
			name:    "windowsLineEndings",
			input:   "a,b\r\n1,2\r\n",
			dialect: DefaultDialect(),
			want:    [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			name:    "bareCarriageReturn",
			input:   "a,b\r1,2\r",
			dialect: DefaultDialect(),
			want:    [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			name:    "quotedComma",
			input:   "\"a,b\",c\n",
			dialect: DefaultDialect(),
			want:    [][]string{{"a,b", "c"}},
		},
		{
			name:    "escapedQuote",
			input:   "\"a\"\"b\",c\n",
			dialect: DefaultDialect(),
			want:    [][]string{{`a"b`, "c"}},
		},
		{
			name:    "embeddedNewline",
			input:   "\"a\nb\",c\n",
			dialect: DefaultDialect(),
			want:    [][]string{{"a\nb", "c"}},
		},
		{
			name:    "quoteNotAtFieldStartIsLiteral",
			input:   `ab"cd,e` + "\n",
			dialect: DefaultDialect(),
			want:    [][]string{{`ab"cd`, "e"}},
		},
		{
			name:    "emptyFields",
			input:   "a,,c\n",
			dialect: DefaultDialect(),
			want:    [][]string{{"a", "", "c"}},
		},
		{
			name:    "blankLineElided",
			input:   "1,2,3\n\n4,5,6\n",
			dialect: DefaultDialect(),
			want:    [][]string{{"1", "2", "3"}, {"4", "5", "6"}},
		},
		{
			name:    "commentOnlyLineElided",
			input:   "1,2\n# a comment\n3,4\n",
			dialect: Dialect{Delimiter: ',', Quote: '"', Comment: '#'},
			want:    [][]string{{"1", "2"}, {"3", "4"}},
		},
		{
			name:    "midFieldCommentTruncatesLine",
			input:   "1,2#trailing junk\n3,4\n",
			dialect: Dialect{Delimiter: ',', Quote: '"', Comment: '#'},
			want:    [][]string{{"1", "2"}, {"3", "4"}},
		},
		{
			name:    "customDelimiter",
			input:   "name;age\nJohn;30\n",
			dialect: Dialect{Delimiter: ';', Quote: '"'},
			want:    [][]string{{"name", "age"}, {"John", "30"}},
		},
		{
			name:    "whitespaceDelimited",
			input:   "1   2  3\n4 5 6\n",
			dialect: Dialect{DelimiterIsWhitespace: true, Quote: '"'},
			want:    [][]string{{"1", "2", "3"}, {"4", "5", "6"}},
		},
		{
			name:    "emptyInput",
			input:   "",
			dialect: DefaultDialect(),
			want:    nil,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := collectRows(t, tc.input, tc.dialect)
			if !rowsEqual(got, tc.want) {
				t.Fatalf("rows = %#v, want %#v", got, tc.want)
			}
		})
	}
}

func rowsEqual(a, b [][]string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

func TestTokenizerUnterminatedQuoteFinalizesAtEOF(t *testing.T) {
	t.Parallel()
	rows := collectRows(t, `"abc`, DefaultDialect())
	want := [][]string{{"abc"}}
	if !rowsEqual(rows, want) {
		t.Fatalf("rows = %#v, want %#v", rows, want)
	}
}

func TestTokenizerSkipLines(t *testing.T) {
	t.Parallel()
	stream := NewFileStream(strings.NewReader("skip1\nskip2\n1,2,3\n"), 0)
	tok := NewTokenizer(stream, DefaultDialect())
	if err := tok.SkipLines(2); err != nil {
		t.Fatalf("SkipLines: %v", err)
	}
	if err := tok.NextRow(); err != nil {
		t.Fatalf("NextRow: %v", err)
	}
	if got, want := tok.NumFields(), 3; got != want {
		t.Fatalf("NumFields = %d, want %d", got, want)
	}
}

func TestTokenizerSkipLinesPastEOFIsNotError(t *testing.T) {
	t.Parallel()
	stream := NewFileStream(strings.NewReader("only one line\n"), 0)
	tok := NewTokenizer(stream, DefaultDialect())
	if err := tok.SkipLines(10); err != nil {
		t.Fatalf("SkipLines: %v", err)
	}
	if err := tok.NextRow(); err != io.EOF {
		t.Fatalf("NextRow = %v, want io.EOF", err)
	}
}
