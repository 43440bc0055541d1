// Package rowencode turns rows of strings back into delimited text, as a
// fixture builder for tests; there is no public write path, matching the
// "no write path as a first-class feature" scope decision. No other package
// in this module imports it; only its own tests exercise it.
//
// Adapted from oleg578-swiftcsv/writer.go's field-quoting decision and
// bufio.Writer buffering, generalized from byte delimiters/quotes to
// runes so it can mirror any Dialect the tokenizer accepts.
package rowencode

import (
	"bufio"
	"io"
	"strings"
)

// Dialect is the minimal subset of readtext.Dialect this package needs;
// duplicated rather than imported to keep this an internal leaf with no
// dependency on the parent package.
type Dialect struct {
	Delimiter rune
	Quote     rune
	UseCRLF   bool
}

// Writer emits rows of fields as delimited text, quoting a field exactly
// when it contains the delimiter, the quote rune, or a newline.
type Writer struct {
	dst     *bufio.Writer
	dialect Dialect
}

// New builds a Writer using dialect's delimiter and quote rune. A zero
// Delimiter defaults to ',' and a zero Quote defaults to '"'.
func New(w io.Writer, dialect Dialect) *Writer {
	if dialect.Delimiter == 0 {
		dialect.Delimiter = ','
	}
	if dialect.Quote == 0 {
		dialect.Quote = '"'
	}
	return &Writer{dst: bufio.NewWriter(w), dialect: dialect}
}

// WriteRow writes one row, delimiter-separated and newline-terminated.
func (w *Writer) WriteRow(fields []string) error {
	for i, f := range fields {
		if i > 0 {
			if _, err := w.dst.WriteRune(w.dialect.Delimiter); err != nil {
				return err
			}
		}
		if err := w.writeField(f); err != nil {
			return err
		}
	}
	if w.dialect.UseCRLF {
		_, err := w.dst.WriteString("\r\n")
		return err
	}
	return w.dst.WriteByte('\n')
}

// WriteAll writes every row in rows, then flushes.
func (w *Writer) WriteAll(rows [][]string) error {
	for _, row := range rows {
		if err := w.WriteRow(row); err != nil {
			return err
		}
	}
	return w.dst.Flush()
}

func (w *Writer) writeField(field string) error {
	quote := w.dialect.Quote
	if !needsQuote(field, w.dialect.Delimiter, quote) {
		_, err := w.dst.WriteString(field)
		return err
	}
	if _, err := w.dst.WriteRune(quote); err != nil {
		return err
	}
	quoteStr := string(quote)
	escaped := strings.ReplaceAll(field, quoteStr, quoteStr+quoteStr)
	if _, err := w.dst.WriteString(escaped); err != nil {
		return err
	}
	_, err := w.dst.WriteRune(quote)
	return err
}

func needsQuote(field string, delimiter, quote rune) bool {
	for _, c := range field {
		if c == delimiter || c == quote || c == '\n' || c == '\r' {
			return true
		}
	}
	return false
}
