package readtext

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
)

// Sentinel errors surfaced by [Read] and the stream adapters.
var (
	// ErrOutOfMemory is returned when the output Buffer cannot provide a
	// row: its byte count would overflow, or a fixed-size Buffer is asked
	// for a row past its capacity.
	ErrOutOfMemory = errors.New("readtext: out of memory")

	// ErrTokenizerIO wraps a failure reported by the underlying [Stream].
	ErrTokenizerIO = errors.New("readtext: stream read failed")

	// errNoData names the no-data condition. Read does not return it: when
	// skiprows consumes the entire input, callers get an empty table.
	errNoData = errors.New("readtext: no data")

	// errNoParser is the BadFieldError cause when a column has neither a
	// registered Converter nor a FieldType.Parse function.
	errNoParser = errors.New("readtext: column has no parser or converter")

	errBadFloat   = errors.New("readtext: invalid floating point literal")
	errBadComplex = errors.New("readtext: invalid complex number literal")
	errBadBool    = errors.New("readtext: invalid boolean literal")
)

// BadFieldError reports that a single field's text could not be parsed as
// the destination element's type. Row is the 0-indexed data row, counted
// after skiprows.
type BadFieldError struct {
	Row    int
	Col    int
	Kind   ElementKind
	Text   string
	Cause  error
}

func (e *BadFieldError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("readtext: row %d, column %d: cannot parse %q as %v: %v",
			e.Row, e.Col, e.Text, e.Kind, e.Cause)
	}
	return fmt.Sprintf("readtext: row %d, column %d: cannot parse %q as %v",
		e.Row, e.Col, e.Text, e.Kind)
}

func (e *BadFieldError) Unwrap() error { return e.Cause }

// ChangedFieldCountError reports a row whose field count differs from the
// first row's, when no usecols selection is in effect to mask the
// mismatch. Row is the 0-indexed data row, counted after skiprows.
type ChangedFieldCountError struct {
	Row      int
	Expected int
	Got      int
}

func (e *ChangedFieldCountError) Error() string {
	return fmt.Sprintf("readtext: row %d: expected %d fields, got %d", e.Row, e.Expected, e.Got)
}

// InvalidColumnIndexError reports a usecols entry, or a converters key when
// usecols is nil, outside the bounds of the current row's field count. Row is the 0-indexed data row, counted after
// skiprows (zero when the error is raised during usecols normalization,
// before any data row has been read).
type InvalidColumnIndexError struct {
	Row          int
	Requested    int32
	CurrentWidth int
}

func (e *InvalidColumnIndexError) Error() string {
	return fmt.Sprintf("readtext: row %d: column index %d out of range for %d fields",
		e.Row, e.Requested, e.CurrentWidth)
}

// ConverterError reports that a user-supplied [Converter] returned an error
// for a given row/column. Row is the 0-indexed data row, counted after
// skiprows.
type ConverterError struct {
	Row   int
	Col   int
	Cause error
}

func (e *ConverterError) Error() string {
	return fmt.Sprintf("readtext: row %d, column %d: converter failed: %v", e.Row, e.Col, e.Cause)
}

func (e *ConverterError) Unwrap() error { return e.Cause }

// OverlongStringError reports that a converter produced text too long for a
// fixed-width destination cell. Len and Capacity count code points.
// Direct (non-converter) string parsing truncates instead of erroring; see
// FieldType.
type OverlongStringError struct {
	Row      int
	Col      int
	Len      int
	Capacity int
}

func (e *OverlongStringError) Error() string {
	return fmt.Sprintf("readtext: row %d, column %d: converter result of length %d overflows %d-character cell",
		e.Row, e.Col, e.Len, e.Capacity)
}

// outOfMemoryError annotates ErrOutOfMemory with the byte count that could
// not be allocated, rendered human-readable for diagnostics.
func outOfMemoryError(attempted uint64) error {
	return fmt.Errorf("%w: attempted to allocate %s", ErrOutOfMemory, humanize.Bytes(attempted))
}

func tokenizerIOError(cause error) error {
	return fmt.Errorf("%w: %v", ErrTokenizerIO, cause)
}
