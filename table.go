package readtext

// Table is the materialized result of a successful Read: a rectangular
// arena of Rows*RowSize bytes, one Schema-described row per logical
// record. Cell(row, col) slices out one column's bytes for the caller to
// reinterpret per its ElementDesc.
type Table struct {
	Schema  Schema
	Rows    int
	Cols    int
	RowSize int
	Data    []byte
}

// Cell returns the raw bytes for row r, output column c.
func (t *Table) Cell(r, c int) []byte {
	rowStart := r * t.RowSize
	off := t.Schema.ColumnOffset(c, t.Cols)
	size := t.Schema.Descr(c).Size
	return t.Data[rowStart+off : rowStart+off+size]
}
