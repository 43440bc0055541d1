package readtext

// ElementKind names the primitive type a FieldType packs parsed field text
// into, mirroring the typecode switch in original_source/src/rows.c's
// read_rows (the 'b','B','h','H','i','I','q','Q','f','d','F','D','S','U'
// cases).
type ElementKind int

const (
	KindInt8 ElementKind = iota
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindFloat32
	KindFloat64
	KindComplex64
	KindComplex128
	KindBool
	// KindStringNarrow packs one byte per code point (NUL-padded, silently
	// truncated when the parsed text is longer than the cell).
	KindStringNarrow
	// KindStringWide packs one 4-byte code point per rune, optionally
	// byte-swapped for non-native order.
	KindStringWide
	// KindGeneric has no direct FieldType.Parse, and packConvertedValue
	// rejects it too, so a column of this kind fails to read whether or not
	// a Converter is registered for it.
	KindGeneric
)

func (k ElementKind) String() string {
	switch k {
	case KindInt8:
		return "int8"
	case KindUint8:
		return "uint8"
	case KindInt16:
		return "int16"
	case KindUint16:
		return "uint16"
	case KindInt32:
		return "int32"
	case KindUint32:
		return "uint32"
	case KindInt64:
		return "int64"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindComplex64:
		return "complex64"
	case KindComplex128:
		return "complex128"
	case KindBool:
		return "bool"
	case KindStringNarrow:
		return "string(narrow)"
	case KindStringWide:
		return "string(wide)"
	default:
		return "generic"
	}
}

// ElementDesc describes one output cell's binary shape: its kind, its byte
// size (for the fixed-width string kinds this determines truncation
// width), and whether multi-byte numeric kinds should be written in
// non-native byte order.
type ElementDesc struct {
	Kind      ElementKind
	Size      int
	BigEndian bool
}

func elementSize(k ElementKind) int {
	switch k {
	case KindInt8, KindUint8, KindBool:
		return 1
	case KindInt16, KindUint16:
		return 2
	case KindInt32, KindUint32, KindFloat32:
		return 4
	case KindInt64, KindUint64, KindFloat64, KindComplex64:
		return 8
	case KindComplex128:
		return 16
	default:
		return 0 // string kinds: caller-chosen width
	}
}

// NewElementDesc builds an ElementDesc for a fixed-size numeric kind,
// filling in Size from the kind itself.
func NewElementDesc(kind ElementKind, bigEndian bool) ElementDesc {
	return ElementDesc{Kind: kind, Size: elementSize(kind), BigEndian: bigEndian}
}

// FieldType binds one output column's ElementDesc to the byte offset it
// occupies within a structured row and the direct-parse function used when
// no Converter claims the column. Parse truncates overlong fixed-width
// strings rather than failing; a Converter's overlong string result fails
// with OverlongStringError instead.
type FieldType struct {
	Descr  ElementDesc
	Offset int
	Parse  func(d Dialect, text []rune, quoted bool, dst []byte) error
}

// Layout selects whether Schema.Fields has one entry shared by every output
// column (Homogeneous, e.g. "every column is int64") or one entry per
// output column (Structured, e.g. a mixed int64/float64/string row).
type Layout int

const (
	Homogeneous Layout = iota
	Structured
)

// Schema describes the shape of one output row. AutoWidenStrings, when set
// on a Homogeneous string schema whose FieldType.Descr.Size is 0, tells the
// row reader to track the longest field seen and widen the cell size
// in-place (see Buffer.Widen), grounded in original_source/src/rows.c's
// track_string_size.
type Schema struct {
	Layout           Layout
	Fields           []FieldType
	AutoWidenStrings bool
}

// RowSize computes the byte stride of one output row given the number of
// selected output columns. For Homogeneous layout every column shares
// Fields[0]'s element size; for Structured layout the stride is the sum of
// each column's own element size, matching rows.c's compute_row_size.
func (s Schema) RowSize(numCols int) int {
	if s.Layout == Homogeneous {
		if len(s.Fields) == 0 {
			return 0
		}
		return numCols * s.Descr(0).Size
	}
	total := 0
	for i := 0; i < numCols; i++ {
		total += s.Descr(i).Size
	}
	return total
}

// Descr returns the ElementDesc governing output column i.
func (s Schema) Descr(i int) ElementDesc {
	if s.Layout == Homogeneous {
		return s.Fields[0].Descr
	}
	return s.Fields[i].Descr
}

// FieldTypeFor returns the FieldType governing output column i.
func (s Schema) FieldTypeFor(i int) FieldType {
	if s.Layout == Homogeneous {
		return s.Fields[0]
	}
	return s.Fields[i]
}

// ColumnOffset returns the byte offset of output column i within a row,
// given the total output column count (needed for Homogeneous layout,
// where every column has the same size).
func (s Schema) ColumnOffset(i, numCols int) int {
	if s.Layout == Homogeneous {
		return i * s.Descr(0).Size
	}
	return s.Fields[i].Offset
}

func isStringKind(k ElementKind) bool {
	return k == KindStringNarrow || k == KindStringWide
}
