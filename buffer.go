package readtext

import "math/bits"

const targetBlockBytes = 8 * 1024 // 8 KiB, matching rows.c's block sizing target

// rowsPerBlock picks a row-count granularity such that rowsPerBlock*rowSize
// is at least targetBlockBytes, rounded up to a power of two, matching
// original_source/src/rows.c's ROWS_PER_BLOCK sizing (there a constant
// 500; here derived from the actual row size so narrow and wide rows both
// get a sensibly-sized block).
func rowsPerBlock(rowSize int) int {
	if rowSize <= 0 {
		return 512
	}
	need := (targetBlockBytes + rowSize - 1) / rowSize
	if need < 1 {
		need = 1
	}
	return 1 << bits.Len(uint(need-1))
}

// Buffer is a growable, fixed-stride byte arena backing a Table's rows.
// Grounded on rows.c's blocks_init/blocks_get_row_ptr/blocks_to_contiguous:
// when the final row count isn't known up front, capacity grows
// geometrically (about 25%, rounded up to a block multiple) rather than
// one row at a time, and is shrunk to the exact row count once reading
// finishes.
type Buffer struct {
	data     []byte
	rowSize  int
	rows     int // rows actually written
	capRows  int // rows currently allocated for
	dynamic  bool
	block    int
}

// NewBuffer allocates a Buffer for rowSize-byte rows. When knownRows is
// non-negative, the buffer is sized exactly once and never grows
// (mirroring the original's fixed pre-allocated data_array path); a
// negative knownRows selects the geometric-growth path.
func NewBuffer(rowSize int, knownRows int64) (*Buffer, error) {
	b := &Buffer{rowSize: rowSize}
	if knownRows >= 0 {
		b.dynamic = false
		b.capRows = int(knownRows)
	} else {
		b.dynamic = true
		b.block = rowsPerBlock(rowSize)
		b.capRows = b.block
	}
	size := uint64(b.capRows) * uint64(rowSize)
	if size > 0 && size/uint64(rowSize) != uint64(b.capRows) {
		return nil, outOfMemoryError(size)
	}
	b.data = make([]byte, size)
	return b, nil
}

// EnsureRow guarantees row index i is addressable, growing the arena
// geometrically if needed (dynamic buffers only). It returns the byte
// slice for row i.
func (b *Buffer) EnsureRow(i int) ([]byte, error) {
	if i >= b.capRows {
		if !b.dynamic {
			return nil, outOfMemoryError(uint64(i+1) * uint64(b.rowSize))
		}
		if err := b.grow(i + 1); err != nil {
			return nil, err
		}
	}
	if i+1 > b.rows {
		b.rows = i + 1
	}
	start := i * b.rowSize
	return b.data[start : start+b.rowSize : start+b.rowSize], nil
}

// grow increases capRows to at least need rows: by roughly 25%, rounded up
// to a multiple of the block size, matching rows.c's growth policy for its
// dynamic blocks path.
func (b *Buffer) grow(need int) error {
	newCap := b.capRows + b.capRows/4
	if newCap < need {
		newCap = need
	}
	if r := newCap % b.block; r != 0 {
		newCap += b.block - r
	}
	size := uint64(newCap) * uint64(b.rowSize)
	if size/uint64(b.rowSize) != uint64(newCap) {
		return outOfMemoryError(size)
	}
	data := make([]byte, size)
	copy(data, b.data)
	b.data = data
	b.capRows = newCap
	return nil
}

// Widen changes the row stride from oldRowSize to newRowSize in place,
// re-laying every already-written row into the wider stride and
// NUL-padding the new trailing bytes of each. Used for Schema's
// AutoWidenStrings, grounded on rows.c's blocks_uniform_resize.
func (b *Buffer) Widen(newRowSize int) error {
	if newRowSize == b.rowSize {
		return nil
	}
	size := uint64(b.capRows) * uint64(newRowSize)
	if size/uint64(newRowSize) != uint64(b.capRows) {
		return outOfMemoryError(size)
	}
	data := make([]byte, size)
	for r := 0; r < b.rows; r++ {
		src := b.data[r*b.rowSize : (r+1)*b.rowSize]
		dst := data[r*newRowSize : r*newRowSize+len(src)]
		copy(dst, src)
	}
	b.data = data
	b.rowSize = newRowSize
	return nil
}

// Finalize shrinks the arena to exactly the rows written and returns it.
func (b *Buffer) Finalize() []byte {
	if b.rows == b.capRows {
		return b.data
	}
	out := make([]byte, b.rows*b.rowSize)
	copy(out, b.data[:len(out)])
	b.data = out
	b.capRows = b.rows
	return b.data
}

// Rows reports how many rows have been written so far.
func (b *Buffer) Rows() int { return b.rows }

// RowSize reports the current per-row byte stride.
func (b *Buffer) RowSize() int { return b.rowSize }
