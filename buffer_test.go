package readtext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRowsPerBlockIsPowerOfTwoAndFits(t *testing.T) {
	t.Parallel()
	cases := []int{1, 3, 8, 100, 1024, 8192}
	for _, rowSize := range cases {
		n := rowsPerBlock(rowSize)
		require.Equal(t, n&(n-1), 0, "rowSize=%d rowsPerBlock=%d not a power of two", rowSize, n)
		require.GreaterOrEqual(t, n*rowSize, targetBlockBytes)
	}
}

func TestNewBufferFixedSize(t *testing.T) {
	t.Parallel()
	buf, err := NewBuffer(8, 10)
	require.NoError(t, err)
	require.Equal(t, 8, buf.RowSize())
	row, err := buf.EnsureRow(9)
	require.NoError(t, err)
	require.Len(t, row, 8)
	_, err = buf.EnsureRow(10)
	require.Error(t, err)
}

func TestNewBufferDynamicGrows(t *testing.T) {
	t.Parallel()
	buf, err := NewBuffer(8, -1)
	require.NoError(t, err)
	initialCap := buf.capRows
	for i := 0; i < initialCap*3; i++ {
		_, err := buf.EnsureRow(i)
		require.NoError(t, err)
	}
	require.Equal(t, initialCap*3, buf.Rows())
	require.GreaterOrEqual(t, buf.capRows, initialCap*3)
}

func TestBufferEnsureRowPreservesPriorData(t *testing.T) {
	t.Parallel()
	buf, err := NewBuffer(4, -1)
	require.NoError(t, err)
	row0, err := buf.EnsureRow(0)
	require.NoError(t, err)
	copy(row0, []byte{1, 2, 3, 4})
	for i := 1; i < 1000; i++ {
		_, err := buf.EnsureRow(i)
		require.NoError(t, err)
	}
	row0Again, err := buf.EnsureRow(0)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, row0Again)
}

func TestBufferWidenRelaysRowsAndPads(t *testing.T) {
	t.Parallel()
	buf, err := NewBuffer(2, -1)
	require.NoError(t, err)
	r0, err := buf.EnsureRow(0)
	require.NoError(t, err)
	copy(r0, []byte{'a', 'b'})
	r1, err := buf.EnsureRow(1)
	require.NoError(t, err)
	copy(r1, []byte{'c', 'd'})

	require.NoError(t, buf.Widen(5))
	require.Equal(t, 5, buf.RowSize())

	got0, err := buf.EnsureRow(0)
	require.NoError(t, err)
	require.Equal(t, []byte{'a', 'b', 0, 0, 0}, got0)

	got1, err := buf.EnsureRow(1)
	require.NoError(t, err)
	require.Equal(t, []byte{'c', 'd', 0, 0, 0}, got1)
}

func TestBufferFinalizeShrinksToRowsWritten(t *testing.T) {
	t.Parallel()
	buf, err := NewBuffer(4, -1)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := buf.EnsureRow(i)
		require.NoError(t, err)
	}
	data := buf.Finalize()
	require.Len(t, data, 12)
	require.Equal(t, 3, buf.Rows())
}
