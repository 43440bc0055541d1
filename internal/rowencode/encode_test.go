package rowencode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteRowQuotesWhenNeeded(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	w := New(&buf, Dialect{Delimiter: ',', Quote: '"'})
	require.NoError(t, w.WriteRow([]string{"plain", "has,comma", `has"quote`, "has\nnewline"}))
	require.NoError(t, w.WriteAll(nil))
	require.Equal(t, "plain,\"has,comma\",\"has\"\"quote\",\"has\nnewline\"\n", buf.String())
}

func TestWriteAllMultipleRows(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	w := New(&buf, Dialect{Delimiter: ';', Quote: '"'})
	err := w.WriteAll([][]string{
		{"a", "b"},
		{"c", "d"},
	})
	require.NoError(t, err)
	require.Equal(t, "a;b\nc;d\n", buf.String())
}

func TestWriteRowUsesCRLFWhenRequested(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	w := New(&buf, Dialect{Delimiter: ',', Quote: '"', UseCRLF: true})
	require.NoError(t, w.WriteRow([]string{"a", "b"}))
	require.NoError(t, w.WriteAll(nil))
	require.Equal(t, "a,b\r\n", buf.String())
}

func TestNewDefaultsDelimiterAndQuote(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	w := New(&buf, Dialect{})
	require.NoError(t, w.WriteRow([]string{"x,y", "z"}))
	require.NoError(t, w.WriteAll(nil))
	require.Equal(t, "\"x,y\",z\n", buf.String())
}
