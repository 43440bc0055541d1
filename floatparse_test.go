package readtext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStrictFloat(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		text string
		want float64
		ok   bool
	}{
		{"integer", "42", 42, true},
		{"decimal", "3.14", 3.14, true},
		{"negative", "-2.5", -2.5, true},
		{"exponent", "1.5e3", 1500, true},
		{"leadingTrailingSpace", "  1.5  ", 1.5, true},
		{"empty", "", 0, false},
		{"nonASCII", "1.5µ", 0, false},
		{"garbage", "abc", 0, false},
		{"trailingGarbage", "1.5x", 0, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := parseStrictFloat([]rune(tc.text))
			require.Equal(t, tc.ok, ok)
			if ok {
				require.InDelta(t, tc.want, got, 1e-9)
			}
		})
	}
}

func TestParseComplex(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		text string
		want complex128
		ok   bool
	}{
		{"realOnly", "3.0", complex(3, 0), true},
		{"pureImaginary", "2j", complex(0, 2), true},
		{"fullForm", "1+2j", complex(1, 2), true},
		{"fullFormNegativeImag", "1-2j", complex(1, -2), true},
		{"parenthesized", "(1+2j)", complex(1, 2), true},
		{"parenthesizedRealOnly", "(5)", complex(5, 0), true},
		{"unterminatedParen", "(1+2j", 0, false},
		{"missingUnit", "1+2", 0, false},
		{"garbage", "not complex", 0, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := parseComplex([]rune(tc.text), 'j')
			require.Equal(t, tc.ok, ok)
			if ok {
				require.InDelta(t, real(tc.want), real(got), 1e-9)
				require.InDelta(t, imag(tc.want), imag(got), 1e-9)
			}
		})
	}
}
