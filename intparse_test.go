package readtext

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSignedIntBoundaries(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		text string
		min  int64
		max  int64
		want int64
		ok   bool
	}{
		{"int8Max", "127", math.MinInt8, math.MaxInt8, 127, true},
		{"int8MaxOverflow", "128", math.MinInt8, math.MaxInt8, 0, false},
		{"int8Min", "-128", math.MinInt8, math.MaxInt8, -128, true},
		{"int8MinOverflow", "-129", math.MinInt8, math.MaxInt8, 0, false},
		{"leadingTrailingSpace", "  42  ", math.MinInt64, math.MaxInt64, 42, true},
		{"explicitPlus", "+7", math.MinInt64, math.MaxInt64, 7, true},
		{"empty", "", math.MinInt64, math.MaxInt64, 0, false},
		{"notANumber", "abc", math.MinInt64, math.MaxInt64, 0, false},
		{"trailingGarbage", "12x", math.MinInt64, math.MaxInt64, 0, false},
		{"int64Max", "9223372036854775807", math.MinInt64, math.MaxInt64, math.MaxInt64, true},
		{"int64MaxOverflow", "9223372036854775808", math.MinInt64, math.MaxInt64, 0, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := parseSignedInt([]rune(tc.text), tc.min, tc.max)
			require.Equal(t, tc.ok, ok)
			if ok {
				require.Equal(t, tc.want, got)
			}
		})
	}
}

func TestParseUnsignedIntBoundaries(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		text string
		max  uint64
		want uint64
		ok   bool
	}{
		{"uint8Max", "255", math.MaxUint8, 255, true},
		{"uint8Overflow", "256", math.MaxUint8, 0, false},
		{"negativeRejected", "-1", math.MaxUint64, 0, false},
		{"uint64Max", "18446744073709551615", math.MaxUint64, math.MaxUint64, true},
		{"uint64MaxOverflow", "18446744073709551616", math.MaxUint64, 0, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := parseUnsignedInt([]rune(tc.text), tc.max)
			require.Equal(t, tc.ok, ok)
			if ok {
				require.Equal(t, tc.want, got)
			}
		})
	}
}

func TestParseIntWithFallbackToFloat(t *testing.T) {
	t.Parallel()
	d := Dialect{AllowFloatForInt: true}
	v, err := parseIntWithFallback(d, []rune("3.9"), math.MinInt64, math.MaxInt64)
	require.NoError(t, err)
	require.Equal(t, int64(3), v)

	_, err = parseIntWithFallback(Dialect{}, []rune("3.9"), math.MinInt64, math.MaxInt64)
	require.Error(t, err)
}
