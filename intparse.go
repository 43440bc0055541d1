package readtext

import (
	"strconv"
	"unicode"
)

// parseSignedInt implements original_source/src/str_to_int.c's str_to_int64
// digit accumulation: leading/trailing whitespace is skipped, an optional
// sign is consumed, and overflow is detected before it happens via the
// standard pre-check (number > max/10, or number == max/10 and the next
// digit exceeds max%10) rather than after the fact. min/max are the target
// width's bounds (e.g. -128/127 for int8), matching how DECLARE_TO_INT
// calls the same generic parser with per-width bounds rather than
// reimplementing the check for each width.
func parseSignedInt(text []rune, min, max int64) (int64, bool) {
	i, n := 0, len(text)
	for i < n && isParseSpace(text[i]) {
		i++
	}
	if i >= n {
		return 0, false
	}
	neg := false
	switch text[i] {
	case '-':
		neg = true
		i++
	case '+':
		i++
	}
	// Accumulate the unsigned magnitude against a sign-appropriate limit so
	// the pre-overflow check works uniformly for asymmetric ranges like
	// int8's [-128, 127] (limit is 128 when negative, 127 when positive).
	limit := uint64(max)
	if neg {
		limit = uint64(-(min + 1)) + 1
	}
	start := i
	var mag uint64
	for i < n && isASCIIDigit(text[i]) {
		digit := uint64(text[i] - '0')
		if mag > limit/10 || (mag == limit/10 && digit > limit%10) {
			return 0, false
		}
		mag = mag*10 + digit
		i++
	}
	if i == start {
		return 0, false
	}
	for i < n && isParseSpace(text[i]) {
		i++
	}
	if i != n {
		return 0, false
	}
	if neg {
		return -int64(mag), true
	}
	return int64(mag), true
}

// parseUnsignedInt implements str_to_uint64's accumulation: no sign other
// than an optional leading '+' is accepted.
func parseUnsignedInt(text []rune, max uint64) (uint64, bool) {
	i, n := 0, len(text)
	for i < n && isParseSpace(text[i]) {
		i++
	}
	if i >= n {
		return 0, false
	}
	if text[i] == '+' {
		i++
	}
	if i < n && text[i] == '-' {
		return 0, false
	}
	start := i
	var value uint64
	for i < n && isASCIIDigit(text[i]) {
		digit := uint64(text[i] - '0')
		if value > max/10 || (value == max/10 && digit > max%10) {
			return 0, false
		}
		value = value*10 + digit
		i++
	}
	if i == start {
		return 0, false
	}
	for i < n && isParseSpace(text[i]) {
		i++
	}
	if i != n {
		return 0, false
	}
	return value, true
}

func isParseSpace(c rune) bool { return unicode.IsSpace(c) }
func isASCIIDigit(c rune) bool { return c >= '0' && c <= '9' }

// parseIntWithFallback is the entry point FieldType.Parse implementations
// for integer kinds call: it tries strict integer parsing first and, when
// that fails and dialect.AllowFloatForInt is set, falls back to parsing the
// field as a float and truncating toward zero, matching
// str_to_int.c's DECLARE_TO_INT macro's allow_float_for_int branch.
func parseIntWithFallback(d Dialect, text []rune, min, max int64) (int64, error) {
	if v, ok := parseSignedInt(text, min, max); ok {
		return v, nil
	}
	if d.AllowFloatForInt {
		if f, ok := parseStrictFloat(text); ok {
			v := int64(f)
			if v < min || v > max {
				return 0, strconv.ErrRange
			}
			return v, nil
		}
	}
	return 0, strconv.ErrSyntax
}

func parseUintWithFallback(d Dialect, text []rune, max uint64) (uint64, error) {
	if v, ok := parseUnsignedInt(text, max); ok {
		return v, nil
	}
	if d.AllowFloatForInt {
		if f, ok := parseStrictFloat(text); ok {
			if f < 0 {
				return 0, strconv.ErrSyntax
			}
			v := uint64(f)
			if v > max {
				return 0, strconv.ErrRange
			}
			return v, nil
		}
	}
	return 0, strconv.ErrSyntax
}
