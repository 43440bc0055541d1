package readtext

import (
	"math/cmplx"
	"strconv"
)

// parseStrictFloat implements a strict-ASCII float grammar: any code point
// at or above 128 fails the field outright (no locale-aware
// or Unicode digit parsing), leading/trailing ASCII whitespace is trimmed,
// and the remainder must be consumed entirely by strconv.ParseFloat (which
// itself rejects trailing garbage, so no separate "did we consume it all"
// bookkeeping is needed once the span is isolated).
func parseStrictFloat(text []rune) (float64, bool) {
	trimmed, ok := trimASCII(text)
	if !ok || len(trimmed) == 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(string(trimmed), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// trimASCII verifies every rune is ASCII and trims ASCII whitespace from
// both ends, matching original_source/src/conversions.c's strict-ASCII
// numeric grammar (locale-independent, no multi-byte digit forms).
func trimASCII(text []rune) ([]rune, bool) {
	for _, c := range text {
		if c >= 128 {
			return nil, false
		}
	}
	i, j := 0, len(text)
	for i < j && isParseSpace(text[i]) {
		i++
	}
	for j > i && isParseSpace(text[j-1]) {
		j--
	}
	return text[i:j], true
}

// scanNumberToken scans an optional sign, digits, optional fractional part,
// and optional exponent starting at pos, returning the index just past the
// match. It does not itself call strconv; callers isolate the span this
// way because strconv.ParseFloat can't be asked to stop at a non-numeric
// boundary like a complex number's imaginary unit or sign.
func scanNumberToken(text []rune, pos int) int {
	n := len(text)
	start := pos
	if pos < n && (text[pos] == '+' || text[pos] == '-') {
		pos++
	}
	digitsBefore := 0
	for pos < n && isASCIIDigit(text[pos]) {
		pos++
		digitsBefore++
	}
	digitsAfter := 0
	if pos < n && text[pos] == '.' {
		pos++
		for pos < n && isASCIIDigit(text[pos]) {
			pos++
			digitsAfter++
		}
	}
	if digitsBefore == 0 && digitsAfter == 0 {
		return start
	}
	mark := pos
	if pos < n && (text[pos] == 'e' || text[pos] == 'E') {
		p := pos + 1
		if p < n && (text[p] == '+' || text[p] == '-') {
			p++
		}
		expDigits := 0
		for p < n && isASCIIDigit(text[p]) {
			p++
			expDigits++
		}
		if expDigits > 0 {
			mark = p
		}
	}
	return mark
}

// parseComplex implements a five-step parenthesized-complex grammar:
// optional surrounding parens, a real part, then either a bare
// imaginary unit (pure imaginary), a signed imaginary part followed by the
// unit, or nothing (real-only). Grounded on
// original_source/src/conversions.c's complex-number parsing shape.
func parseComplex(text []rune, unit rune) (complex128, bool) {
	trimmed, ok := trimASCII(text)
	if !ok {
		return 0, false
	}
	pos, n := 0, len(trimmed)

	hasParen := false
	if pos < n && trimmed[pos] == '(' {
		hasParen = true
		pos++
	}

	realEnd := scanNumberToken(trimmed, pos)
	if realEnd == pos {
		return 0, false
	}
	realPart, err := strconv.ParseFloat(string(trimmed[pos:realEnd]), 64)
	if err != nil {
		return 0, false
	}
	pos = realEnd

	var imagPart float64
	switch {
	case pos < n && trimmed[pos] == unit:
		// Pure imaginary: the "real" part parsed above is actually the
		// imaginary coefficient.
		imagPart = realPart
		realPart = 0
		pos++
	case pos < n && (trimmed[pos] == '+' || trimmed[pos] == '-'):
		imagEnd := scanNumberToken(trimmed, pos)
		if imagEnd == pos {
			return 0, false
		}
		imagPart, err = strconv.ParseFloat(string(trimmed[pos:imagEnd]), 64)
		if err != nil {
			return 0, false
		}
		pos = imagEnd
		if pos >= n || trimmed[pos] != unit {
			return 0, false
		}
		pos++
	default:
		imagPart = 0
	}

	if hasParen {
		if pos >= n || trimmed[pos] != ')' {
			return 0, false
		}
		pos++
	}
	if pos != n {
		return 0, false
	}
	return complex(realPart, imagPart), true
}

func isFiniteComplex(c complex128) bool {
	return !cmplx.IsInf(c) && !cmplx.IsNaN(c)
}
