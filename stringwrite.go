package readtext

import "encoding/binary"

// writeNarrowTruncate packs text as one byte per code point into dst,
// NUL-padding unused trailing bytes. A code point above 255 ends the copy
// early rather than erroring (matches original_source/src/rows.c's to_S:
// the direct-parse path truncates, it doesn't fail). Used by FieldType.Parse;
// see writeNarrowStrict for the converter-result path, which does fail on
// overflow.
func writeNarrowTruncate(text []rune, dst []byte) {
	i := 0
	for ; i < len(dst) && i < len(text); i++ {
		c := text[i]
		if c > 255 {
			break
		}
		dst[i] = byte(c)
	}
	for ; i < len(dst); i++ {
		dst[i] = 0
	}
}

// writeNarrowStrict packs s into dst, returning false if s is longer than
// dst or contains a code point above 255 — the converter-result path,
// which fails on overflow per rows.c's to_S converted-value branch.
func writeNarrowStrict(s []rune, dst []byte) bool {
	if len(s) > len(dst) {
		return false
	}
	for i, c := range s {
		if c > 255 {
			return false
		}
		dst[i] = byte(c)
	}
	for i := len(s); i < len(dst); i++ {
		dst[i] = 0
	}
	return true
}

// writeWideTruncate packs text as one 4-byte code point per rune into dst
// (dst must be a multiple of 4 bytes), optionally byte-swapped, truncating
// silently when text is longer than dst can hold (to_U's direct-parse
// behavior).
func writeWideTruncate(text []rune, dst []byte, bigEndian bool) {
	capacity := len(dst) / 4
	i := 0
	for ; i < capacity && i < len(text); i++ {
		putRune(dst[i*4:i*4+4], text[i], bigEndian)
	}
	for ; i < capacity; i++ {
		putRune(dst[i*4:i*4+4], 0, bigEndian)
	}
}

// writeWideStrict is writeWideTruncate's converter-result counterpart: it
// fails rather than truncating when s doesn't fit, per rows.c's to_U
// converted-value branch: a converter-returned overlong string fails
// outright instead of being silently cut down.
func writeWideStrict(s []rune, dst []byte, bigEndian bool) bool {
	capacity := len(dst) / 4
	if len(s) > capacity {
		return false
	}
	for i, c := range s {
		putRune(dst[i*4:i*4+4], c, bigEndian)
	}
	for i := len(s); i < capacity; i++ {
		putRune(dst[i*4:i*4+4], 0, bigEndian)
	}
	return true
}

func putRune(dst []byte, c rune, bigEndian bool) {
	if bigEndian {
		binary.BigEndian.PutUint32(dst, uint32(c))
	} else {
		binary.LittleEndian.PutUint32(dst, uint32(c))
	}
}
