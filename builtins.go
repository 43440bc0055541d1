package readtext

import (
	"encoding/binary"
	"math"
)

// The NewXField constructors build a FieldType with a direct-parse
// function for each built-in ElementKind, so callers assembling a Schema
// don't have to hand-write the parse closures rows.c's typecode switch
// implements inline. offset is the column's byte offset within a
// Structured row (ignored for Homogeneous schemas).

func byteOrder(bigEndian bool) binary.ByteOrder {
	if bigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func intField(kind ElementKind, offset int, bigEndian bool, min, max int64) FieldType {
	order := byteOrder(bigEndian)
	return FieldType{
		Descr:  NewElementDesc(kind, bigEndian),
		Offset: offset,
		Parse: func(d Dialect, text []rune, quoted bool, dst []byte) error {
			v, err := parseIntWithFallback(d, text, min, max)
			if err != nil {
				return err
			}
			putInt(dst, v, order)
			return nil
		},
	}
}

func uintField(kind ElementKind, offset int, bigEndian bool, max uint64) FieldType {
	order := byteOrder(bigEndian)
	return FieldType{
		Descr:  NewElementDesc(kind, bigEndian),
		Offset: offset,
		Parse: func(d Dialect, text []rune, quoted bool, dst []byte) error {
			v, err := parseUintWithFallback(d, text, max)
			if err != nil {
				return err
			}
			putUint(dst, v, order)
			return nil
		},
	}
}

func Int8Field(offset int) FieldType {
	return intField(KindInt8, offset, false, math.MinInt8, math.MaxInt8)
}

func Int16Field(offset int, bigEndian bool) FieldType {
	return intField(KindInt16, offset, bigEndian, math.MinInt16, math.MaxInt16)
}
func Int32Field(offset int, bigEndian bool) FieldType {
	return intField(KindInt32, offset, bigEndian, math.MinInt32, math.MaxInt32)
}
func Int64Field(offset int, bigEndian bool) FieldType {
	return intField(KindInt64, offset, bigEndian, math.MinInt64, math.MaxInt64)
}

func Uint8Field(offset int) FieldType { return uintField(KindUint8, offset, false, math.MaxUint8) }
func Uint16Field(offset int, bigEndian bool) FieldType {
	return uintField(KindUint16, offset, bigEndian, math.MaxUint16)
}
func Uint32Field(offset int, bigEndian bool) FieldType {
	return uintField(KindUint32, offset, bigEndian, math.MaxUint32)
}
func Uint64Field(offset int, bigEndian bool) FieldType {
	return uintField(KindUint64, offset, bigEndian, math.MaxUint64)
}

// Float32Field builds a float32 column's FieldType using the strict-ASCII
// float grammar.
func Float32Field(offset int, bigEndian bool) FieldType {
	order := byteOrder(bigEndian)
	return FieldType{
		Descr:  NewElementDesc(KindFloat32, bigEndian),
		Offset: offset,
		Parse: func(d Dialect, text []rune, quoted bool, dst []byte) error {
			f, ok := parseStrictFloat(text)
			if !ok {
				return errBadFloat
			}
			order.PutUint32(dst, math.Float32bits(float32(f)))
			return nil
		},
	}
}

// Float64Field builds a float64 column's FieldType.
func Float64Field(offset int, bigEndian bool) FieldType {
	order := byteOrder(bigEndian)
	return FieldType{
		Descr:  NewElementDesc(KindFloat64, bigEndian),
		Offset: offset,
		Parse: func(d Dialect, text []rune, quoted bool, dst []byte) error {
			f, ok := parseStrictFloat(text)
			if !ok {
				return errBadFloat
			}
			order.PutUint64(dst, math.Float64bits(f))
			return nil
		},
	}
}

// Complex64Field builds a complex64 column's FieldType using the
// parenthesized-complex grammar.
func Complex64Field(offset int, bigEndian bool) FieldType {
	order := byteOrder(bigEndian)
	return FieldType{
		Descr:  NewElementDesc(KindComplex64, bigEndian),
		Offset: offset,
		Parse: func(d Dialect, text []rune, quoted bool, dst []byte) error {
			c, ok := parseComplex(text, d.ImaginaryUnit)
			if !ok {
				return errBadComplex
			}
			order.PutUint32(dst[0:4], math.Float32bits(float32(real(c))))
			order.PutUint32(dst[4:8], math.Float32bits(float32(imag(c))))
			return nil
		},
	}
}

// Complex128Field builds a complex128 column's FieldType.
func Complex128Field(offset int, bigEndian bool) FieldType {
	order := byteOrder(bigEndian)
	return FieldType{
		Descr:  NewElementDesc(KindComplex128, bigEndian),
		Offset: offset,
		Parse: func(d Dialect, text []rune, quoted bool, dst []byte) error {
			c, ok := parseComplex(text, d.ImaginaryUnit)
			if !ok {
				return errBadComplex
			}
			order.PutUint64(dst[0:8], math.Float64bits(real(c)))
			order.PutUint64(dst[8:16], math.Float64bits(imag(c)))
			return nil
		},
	}
}

// BoolField builds a bool column's FieldType, accepting the literal tokens
// "True"/"False"/"true"/"false"/"1"/"0" (a small, explicit set rather than
// locale-sensitive parsing).
func BoolField(offset int) FieldType {
	return FieldType{
		Descr:  NewElementDesc(KindBool, false),
		Offset: offset,
		Parse: func(d Dialect, text []rune, quoted bool, dst []byte) error {
			switch string(text) {
			case "True", "true", "1":
				dst[0] = 1
			case "False", "false", "0":
				dst[0] = 0
			default:
				return errBadBool
			}
			return nil
		},
	}
}

// NarrowStringField builds a fixed-width narrow (one byte per code point)
// string column's FieldType. A size of 0 is valid only under
// Schema.AutoWidenStrings.
func NarrowStringField(size, offset int) FieldType {
	return FieldType{
		Descr:  ElementDesc{Kind: KindStringNarrow, Size: size},
		Offset: offset,
		Parse: func(d Dialect, text []rune, quoted bool, dst []byte) error {
			writeNarrowTruncate(text, dst)
			return nil
		},
	}
}

// WideStringField builds a fixed-width wide (4 bytes per code point)
// string column's FieldType.
func WideStringField(size, offset int, bigEndian bool) FieldType {
	return FieldType{
		Descr:  ElementDesc{Kind: KindStringWide, Size: size, BigEndian: bigEndian},
		Offset: offset,
		Parse: func(d Dialect, text []rune, quoted bool, dst []byte) error {
			writeWideTruncate(text, dst, bigEndian)
			return nil
		},
	}
}
