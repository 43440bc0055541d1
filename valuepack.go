package readtext

import (
	"encoding/binary"
	"fmt"
	"math"
)

// packConvertedValue coerces a Converter's return value into dst according
// to descr, generalizing rows.c's per-typecode conversion switch for the
// "converter result" branch (as opposed to FieldType.Parse's direct-parse
// branch). Fixed-width string results that don't fit fail outright rather
// than truncating — a deliberate asymmetry with the direct-parse path.
func packConvertedValue(descr ElementDesc, val any, dst []byte) error {
	order := binary.ByteOrder(binary.LittleEndian)
	if descr.BigEndian {
		order = binary.BigEndian
	}

	switch descr.Kind {
	case KindInt8, KindInt16, KindInt32, KindInt64:
		v, err := asInt64(val)
		if err != nil {
			return err
		}
		putInt(dst, v, order)
		return nil
	case KindUint8, KindUint16, KindUint32, KindUint64:
		v, err := asUint64(val)
		if err != nil {
			return err
		}
		putUint(dst, v, order)
		return nil
	case KindFloat32:
		v, err := asFloat64(val)
		if err != nil {
			return err
		}
		order.PutUint32(dst, math.Float32bits(float32(v)))
		return nil
	case KindFloat64:
		v, err := asFloat64(val)
		if err != nil {
			return err
		}
		order.PutUint64(dst, math.Float64bits(v))
		return nil
	case KindComplex64:
		c, err := asComplex128(val)
		if err != nil {
			return err
		}
		order.PutUint32(dst[0:4], math.Float32bits(float32(real(c))))
		order.PutUint32(dst[4:8], math.Float32bits(float32(imag(c))))
		return nil
	case KindComplex128:
		c, err := asComplex128(val)
		if err != nil {
			return err
		}
		order.PutUint64(dst[0:8], math.Float64bits(real(c)))
		order.PutUint64(dst[8:16], math.Float64bits(imag(c)))
		return nil
	case KindBool:
		b, err := asBool(val)
		if err != nil {
			return err
		}
		if b {
			dst[0] = 1
		} else {
			dst[0] = 0
		}
		return nil
	case KindStringNarrow:
		text, err := asRunes(val)
		if err != nil {
			return err
		}
		if !writeNarrowStrict(text, dst) {
			if len(text) > len(dst) {
				return &OverlongStringError{Len: len(text), Capacity: len(dst)}
			}
			return fmt.Errorf("readtext: converter result %q has a code point above 255", string(text))
		}
		return nil
	case KindStringWide:
		text, err := asRunes(val)
		if err != nil {
			return err
		}
		if !writeWideStrict(text, dst, descr.BigEndian) {
			return &OverlongStringError{Len: len(text), Capacity: len(dst) / 4}
		}
		return nil
	default:
		return fmt.Errorf("readtext: unsupported element kind %v", descr.Kind)
	}
}

func putInt(dst []byte, v int64, order binary.ByteOrder) {
	switch len(dst) {
	case 1:
		dst[0] = byte(v)
	case 2:
		order.PutUint16(dst, uint16(v))
	case 4:
		order.PutUint32(dst, uint32(v))
	case 8:
		order.PutUint64(dst, uint64(v))
	}
}

func putUint(dst []byte, v uint64, order binary.ByteOrder) {
	switch len(dst) {
	case 1:
		dst[0] = byte(v)
	case 2:
		order.PutUint16(dst, uint16(v))
	case 4:
		order.PutUint32(dst, uint32(v))
	case 8:
		order.PutUint64(dst, v)
	}
}

func asInt64(val any) (int64, error) {
	switch v := val.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case string:
		return parseIntWithFallback(Dialect{}, []rune(v), math.MinInt64, math.MaxInt64)
	default:
		return 0, fmt.Errorf("readtext: converter result %T is not an integer", val)
	}
}

func asUint64(val any) (uint64, error) {
	switch v := val.(type) {
	case uint64:
		return v, nil
	case uint:
		return uint64(v), nil
	case int:
		if v < 0 {
			return 0, fmt.Errorf("readtext: converter result %d is negative", v)
		}
		return uint64(v), nil
	case int64:
		if v < 0 {
			return 0, fmt.Errorf("readtext: converter result %d is negative", v)
		}
		return uint64(v), nil
	default:
		return 0, fmt.Errorf("readtext: converter result %T is not an unsigned integer", val)
	}
}

func asFloat64(val any) (float64, error) {
	switch v := val.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, ok := parseStrictFloat([]rune(v))
		if !ok {
			return 0, fmt.Errorf("readtext: converter result %q is not a float", v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("readtext: converter result %T is not a float", val)
	}
}

func asComplex128(val any) (complex128, error) {
	switch v := val.(type) {
	case complex128:
		return v, nil
	case complex64:
		return complex128(v), nil
	case float64:
		return complex(v, 0), nil
	default:
		return 0, fmt.Errorf("readtext: converter result %T is not a complex number", val)
	}
}

func asBool(val any) (bool, error) {
	switch v := val.(type) {
	case bool:
		return v, nil
	default:
		return false, fmt.Errorf("readtext: converter result %T is not a bool", val)
	}
}

func asRunes(val any) ([]rune, error) {
	switch v := val.(type) {
	case string:
		return []rune(v), nil
	case []rune:
		return v, nil
	case []byte:
		return []rune(string(v)), nil
	default:
		return nil, fmt.Errorf("readtext: converter result %T is not a string", val)
	}
}
