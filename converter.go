package readtext

// Converter is the escape hatch a caller plugs in to override how one
// output column's field text is turned into a value, bypassing the
// column's FieldType.Parse entirely. Modeled as a single-method interface,
// with ConverterFunc as the func-adapter (Go's http.HandlerFunc idiom) for
// the common case of supplying a plain function.
// Converter.Invoke receives a []rune by default, or a []byte when the
// dialect's PythonByteConverters/CByteConverters flag is set (see
// encodeForConverter) — mirroring the original's choice between handing
// the converter a decoded string or an encoded bytes object.
type Converter interface {
	Invoke(field any) (any, error)
}

// ConverterFunc adapts a plain function to the Converter interface.
type ConverterFunc func(field any) (any, error)

// Invoke calls f.
func (f ConverterFunc) Invoke(field any) (any, error) { return f(field) }

// buildConverterTable resolves a caller-supplied {source column -> Converter}
// map into a table indexed by *output* column position, generalizing
// original_source/src/rows.c's create_conv_funcs.
//
// When usecols is non-nil, output column i's converter is whatever the
// caller registered for source column usecols[i] (already normalized
// against numSourceFields by the time this is called); converters keyed to
// columns not in usecols are silently unused, matching the original.
//
// When usecols is nil, every source column is an output column at the same
// position; negative keys in converters are normalized by adding
// numSourceFields (Python-style negative indexing), then bounds-checked.
func buildConverterTable(converters map[int]Converter, usecols []int32, numSourceFields int) ([]Converter, error) {
	if usecols != nil {
		table := make([]Converter, len(usecols))
		for i, col := range usecols {
			if c, ok := converters[int(col)]; ok {
				table[i] = c
			}
		}
		return table, nil
	}

	table := make([]Converter, numSourceFields)
	for key, conv := range converters {
		k := key
		if k < 0 {
			k += numSourceFields
		}
		if k < 0 || k >= numSourceFields {
			return nil, &InvalidColumnIndexError{Requested: int32(key), CurrentWidth: numSourceFields}
		}
		table[k] = conv
	}
	return table, nil
}

// encodeForConverter applies the byte-converter dialect flags before
// invoking a Converter, matching the original's python_byte_converters /
// c_byte_converters modes: by default the converter sees decoded runes
// directly.
func encodeForConverter(d Dialect, text []rune) any {
	switch {
	case d.PythonByteConverters:
		return []byte(string(text))
	case d.CByteConverters:
		buf := make([]byte, len(text))
		for i, c := range text {
			if c > 255 {
				return nil
			}
			buf[i] = byte(c)
		}
		return buf
	default:
		return text
	}
}
