package readtext

import "io"

// Read is the generalized read_rows() from original_source/src/rows.c: it
// drives a Tokenizer over stream, resolves the output column count, walks
// every row validating field-count consistency, dispatches each selected
// column through a Converter (if one is registered) or its FieldType.Parse,
// and packs the result into a growable Table. Any error aborts the whole
// read; there is never a partial Table.
//
// usecols selects source columns by index (negative indices count from the
// end of the first row's field count); nil means every field is an output
// column in source order. skiprows discards that many raw physical lines
// before tokenizing starts; having fewer input lines than skiprows is not
// an error; it simply yields an empty Table. maxRows bounds the number of
// data rows read; a negative value means unlimited, selecting the
// dynamically-growing Buffer path; a non-negative value pre-sizes the
// Buffer exactly. converters maps source column index to a Converter that
// overrides FieldType.Parse for that column.
func Read(stream Stream, dialect Dialect, usecols []int32, skiprows int, maxRows int64, converters map[int]Converter, schema Schema) (*Table, error) {
	tok := NewTokenizer(stream, dialect)
	if skiprows > 0 {
		if err := tok.SkipLines(skiprows); err != nil {
			return nil, err
		}
	}

	firstErr := tok.NextRow()
	if firstErr == io.EOF {
		return emptyTable(schema, usecols), nil
	}
	if firstErr != nil {
		return nil, firstErr
	}

	currentNumFields := tok.NumFields()

	actualNumFields := currentNumFields
	switch {
	case schema.Layout == Structured && len(schema.Fields) > 1:
		actualNumFields = len(schema.Fields)
	case usecols != nil:
		actualNumFields = len(usecols)
	}

	normalizedUsecols, err := normalizeUsecols(usecols, currentNumFields)
	if err != nil {
		return nil, err
	}

	converterTable, err := buildConverterTable(converters, normalizedUsecols, currentNumFields)
	if err != nil {
		return nil, err
	}

	workingSchema := schema
	workingSchema.Fields = append([]FieldType(nil), schema.Fields...)

	resolveSource := func(col int) int {
		if normalizedUsecols != nil {
			return int(normalizedUsecols[col])
		}
		return col
	}

	knownRows := int64(-1)
	if maxRows >= 0 {
		knownRows = maxRows
	}
	buf, err := NewBuffer(workingSchema.RowSize(actualNumFields), knownRows)
	if err != nil {
		return nil, err
	}

	rowIndex := 0 // 0-indexed data row counter for error metadata, after skiprows
	for {
		if maxRows >= 0 && int64(rowIndex) >= maxRows {
			break
		}
		fieldCount := tok.NumFields()
		if normalizedUsecols == nil && fieldCount != actualNumFields {
			return nil, &ChangedFieldCountError{Row: rowIndex, Expected: actualNumFields, Got: fieldCount}
		}

		if err := maybeWidenStrings(&workingSchema, &buf, actualNumFields, tok, resolveSource); err != nil {
			return nil, err
		}

		rowBytes, err := buf.EnsureRow(rowIndex)
		if err != nil {
			return nil, err
		}

		for col := 0; col < actualNumFields; col++ {
			srcCol := resolveSource(col)
			if srcCol < 0 || srcCol >= fieldCount {
				return nil, &InvalidColumnIndexError{Row: rowIndex, Requested: int32(srcCol), CurrentWidth: fieldCount}
			}
			text, quoted := tok.Field(srcCol)
			ft := workingSchema.FieldTypeFor(col)
			off := workingSchema.ColumnOffset(col, actualNumFields)
			dst := rowBytes[off : off+workingSchema.Descr(col).Size]

			var conv Converter
			if col < len(converterTable) {
				conv = converterTable[col]
			}

			if conv != nil {
				arg := encodeForConverter(dialect, text)
				if arg == nil {
					return nil, &BadFieldError{Row: rowIndex, Col: col, Kind: ft.Descr.Kind, Text: string(text)}
				}
				val, cerr := conv.Invoke(arg)
				if cerr != nil {
					return nil, &ConverterError{Row: rowIndex, Col: col, Cause: cerr}
				}
				if err := packConvertedValue(ft.Descr, val, dst); err != nil {
					if oe, ok := err.(*OverlongStringError); ok {
						oe.Row, oe.Col = rowIndex, col
						return nil, oe
					}
					return nil, &BadFieldError{Row: rowIndex, Col: col, Kind: ft.Descr.Kind, Text: string(text), Cause: err}
				}
				continue
			}

			if ft.Parse == nil {
				return nil, &BadFieldError{Row: rowIndex, Col: col, Kind: ft.Descr.Kind, Text: string(text),
					Cause: errNoParser}
			}
			if err := ft.Parse(dialect, text, quoted, dst); err != nil {
				return nil, &BadFieldError{Row: rowIndex, Col: col, Kind: ft.Descr.Kind, Text: string(text), Cause: err}
			}
		}

		rowIndex++

		nextErr := tok.NextRow()
		if nextErr == io.EOF {
			break
		}
		if nextErr != nil {
			return nil, nextErr
		}
	}

	data := buf.Finalize()
	return &Table{
		Schema:  workingSchema,
		Rows:    buf.Rows(),
		Cols:    actualNumFields,
		RowSize: buf.RowSize(),
		Data:    data,
	}, nil
}

// normalizeUsecols copies usecols, adding currentNumFields to any negative
// entry (Python-style negative indexing), matching rows.c's usecols
// normalization against the first row's field count.
func normalizeUsecols(usecols []int32, currentNumFields int) ([]int32, error) {
	if usecols == nil {
		return nil, nil
	}
	out := make([]int32, len(usecols))
	for i, c := range usecols {
		if c < 0 {
			c += int32(currentNumFields)
		}
		if c < 0 || int(c) >= currentNumFields {
			return nil, &InvalidColumnIndexError{Requested: usecols[i], CurrentWidth: currentNumFields}
		}
		out[i] = c
	}
	return out, nil
}

// maybeWidenStrings implements Schema.AutoWidenStrings: when the
// homogeneous schema's string element size is zero or smaller than the
// longest selected field in the current row, it widens the buffer's row
// stride in place before any cell of this row is written, grounded on
// rows.c's track_string_size / blocks_uniform_resize.
func maybeWidenStrings(schema *Schema, buf **Buffer, numCols int, tok *Tokenizer, resolveSource func(int) int) error {
	if schema.Layout != Homogeneous || !schema.AutoWidenStrings || len(schema.Fields) == 0 {
		return nil
	}
	kind := schema.Fields[0].Descr.Kind
	if !isStringKind(kind) {
		return nil
	}
	unit := 1
	if kind == KindStringWide {
		unit = 4
	}
	maxLen := schema.Fields[0].Descr.Size / unit
	for col := 0; col < numCols; col++ {
		src := resolveSource(col)
		if src < 0 || src >= tok.NumFields() {
			continue
		}
		text, _ := tok.Field(src)
		if len(text) > maxLen {
			maxLen = len(text)
		}
	}
	newSize := maxLen * unit
	if newSize <= schema.Fields[0].Descr.Size {
		return nil
	}
	newRowSize := numCols * newSize
	if err := (*buf).Widen(newRowSize); err != nil {
		return err
	}
	schema.Fields[0].Descr.Size = newSize
	return nil
}

// emptyTable builds the zero-row Table returned when skiprows consumes the
// entire input. Column count falls back to the schema's declared width or
// usecols' width since there's no first row to measure.
func emptyTable(schema Schema, usecols []int32) *Table {
	cols := 0
	switch {
	case schema.Layout == Structured && len(schema.Fields) > 1:
		cols = len(schema.Fields)
	case usecols != nil:
		cols = len(usecols)
	}
	rowSize := schema.RowSize(cols)
	return &Table{Schema: schema, Rows: 0, Cols: cols, RowSize: rowSize, Data: nil}
}
