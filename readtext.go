// Package readtext reads delimited text into a typed, rectangular table.
//
// Two subsystems do the work: a resumable [Tokenizer] that turns a rune
// [Stream] into one row of fields at a time, and [Read], a dtype-directed
// row reader that walks those rows and packs each selected field into a
// growable [Buffer] according to a [Schema].
//
// # Features
//
//   - Chunk-resumable tokenizing: quoting, comments, embedded newlines,
//     and whitespace-delimited fields, without buffering the whole input.
//   - Typed output: integers (with overflow detection and an optional
//     float-parse fallback), floats, parenthesized complex numbers, and
//     fixed-width narrow/wide strings, packed directly into a byte arena.
//   - usecols projection, skiprows, a row cap, and per-column Converter
//     overrides.
//   - Structured error reporting via [BadFieldError], [ChangedFieldCountError],
//     [InvalidColumnIndexError], [ConverterError], and [OverlongStringError].
//
// Not in scope: dtype inference, character-set transcoding, a write path
// as a first-class feature, and parallelism.
package readtext
