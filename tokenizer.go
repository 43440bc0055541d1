package readtext

import "io"

// tokenState enumerates the tokenizer's parsing states, generalized from
// original_source/src/tokenize.h's tokenizer_parsing_state enum (INIT,
// CHECK_QUOTED, UNQUOTED, UNQUOTED_WHITESPACE, QUOTED,
// QUOTED_CHECK_DOUBLE_QUOTE, LINE_END, EAT_CRLF, GOTO_LINE_END) collapsed
// onto the smaller state set this tokenizer actually needs.
type tokenState int

const (
	stateInit tokenState = iota
	stateUnquoted
	stateQuoted
	stateQuotedCheckDoubleQuote
	stateWhitespace
	stateGotoLineEnd
)

const runeEOF rune = -1

// fieldOffset marks where a field begins in the tokenizer's field buffer
// and whether it was opened with a quote, mirroring tokenize.h's
// field_info{offset, quoted}.
type fieldOffset struct {
	offset int
	quoted bool
}

// Tokenizer turns a rune Stream into one delimited row at a time. It is
// resumable: state that must survive across Stream chunk boundaries (the
// partially built field, the fields-so-far index, the current parsing
// state) lives on the Tokenizer, not on the stack of a single call,
// generalizing oleg578-swiftcsv's Reader.Read cursor loop into the state
// list above.
type Tokenizer struct {
	stream  Stream
	dialect Dialect

	chunk []rune
	pos   int
	end   int
	atEOF bool

	state    tokenState
	fieldBuf []rune
	fieldLen int
	fields   []fieldOffset

	line int
	err  error

	// commentSecond preserves the original's two-character comment marker
	// capability (original_source/src/tokenize.c's ISCOMMENT macro) without
	// exposing it on Dialect yet; always zero until a future dialect field
	// sets it.
	commentSecond rune
}

// NewTokenizer builds a Tokenizer reading from stream under dialect.
func NewTokenizer(stream Stream, dialect Dialect) *Tokenizer {
	return &Tokenizer{
		stream:   stream,
		dialect:  dialect,
		fieldBuf: make([]rune, 0, 64),
		fields:   make([]fieldOffset, 0, 16),
		line:     1,
	}
}

// Line reports the 1-indexed physical line the tokenizer is positioned on.
// It is incremented at every line terminator consumed, so after NextRow
// returns a newline-terminated row it names the line following that row.
func (t *Tokenizer) Line() int { return t.line }

func (t *Tokenizer) ensureChunk() error {
	for t.pos >= t.end {
		if t.atEOF {
			return nil
		}
		chunk, status, err := t.stream.NextChunk()
		if err != nil {
			return err
		}
		t.chunk = chunk
		t.pos = 0
		t.end = len(chunk)
		if status == FileEnd {
			t.atEOF = true
			if t.end == 0 {
				return nil
			}
		}
	}
	return nil
}

func (t *Tokenizer) getc() (rune, error) {
	if err := t.ensureChunk(); err != nil {
		return 0, err
	}
	if t.pos >= t.end {
		return runeEOF, nil
	}
	c := t.chunk[t.pos]
	t.pos++
	return c, nil
}

func (t *Tokenizer) peekc() (rune, error) {
	if err := t.ensureChunk(); err != nil {
		return 0, err
	}
	if t.pos >= t.end {
		return runeEOF, nil
	}
	return t.chunk[t.pos], nil
}

// growFieldBuffer ensures fieldBuf can hold need runes, doubling capacity
// and rounding up to a multiple of 4 units.
func (t *Tokenizer) growFieldBuffer(need int) {
	if need <= cap(t.fieldBuf) {
		return
	}
	newCap := cap(t.fieldBuf) * 2
	if newCap < need {
		newCap = need
	}
	if r := newCap % 4; r != 0 {
		newCap += 4 - r
	}
	buf := make([]rune, len(t.fieldBuf), newCap)
	copy(buf, t.fieldBuf)
	t.fieldBuf = buf
}

// appendField grows the field buffer one code point at a time, matching
// original_source/src/tokenize.c's char-by-char word buffer (the original
// is not chunk-at-a-time either: *p_word_end = c; ++p_word_end). Field
// spans are tracked via explicit offsets in t.fields rather than the
// original's NUL-terminated word buffer, so no trailing sentinel is kept.
func (t *Tokenizer) appendField(c rune) {
	t.growFieldBuffer(t.fieldLen + 1)
	if t.fieldLen >= len(t.fieldBuf) {
		t.fieldBuf = t.fieldBuf[:t.fieldLen+1]
	}
	t.fieldBuf[t.fieldLen] = c
	t.fieldLen++
}

// startField records the current field-buffer offset as the start of a new
// field and remembers whether it opened quoted.
func (t *Tokenizer) startField(quoted bool) {
	t.fields = append(t.fields, fieldOffset{offset: t.fieldLen, quoted: quoted})
}

// closeRow appends the sentinel end-of-row offset so the last field's
// length can be computed the same way as every other field's.
func (t *Tokenizer) closeRow() {
	t.fields = append(t.fields, fieldOffset{offset: t.fieldLen})
}

// NumFields reports the number of fields in the row most recently returned
// by NextRow.
func (t *Tokenizer) NumFields() int {
	if len(t.fields) == 0 {
		return 0
	}
	return len(t.fields) - 1
}

// Field returns the text and quoted flag of the i'th field (0-indexed) of
// the row most recently returned by NextRow.
func (t *Tokenizer) Field(i int) (text []rune, quoted bool) {
	start := t.fields[i].offset
	end := t.fields[i+1].offset
	return t.fieldBuf[start:end], t.fields[i].quoted
}

func (t *Tokenizer) isComment(c rune) bool {
	if t.dialect.Comment == 0 || c != t.dialect.Comment {
		return false
	}
	if t.commentSecond == 0 {
		return true
	}
	next, err := t.peekc()
	return err == nil && next == t.commentSecond
}

func (t *Tokenizer) isDelimiter(c rune) bool {
	if t.dialect.whitespaceDialect() {
		return c == ' ' || c == '\t'
	}
	return c == t.dialect.Delimiter
}

// consumeCRLFTail eats a trailing '\n' when end was '\r', implementing
// universal-newline handling (the EAT_CRLF state) so "\n", "\r", and
// "\r\n" all terminate a line equivalently.
func (t *Tokenizer) consumeCRLFTail(end rune) error {
	if end != '\r' {
		return nil
	}
	c, err := t.peekc()
	if err != nil {
		return err
	}
	if c == '\n' {
		t.pos++
	}
	return nil
}

// NextRow advances past one logical row and makes its fields available via
// NumFields/Field. It returns io.EOF once the stream is exhausted with no
// further row to report. Blank lines and comment-only lines are elided:
// internally they tokenize to a single zero-length field, which this
// method recognizes and skips rather than returning, grounded on
// nnnkkk7-go-simdcsv/field_parser.go's blank-line elision.
func (t *Tokenizer) NextRow() error {
	for {
		ok, err := t.tokenizeOneRow()
		if err != nil {
			return err
		}
		if !ok {
			return io.EOF
		}
		if t.NumFields() == 1 {
			first, _ := t.Field(0)
			if len(first) == 0 {
				continue
			}
		}
		return nil
	}
}

// SkipLines discards n raw physical lines without building field buffers,
// mirroring original_source/src/_readtextmodule.c's stream_skiplines fast
// path. Reaching end of stream before n lines are skipped is not an error.
func (t *Tokenizer) SkipLines(n int) error {
	for i := 0; i < n; i++ {
		for {
			c, err := t.getc()
			if err != nil {
				return err
			}
			if c == runeEOF {
				return nil
			}
			if c == '\n' {
				t.line++
				break
			}
			if c == '\r' {
				t.line++
				if err := t.consumeCRLFTail('\r'); err != nil {
					return err
				}
				break
			}
		}
	}
	return nil
}

// tokenizeOneRow runs the state machine for exactly one row, without the
// blank-line elision NextRow applies. ok is false only at clean EOF with no
// row pending.
func (t *Tokenizer) tokenizeOneRow() (ok bool, err error) {
	t.fields = t.fields[:0]
	t.fieldLen = 0

	startState := stateInit
	if t.dialect.whitespaceDialect() {
		startState = stateWhitespace
	}
	t.state = startState
	sawAnything := false
	t.startField(false)

	for {
		switch t.state {
		case stateWhitespace:
			c, err := t.getc()
			if err != nil {
				return false, err
			}
			if c == runeEOF {
				if !sawAnything {
					return false, nil
				}
				t.closeRow()
				return true, nil
			}
			sawAnything = true
			if t.isDelimiter(c) {
				continue // collapse runs of delimiter whitespace
			}
			done, ret, rerr := t.handleFieldStartRune(c)
			if done {
				return ret, rerr
			}
		case stateInit:
			c, err := t.getc()
			if err != nil {
				return false, err
			}
			if c == runeEOF {
				if !sawAnything {
					return false, nil
				}
				t.closeRow()
				return true, nil
			}
			sawAnything = true
			if t.dialect.IgnoreLeadingWhitespace && c == ' ' {
				continue
			}
			done, ret, rerr := t.handleFieldStartRune(c)
			if done {
				return ret, rerr
			}
		case stateUnquoted:
			c, err := t.getc()
			if err != nil {
				return false, err
			}
			if c == runeEOF {
				t.closeRow()
				return true, nil
			}
			if ok, done, ret, rerr := t.handleUnquotedRune(c); done {
				return ret, rerr
			} else if ok {
				t.appendField(c)
			}
		case stateQuoted:
			c, err := t.getc()
			if err != nil {
				return false, err
			}
			if c == runeEOF {
				// Unterminated quote at EOF: close the field as-is rather
				// than erroring. A ragged final quoted field still
				// finalizes.
				t.closeRow()
				return true, nil
			}
			if c == t.dialect.Quote {
				t.state = stateQuotedCheckDoubleQuote
				continue
			}
			if c == '\n' {
				if !t.dialect.AllowEmbeddedNewline {
					t.closeRow()
					return true, nil
				}
				t.line++
			}
			t.appendField(c)
		case stateQuotedCheckDoubleQuote:
			c, err := t.peekc()
			if err != nil {
				return false, err
			}
			if c == t.dialect.Quote {
				t.pos++
				t.appendField(c)
				t.state = stateQuoted
				continue
			}
			t.state = stateUnquoted
		case stateGotoLineEnd:
			c, err := t.getc()
			if err != nil {
				return false, err
			}
			if c == runeEOF {
				t.closeRow()
				return true, nil
			}
			if c == '\n' || c == '\r' {
				t.line++
				if err := t.consumeCRLFTail(c); err != nil {
					return false, err
				}
				t.closeRow()
				return true, nil
			}
			// discard everything else on the comment tail
		}
	}
}

// handleFieldStartRune handles the first rune of a new field once any
// leading whitespace has already been consumed: it opens a quoted field or
// delegates to handleUnquotedRune for everything else.
func (t *Tokenizer) handleFieldStartRune(c rune) (done, ret bool, rerr error) {
	if t.dialect.Quote != 0 && c == t.dialect.Quote {
		t.fields[len(t.fields)-1].quoted = true
		t.state = stateQuoted
		return false, false, nil
	}
	ok, d, r, err := t.handleUnquotedRune(c)
	if d {
		return true, r, err
	}
	if ok {
		t.state = stateUnquoted
		t.appendField(c)
	}
	return false, false, nil
}

// handleUnquotedRune classifies c while in an unquoted field. ok reports
// whether c is an ordinary field character the caller should append; done
// reports the row is finished and (ret, rerr) should be returned directly.
func (t *Tokenizer) handleUnquotedRune(c rune) (ok, done bool, ret bool, rerr error) {
	switch {
	case t.isDelimiter(c):
		t.startField(false)
		t.state = stateInitOrWhitespace(t.dialect)
		return false, false, false, nil
	case c == '\n':
		t.line++
		t.closeRow()
		return false, true, true, nil
	case c == '\r':
		t.line++
		if err := t.consumeCRLFTail(c); err != nil {
			return false, true, false, err
		}
		t.closeRow()
		return false, true, true, nil
	case t.isComment(c):
		t.state = stateGotoLineEnd
		return false, false, false, nil
	default:
		return true, false, false, nil
	}
}

func stateInitOrWhitespace(d Dialect) tokenState {
	if d.whitespaceDialect() {
		return stateWhitespace
	}
	return stateInit
}
