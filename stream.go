package readtext

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// ChunkStatus describes what a Stream implementation knows about the chunk
// it just returned. The Tokenizer acts only on FileEnd; it scans
// MayContainNewline and NoNewline chunks rune by rune in the same way.
type ChunkStatus int

const (
	// MayContainNewline is the conservative default: the chunk may contain
	// zero or more newlines anywhere within it.
	MayContainNewline ChunkStatus = iota
	// NoNewline marks a chunk as newline-free. Neither adapter in this
	// package emits it.
	NoNewline
	// FileEnd marks the final chunk; the stream is exhausted once the
	// tokenizer has consumed it.
	FileEnd
)

// Stream is the pull-based chunk source the Tokenizer drives. A single
// call to [Read] issues many NextChunk calls; the returned
// slice is only guaranteed valid until the following call.
type Stream interface {
	NextChunk() (chunk []rune, status ChunkStatus, err error)
	Close() error
}

const defaultFileStreamBufSize = 1 << 20 // 1 MiB of decoded runes per chunk

// fileStream decodes UTF-8 bytes from an io.Reader into rune chunks. It
// keeps oleg578-swiftcsv's buffered-cursor refill shape (Reader.Read: a
// byte buffer refilled from the source only once drained) but decodes
// runes instead of slicing bytes directly, and reports a byte offset so a
// caller can record/restore a read position.
type fileStream struct {
	src io.Reader
	buf []byte
	pos int
	len int
	eof bool

	runes     []rune
	byteOff   int64
	closeFunc func() error
}

// NewFileStream wraps r as a Stream, decoding UTF-8 and chunking runes in
// groups of roughly bufSize runes. A bufSize <= 0 selects a 1 MiB default.
func NewFileStream(r io.Reader, bufSize int) Stream {
	if bufSize <= 0 {
		bufSize = defaultFileStreamBufSize
	}
	s := &fileStream{
		src:   r,
		buf:   make([]byte, 64*1024),
		runes: make([]rune, 0, bufSize),
	}
	if c, ok := r.(io.Closer); ok {
		s.closeFunc = c.Close
	}
	return s
}

// Offset reports the number of input bytes consumed so far. Grounded on
// original_source/src/stream.h's stream_tell contract.
func (s *fileStream) Offset() int64 { return s.byteOff }

func (s *fileStream) NextChunk() (chunk []rune, status ChunkStatus, err error) {
	s.runes = s.runes[:0]
	for len(s.runes) < cap(s.runes) {
		if s.pos >= s.len {
			if s.eof {
				break
			}
			n, rerr := s.src.Read(s.buf)
			if n == 0 {
				if rerr == io.EOF {
					s.eof = true
					break
				}
				if rerr != nil {
					return nil, MayContainNewline, tokenizerIOError(rerr)
				}
				continue
			}
			s.pos, s.len = 0, n
			if rerr == io.EOF {
				s.eof = true
			}
		}
		r, size := utf8.DecodeRune(s.buf[s.pos:s.len])
		if r == utf8.RuneError && size <= 1 {
			if !s.eof && s.len-s.pos < utf8.UTFMax {
				// Partial rune at the end of the buffered bytes: shift the
				// remainder down and refill before deciding it's invalid.
				copy(s.buf, s.buf[s.pos:s.len])
				s.len -= s.pos
				s.pos = 0
				n, rerr := s.src.Read(s.buf[s.len:])
				if n > 0 {
					s.len += n
					if rerr == io.EOF {
						s.eof = true
					}
					continue
				}
				if rerr != nil && rerr != io.EOF {
					return nil, MayContainNewline, tokenizerIOError(rerr)
				}
				s.eof = true
			}
		}
		s.runes = append(s.runes, r)
		s.pos += size
		s.byteOff += int64(size)
	}
	if len(s.runes) == 0 {
		return nil, FileEnd, nil
	}
	st := MayContainNewline
	if s.eof && s.pos >= s.len {
		st = FileEnd
	}
	return s.runes, st, nil
}

func (s *fileStream) Close() error {
	if s.closeFunc != nil {
		return s.closeFunc()
	}
	return nil
}

// lineStream adapts a pull-iterator of already-split lines (line terminator
// stripped) into one chunk per line. Grounded on oleg578-swiftcsv's test
// fixtures, which feed whole strings rather than an io.Reader, and on
// hduplooy-gofixedwidth's line-mode reader.
type lineStream struct {
	next     func() (string, bool)
	buf      []rune
	exhausted bool
}

// NewLineStream builds a Stream from a pull function returning one line at
// a time (without its terminator) and a false second value once exhausted.
// Each call to NextChunk synthesizes the line's trailing '\n' so downstream
// tokenizing is identical to a byte stream's.
func NewLineStream(next func() (string, bool)) Stream {
	return &lineStream{next: next}
}

func (s *lineStream) NextChunk() (chunk []rune, status ChunkStatus, err error) {
	if s.exhausted {
		return nil, FileEnd, nil
	}
	line, ok := s.next()
	if !ok {
		s.exhausted = true
		return nil, FileEnd, nil
	}
	s.buf = s.buf[:0]
	s.buf = append(s.buf, []rune(line)...)
	s.buf = append(s.buf, '\n')
	return s.buf, MayContainNewline, nil
}

func (s *lineStream) Close() error { return nil }

// NewLinesStream is a convenience constructor over an in-memory slice of
// lines, useful in tests in place of constructing a closure by hand.
func NewLinesStream(lines []string) Stream {
	i := 0
	return NewLineStream(func() (string, bool) {
		if i >= len(lines) {
			return "", false
		}
		line := lines[i]
		i++
		return line, true
	})
}

// bufferedTextScanner builds a NewLineStream-compatible pull function from
// a bufio.Scanner without buffering the whole file into memory first.
// Nothing in the module calls it.
func bufferedTextScanner(sc *bufio.Scanner) func() (string, bool) {
	return func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		return sc.Text(), true
	}
}
