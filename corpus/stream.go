package corpus

import (
	"fmt"
	"io"

	"github.com/anujsrc/bllip-parser/file"
)

// Stream yields the sentences of a corpus one at a time, without ever
// holding more than one in memory. The usual loop:
//
//	st, err := corpus.NewStream(r, opts)
//	...
//	for st.Scan() {
//		use(st.Sentence())
//	}
//	if err := st.Err(); err != nil { ... }
//
// The record returned by Sentence is reused by the next Scan; callers
// that retain a sentence across iterations must Clone it. A Stream is
// consumed exactly once and cannot be restarted without reopening its
// source.
type Stream struct {
	sc      *Scanner
	opts    Options
	n       int
	visited int
	sent    Sentence
	err     error
}

// NewStream reads the sentence count header from r and returns a
// stream positioned at the first sentence.
func NewStream(r io.Reader, opts Options) (*Stream, error) {
	sc := NewScanner(r)
	n, err := sc.Uint()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorpusHeader, err)
	}
	return &Stream{sc: sc, opts: opts, n: n}, nil
}

// Len returns the sentence count declared by the corpus header.
func (st *Stream) Len() int {
	return st.n
}

// Visited returns the number of sentences successfully read so far.
func (st *Stream) Visited() int {
	return st.visited
}

// Scan reads the next sentence, reporting whether one is available.
// It returns false when all declared sentences have been read or a
// read failed; Err distinguishes the two.
func (st *Stream) Scan() bool {
	if st.err != nil || st.visited >= st.n {
		return false
	}
	if err := st.sent.Read(st.sc, st.opts); err != nil {
		st.err = fmt.Errorf("sentence %d: %w", st.visited, err)
		return false
	}
	st.visited++
	return true
}

// Sentence returns the sentence read by the last successful Scan. It
// is valid only until the next Scan call.
func (st *Stream) Sentence() *Sentence {
	return &st.sent
}

// Err returns the first read failure, or nil if the stream ended
// normally. A corpus with a zero header yields no scans and a nil
// error.
func (st *Stream) Err() error {
	return st.err
}

// ForEach reads a corpus from r and invokes fn once per sentence with
// its index, in input order. It returns the number of sentences
// visited and the first failure, whether from a read or from fn. The
// sentence passed to fn is reused on the next iteration.
func ForEach(r io.Reader, opts Options, fn func(i int, s *Sentence) error) (int, error) {
	st, err := NewStream(r, opts)
	if err != nil {
		return 0, err
	}
	for st.Scan() {
		if err := fn(st.visited-1, st.Sentence()); err != nil {
			return st.visited, err
		}
	}
	return st.visited, st.Err()
}

// ForEachFile is ForEach over a named resource, decompressed by
// suffix, closed on every path.
func ForEachFile(name string, opts Options, fn func(i int, s *Sentence) error) (int, error) {
	r, err := file.Open(name)
	if err != nil {
		return 0, err
	}
	defer r.Close()
	return ForEach(r, opts, fn)
}
