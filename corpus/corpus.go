// Package corpus reads n-best parse corpora: a sentence count, then
// per sentence a gold tree and a ranked list of candidate parses with
// model log-probabilities. Every candidate is scored against the gold
// tree as it is read.
//
// The format, whitespace-insensitive between numeric tokens:
//
//	<corpus>   ::= <nsentences> <sentence>*
//	<sentence> ::= <nparses> <gold-tree-line> <parse>*
//	<parse>    ::= <logprob> <tree-line>
//
// Tree lines run to the end of the current line and are handed
// verbatim to the tree parser.
package corpus

import (
	"errors"
	"fmt"
	"io"

	"github.com/anujsrc/bllip-parser/file"
)

// Sentinel errors for the malformed-header conditions. Wrapped errors
// carry the position and the offending token.
var (
	ErrCorpusHeader   = errors.New("corpus: missing corpus header")
	ErrSentenceHeader = errors.New("corpus: malformed sentence header")
	ErrParseHeader    = errors.New("corpus: malformed parse header")
)

// Options configures every read entry point.
type Options struct {
	// Downcase lower-cases terminal tokens inside tree text.
	Downcase bool

	// IgnoreTrees skips tree bodies entirely: gold and parse trees
	// stay nil, no scoring is performed, and the stream is consumed
	// exactly as in a scoring load.
	IgnoreTrees bool
}

// Corpus is an ordered sequence of sentences, loaded in full. For
// corpora too large to materialize, use Stream or ForEach.
type Corpus struct {
	Sentences []Sentence
}

// NSentences returns the number of loaded sentences.
func (c *Corpus) NSentences() int {
	return len(c.Sentences)
}

// Read populates c from r: the sentence count header, then each
// sentence in order. On failure c is left partially populated and
// must be discarded by the caller.
func (c *Corpus) Read(r io.Reader, opts Options) error {
	sc := NewScanner(r)
	n, err := sc.Uint()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCorpusHeader, err)
	}
	c.Sentences = make([]Sentence, n)
	for i := range c.Sentences {
		if err := c.Sentences[i].Read(sc, opts); err != nil {
			return fmt.Errorf("sentence %d: %w", i, err)
		}
	}
	return nil
}

// Load opens the named resource (decompressing by suffix, see
// file.Open), reads a corpus from it and closes it on every path.
func Load(name string, opts Options) (*Corpus, error) {
	r, err := file.Open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var c Corpus
	if err := c.Read(r, opts); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &c, nil
}

// MustLoad is Load for top-level tooling: it panics on any failure
// instead of returning an error.
func MustLoad(name string, opts Options) *Corpus {
	c, err := Load(name, opts)
	if err != nil {
		panic(err)
	}
	return c
}
