package corpus

import (
	"fmt"

	"github.com/anujsrc/bllip-parser/score"
	"github.com/anujsrc/bllip-parser/tree"
)

// Sentence is one gold tree together with its ordered candidate
// parses. GoldEdges and MaxFScore are computed once, while the
// sentence is read.
//
// A Sentence owns its gold tree. Plain assignment aliases it; use
// Clone for an independent copy.
type Sentence struct {
	Gold      *tree.Node
	GoldEdges int
	MaxFScore float64
	Parses    []Parse
}

// NParses returns the number of candidate parses.
func (s *Sentence) NParses() int {
	return len(s.Parses)
}

// FScore returns the F-score computed for parse i when the sentence
// was read.
func (s *Sentence) FScore(i int) float64 {
	return s.Parses[i].FScore
}

// PrecRec recomputes the edge counts of parse i against the gold
// tree, for callers that need the raw counts rather than the cached
// scalar. Calling it on a sentence read with IgnoreTrees is a
// programming error and panics.
func (s *Sentence) PrecRec(i int) score.PrecRec {
	if s.Gold == nil {
		panic("corpus: PrecRec on a sentence without a gold tree")
	}
	return score.Score(score.TreeEdges(s.Gold), s.Parses[i].Tree)
}

// Clone returns a copy of s with the gold tree and every parse tree
// deep-copied.
func (s *Sentence) Clone() Sentence {
	c := Sentence{
		Gold:      s.Gold.Clone(),
		GoldEdges: s.GoldEdges,
		MaxFScore: s.MaxFScore,
	}
	if s.Parses != nil {
		c.Parses = make([]Parse, len(s.Parses))
		for i := range s.Parses {
			c.Parses[i] = s.Parses[i].Clone()
		}
	}
	return c
}

// Read populates s from the stream: the candidate count, the gold
// tree on the rest of the line, then each candidate in order, scoring
// it against the gold edges as it arrives. On failure the sentence is
// left partially populated and must be discarded by the caller.
//
// A failed candidate-count read dumps up to the next 1000 bytes of
// stream content into the error: it usually means the stream is not a
// corpus at all.
func (s *Sentence) Read(sc *Scanner, opts Options) error {
	s.Gold = nil
	s.GoldEdges = 0
	s.MaxFScore = 0
	s.Parses = nil

	nparses, err := sc.Uint()
	if err != nil {
		return fmt.Errorf("%w: %v; next content:\n%s", ErrSentenceHeader, err, sc.Dump(headerDumpBytes))
	}

	var goldEdges score.EdgeSet
	if opts.IgnoreTrees {
		if err := sc.SkipLine(); err != nil {
			return err
		}
	} else {
		line, err := sc.RestOfLine()
		if err != nil {
			return fmt.Errorf("reading gold tree line: %w", err)
		}
		gold, err := tree.Parse(line, opts.Downcase)
		if err != nil {
			return fmt.Errorf("gold tree: %w", err)
		}
		s.Gold = gold
		goldEdges = score.TreeEdges(gold)
		s.GoldEdges = goldEdges.Len()
	}

	s.Parses = make([]Parse, nparses)
	for i := range s.Parses {
		if err := s.Parses[i].read(sc, opts); err != nil {
			return fmt.Errorf("parse %d: %w", i, err)
		}
		if opts.IgnoreTrees {
			continue
		}
		pr := score.Score(goldEdges, s.Parses[i].Tree)
		s.Parses[i].NEdges = pr.Test
		s.Parses[i].NCorrect = pr.Common
		s.Parses[i].FScore = pr.FScore()
		if s.Parses[i].FScore > s.MaxFScore {
			s.MaxFScore = s.Parses[i].FScore
		}
	}
	return nil
}

// headerDumpBytes bounds the diagnostic dump after a failed sentence
// header read.
const headerDumpBytes = 1000
