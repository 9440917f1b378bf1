package corpus

import (
	"fmt"

	"github.com/anujsrc/bllip-parser/tree"
)

// Parse is one scored candidate parse of a sentence. NEdges, NCorrect
// and FScore are not read from the input; the enclosing Sentence sets
// them by scoring the candidate against its gold tree.
//
// A Parse owns its tree. Plain assignment aliases the tree; use Clone
// for an independent copy.
type Parse struct {
	LogProb  float64
	NEdges   int
	NCorrect int
	FScore   float64
	Tree     *tree.Node
}

// Clone returns a copy of p whose tree is deep-copied.
func (p Parse) Clone() Parse {
	c := p
	c.Tree = p.Tree.Clone()
	return c
}

// read populates p from the stream: one log-probability token, then
// the rest of the line as the candidate's tree. With IgnoreTrees the
// line is discarded and the tree stays nil. Any previously owned tree
// is dropped first, also on failure.
func (p *Parse) read(s *Scanner, opts Options) error {
	p.Tree = nil
	logprob, err := s.Float()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrParseHeader, err)
	}
	p.LogProb = logprob
	if opts.IgnoreTrees {
		return s.SkipLine()
	}
	line, err := s.RestOfLine()
	if err != nil {
		return fmt.Errorf("reading parse tree line: %w", err)
	}
	t, err := tree.Parse(line, opts.Downcase)
	if err != nil {
		return fmt.Errorf("parse tree: %w", err)
	}
	p.Tree = t
	return nil
}
