// Package score counts matching labeled brackets between a candidate
// parse and a gold parse and derives precision, recall and F-score.
package score

import "github.com/anujsrc/bllip-parser/tree"

// Edge is one labeled span of a parse tree. Begin and End are
// terminal positions, with End exclusive.
type Edge struct {
	Label string
	Begin int
	End   int
}

// EdgeSet is a multiset of edges. Duplicate edges (identical label
// and span) count with their multiplicity.
type EdgeSet struct {
	counts map[Edge]int
	total  int
}

// Len returns the number of edges, duplicates included.
func (es EdgeSet) Len() int {
	return es.total
}

// Count returns the multiplicity of e.
func (es EdgeSet) Count(e Edge) int {
	return es.counts[e]
}

// TreeEdges collects the scorable edges of t: one edge per internal
// node that is not a preterminal, the root included. Preterminals are
// part-of-speech assignments, not constituents, and are never counted.
func TreeEdges(t *tree.Node) EdgeSet {
	es := EdgeSet{counts: make(map[Edge]int)}
	if t != nil {
		collect(t, 0, &es)
	}
	return es
}

// collect walks the tree adding edges, returning the width of the
// node in terminals.
func collect(n *tree.Node, begin int, es *EdgeSet) int {
	if n.IsLeaf() {
		return 1
	}
	width := 0
	for _, ch := range n.Children {
		width += collect(ch, begin+width, es)
	}
	if !n.IsPreterminal() {
		es.counts[Edge{Label: n.Label, Begin: begin, End: begin + width}]++
		es.total++
	}
	return width
}

// PrecRec aggregates the edge counts of one candidate scored against
// one gold tree.
type PrecRec struct {
	Gold   int // edges in the gold tree
	Test   int // edges in the candidate
	Common int // edges present in both, multiset intersection
}

// Score counts the candidate's edges against a precomputed gold edge
// set. The gold set is computed once per sentence and reused for
// every candidate.
func Score(gold EdgeSet, cand *tree.Node) PrecRec {
	test := TreeEdges(cand)
	common := 0
	for e, n := range test.counts {
		if g := gold.Count(e); g < n {
			common += g
		} else {
			common += n
		}
	}
	return PrecRec{Gold: gold.Len(), Test: test.Len(), Common: common}
}

// Precision returns Common/Test, or 0 when the candidate has no edges.
func (pr PrecRec) Precision() float64 {
	if pr.Test == 0 {
		return 0
	}
	return float64(pr.Common) / float64(pr.Test)
}

// Recall returns Common/Gold, or 0 when the gold tree has no edges.
func (pr PrecRec) Recall() float64 {
	if pr.Gold == 0 {
		return 0
	}
	return float64(pr.Common) / float64(pr.Gold)
}

// FScore returns the harmonic mean of precision and recall,
// 2*Common/(Gold+Test), or 0 when both trees are edgeless.
func (pr PrecRec) FScore() float64 {
	if pr.Gold+pr.Test == 0 {
		return 0
	}
	return 2 * float64(pr.Common) / float64(pr.Gold+pr.Test)
}
