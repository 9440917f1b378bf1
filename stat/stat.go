// Package stat aggregates corpus-level statistics over scored
// sentences, in particular the oracle quality of the candidate lists:
// how good a parser would be if it always picked its best candidate.
package stat

import (
	"sort"

	gstat "gonum.org/v1/gonum/stat"

	"github.com/anujsrc/bllip-parser/corpus"
)

type Handler struct {
	numSentences int
	numParses    int
	exact        int

	// oracle F-scores, one per aggregated sentence
	oracle []float64

	// micro-averaged oracle counts, summed over each sentence's best parse
	goldEdges   int
	bestEdges   int
	bestCorrect int
}

// Stats is the aggregate over all sentences seen by a Handler.
type Stats struct {
	NumSentences int
	NumParses    int

	ParsesPerSentenceMean float64

	// Distribution of the per-sentence oracle (maximum) F-score.
	OracleMean   float64
	OracleStdDev float64
	OracleMedian float64

	// Fraction of sentences whose best candidate matches the gold
	// tree exactly (oracle F-score of 1).
	ExactFraction float64

	// Micro-averaged precision/recall/F over each sentence's best
	// candidate, edge counts summed corpus-wide.
	OraclePrecision float64
	OracleRecall    float64
	OracleFScore    float64
}

func NewHandler() *Handler {
	return &Handler{}
}

// Aggregate folds one sentence into the running statistics. The
// sentence is not retained; Aggregate is safe to drive from a
// streaming load.
func (h *Handler) Aggregate(s *corpus.Sentence) {
	h.numSentences++
	h.numParses += s.NParses()
	h.oracle = append(h.oracle, s.MaxFScore)
	if s.MaxFScore == 1 {
		h.exact++
	}

	h.goldEdges += s.GoldEdges
	if best := bestParse(s); best >= 0 {
		h.bestEdges += s.Parses[best].NEdges
		h.bestCorrect += s.Parses[best].NCorrect
	}
}

// bestParse returns the index of the first parse reaching the
// sentence's maximum F-score, or -1 for a parseless sentence.
func bestParse(s *corpus.Sentence) int {
	for i := range s.Parses {
		if s.Parses[i].FScore == s.MaxFScore {
			return i
		}
	}
	return -1
}

// Get computes the aggregate. A Handler that has seen no sentences
// yields the zero Stats.
func (h *Handler) Get() Stats {
	st := Stats{
		NumSentences: h.numSentences,
		NumParses:    h.numParses,
	}
	if h.numSentences == 0 {
		return st
	}
	st.ParsesPerSentenceMean = float64(h.numParses) / float64(h.numSentences)
	st.ExactFraction = float64(h.exact) / float64(h.numSentences)

	st.OracleMean = gstat.Mean(h.oracle, nil)
	st.OracleStdDev = gstat.StdDev(h.oracle, nil)
	if h.numSentences == 1 {
		// StdDev of a single observation is NaN (n-1 denominator).
		st.OracleStdDev = 0
	}

	sorted := make([]float64, len(h.oracle))
	copy(sorted, h.oracle)
	sort.Float64s(sorted)
	st.OracleMedian = gstat.Quantile(0.5, gstat.Empirical, sorted, nil)

	if h.bestEdges > 0 {
		st.OraclePrecision = float64(h.bestCorrect) / float64(h.bestEdges)
	}
	if h.goldEdges > 0 {
		st.OracleRecall = float64(h.bestCorrect) / float64(h.goldEdges)
	}
	if h.goldEdges+h.bestEdges > 0 {
		st.OracleFScore = 2 * float64(h.bestCorrect) / float64(h.goldEdges+h.bestEdges)
	}
	return st
}
