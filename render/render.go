// Package render formats evaluation reports for human and machine
// consumption.
package render

import (
	"fmt"
	"io"

	"github.com/anujsrc/bllip-parser/corpus"
	"github.com/anujsrc/bllip-parser/stat"
)

// Report is one corpus evaluation: the aggregate statistics and,
// optionally, a per-sentence summary.
type Report struct {
	Corpus    string            `json:"corpus"`
	Stats     stat.Stats        `json:"stats"`
	Sentences []SentenceSummary `json:"sentences,omitempty"`
}

// SentenceSummary is the per-sentence view of a report.
type SentenceSummary struct {
	Index     int     `json:"index"`
	NParses   int     `json:"nparses"`
	GoldEdges int     `json:"gold_nedges"`
	MaxFScore float64 `json:"max_fscore"`

	// BestParse is the index of the first candidate reaching
	// MaxFScore, -1 for a parseless sentence.
	BestParse   int     `json:"best_parse"`
	BestLogProb float64 `json:"best_logprob"`

	// TopFScore is the F-score of the top-ranked candidate, the one
	// the base parser would output.
	TopFScore float64 `json:"top_fscore"`
}

// Summarize builds the per-sentence summary for sentence i.
func Summarize(i int, s *corpus.Sentence) SentenceSummary {
	sum := SentenceSummary{
		Index:     i,
		NParses:   s.NParses(),
		GoldEdges: s.GoldEdges,
		MaxFScore: s.MaxFScore,
		BestParse: -1,
	}
	if s.NParses() > 0 {
		sum.TopFScore = s.FScore(0)
	}
	for j := range s.Parses {
		if s.Parses[j].FScore == s.MaxFScore {
			sum.BestParse = j
			sum.BestLogProb = s.Parses[j].LogProb
			break
		}
	}
	return sum
}

// Renderer writes a report to its output.
type Renderer interface {
	Render(rep Report) error
}

// TextRenderer writes a report as human-readable lines.
type TextRenderer struct {
	W io.Writer
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{W: w}
}

func (r *TextRenderer) Render(rep Report) error {
	st := rep.Stats
	if _, err := fmt.Fprintf(r.W,
		"corpus %s: %d sentences, %d parses (%.1f per sentence)\n"+
			"oracle f-score: mean %.4f, stddev %.4f, median %.4f, exact %.1f%%\n"+
			"oracle (micro): precision %.4f, recall %.4f, f-score %.4f\n",
		rep.Corpus, st.NumSentences, st.NumParses, st.ParsesPerSentenceMean,
		st.OracleMean, st.OracleStdDev, st.OracleMedian, 100*st.ExactFraction,
		st.OraclePrecision, st.OracleRecall, st.OracleFScore); err != nil {
		return err
	}
	for _, s := range rep.Sentences {
		if _, err := fmt.Fprintf(r.W,
			"sent %4d: %3d parses, gold edges %2d, best %d (logprob %g), f-score top %.4f max %.4f\n",
			s.Index, s.NParses, s.GoldEdges, s.BestParse, s.BestLogProb,
			s.TopFScore, s.MaxFScore); err != nil {
			return err
		}
	}
	return nil
}

// compile-time interface check
var _ Renderer = (*TextRenderer)(nil)
