package stat

import (
	"math"
	"strings"
	"testing"

	"github.com/anujsrc/bllip-parser/corpus"
)

func loadCorpus(t *testing.T, in string) *corpus.Corpus {
	t.Helper()
	var c corpus.Corpus
	if err := c.Read(strings.NewReader(in), corpus.Options{}); err != nil {
		t.Fatalf("read: %v", err)
	}
	return &c
}

func TestAggregateEmpty(t *testing.T) {
	st := NewHandler().Get()
	if st != (Stats{}) {
		t.Errorf("no sentences should yield zero stats, got %+v", st)
	}
}

func TestAggregate(t *testing.T) {
	// Sentence 0: oracle 1 (exact candidate present).
	// Sentence 1: single candidate with no matching edges, oracle 0.
	in := "2\n" +
		"2 (S (NP x) (VP y))\n-0.5 (S (NP x) (VP y))\n-1.2 (S (NP x))\n" +
		"1 (S (NP x) (VP y))\n-3.5 (S (NP x))\n"
	c := loadCorpus(t, in)

	h := NewHandler()
	for i := range c.Sentences {
		h.Aggregate(&c.Sentences[i])
	}
	st := h.Get()

	if st.NumSentences != 2 || st.NumParses != 3 {
		t.Fatalf("counts wrong: %+v", st)
	}
	if st.ParsesPerSentenceMean != 1.5 {
		t.Errorf("parses/sentence mean: %v", st.ParsesPerSentenceMean)
	}
	if st.OracleMean != 0.5 {
		t.Errorf("oracle mean: %v", st.OracleMean)
	}
	// Sample standard deviation of {0, 1} is sqrt(0.5).
	if math.Abs(st.OracleStdDev-math.Sqrt(0.5)) > 1e-12 {
		t.Errorf("oracle stddev: %v", st.OracleStdDev)
	}
	if st.ExactFraction != 0.5 {
		t.Errorf("exact fraction: %v", st.ExactFraction)
	}

	// Gold edges: 1 per sentence. Best parses: sentence 0 candidate 0
	// (1 edge, 1 correct), sentence 1 candidate 0 (1 edge, 0 correct).
	if st.OraclePrecision != 0.5 || st.OracleRecall != 0.5 || st.OracleFScore != 0.5 {
		t.Errorf("micro oracle wrong: P=%v R=%v F=%v",
			st.OraclePrecision, st.OracleRecall, st.OracleFScore)
	}
}

func TestAggregateSingleSentence(t *testing.T) {
	c := loadCorpus(t, "1\n1 (S (NP x) (VP y))\n-0.5 (S (NP x) (VP y))\n")
	h := NewHandler()
	h.Aggregate(&c.Sentences[0])
	st := h.Get()
	if st.OracleStdDev != 0 {
		t.Errorf("stddev of one observation should be 0, got %v", st.OracleStdDev)
	}
	if st.OracleMedian != 1 {
		t.Errorf("median: %v", st.OracleMedian)
	}
}

func TestAggregateParselessSentence(t *testing.T) {
	c := loadCorpus(t, "1\n0 (S (NP x) (VP y))\n")
	h := NewHandler()
	h.Aggregate(&c.Sentences[0])
	st := h.Get()
	if st.NumParses != 0 || st.OracleMean != 0 {
		t.Errorf("parseless sentence mishandled: %+v", st)
	}
	// Gold edges counted, no best parse: recall 0, precision 0.
	if st.OracleRecall != 0 || st.OraclePrecision != 0 {
		t.Errorf("micro oracle wrong: %+v", st)
	}
}
