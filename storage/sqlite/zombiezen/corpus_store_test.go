package zombiezen

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/anujsrc/bllip-parser/corpus"
)

const sample = "2\n" +
	"2 (S (NP x) (VP y))\n-0.5 (S (NP x) (VP y))\n-1.2 (S (NP x))\n" +
	"1 (S (NP (D a) (N b)) (VP c))\n-3.5 (S (D a) (VP (N b) (V c)))\n"

func newTestStore(t *testing.T) *CorpusStore {
	t.Helper()
	pool, err := NewPool(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("pool: %v", err)
	}
	t.Cleanup(func() {
		if err := pool.Close(); err != nil {
			t.Errorf("close pool: %v", err)
		}
	})
	if err := CreateCorpusTables(pool); err != nil {
		t.Fatalf("schema: %v", err)
	}
	return NewCorpusStore(pool)
}

func TestWriteAndReadBack(t *testing.T) {
	store := newTestStore(t)

	id, err := store.Create("sample")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	var c corpus.Corpus
	if err := c.Read(strings.NewReader(sample), corpus.Options{}); err != nil {
		t.Fatal(err)
	}
	for i := range c.Sentences {
		if err := store.WriteSentence(id, i, &c.Sentences[i]); err != nil {
			t.Fatalf("write sentence %d: %v", i, err)
		}
	}

	infos, err := store.Corpora()
	if err != nil {
		t.Fatalf("corpora: %v", err)
	}
	if len(infos) != 1 || infos[0].Name != "sample" || infos[0].NSentences != 2 {
		t.Fatalf("unexpected corpora: %+v", infos)
	}

	rows, err := store.Sentences(id)
	if err != nil {
		t.Fatalf("sentences: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 sentence rows, got %d", len(rows))
	}
	for i, row := range rows {
		s := &c.Sentences[i]
		if row.Index != i || row.Gold != s.Gold.String() ||
			row.GoldEdges != s.GoldEdges || row.MaxFScore != s.MaxFScore ||
			row.NParses != s.NParses() {
			t.Errorf("sentence row %d does not match source: %+v", i, row)
		}
	}

	parses, err := store.Parses(id, 0)
	if err != nil {
		t.Fatalf("parses: %v", err)
	}
	if len(parses) != 2 {
		t.Fatalf("expected 2 parse rows, got %d", len(parses))
	}
	for j, row := range parses {
		p := c.Sentences[0].Parses[j]
		if row.Index != j || row.LogProb != p.LogProb || row.FScore != p.FScore ||
			row.NEdges != p.NEdges || row.NCorrect != p.NCorrect ||
			row.Tree != p.Tree.String() {
			t.Errorf("parse row %d does not match source: %+v", j, row)
		}
	}
}

func TestWriteIgnoredTrees(t *testing.T) {
	store := newTestStore(t)

	id, err := store.Create("no-trees")
	if err != nil {
		t.Fatal(err)
	}
	var c corpus.Corpus
	if err := c.Read(strings.NewReader(sample), corpus.Options{IgnoreTrees: true}); err != nil {
		t.Fatal(err)
	}
	if err := store.WriteSentence(id, 0, &c.Sentences[0]); err != nil {
		t.Fatalf("write: %v", err)
	}
	rows, err := store.Sentences(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].Gold != "" {
		t.Errorf("ignored-trees sentence should store an empty gold rendering: %+v", rows)
	}
}
