// Package storage defines persistence for scored corpora, so that
// downstream training and analysis tooling can query parses without
// re-reading and re-scoring the source files.
package storage

import "github.com/anujsrc/bllip-parser/corpus"

// CorpusInfo is the stored metadata of one imported corpus.
type CorpusInfo struct {
	ID         int64
	Name       string
	NSentences int
}

// SentenceRow is one stored sentence. Gold is the bracketed rendering
// of the gold tree, empty when the corpus was imported with trees
// ignored.
type SentenceRow struct {
	Index     int
	Gold      string
	GoldEdges int
	MaxFScore float64
	NParses   int
}

// ParseRow is one stored candidate parse.
type ParseRow struct {
	Index    int
	LogProb  float64
	NEdges   int
	NCorrect int
	FScore   float64
	Tree     string
}

// CorpusWriter defines write operations for corpus storage. Sentences
// are written one at a time, in input order, so a streaming load can
// feed the writer without materializing the corpus.
type CorpusWriter interface {
	// Create registers a corpus by name and returns its id.
	Create(name string) (int64, error)

	// WriteSentence persists sentence idx of the given corpus,
	// including all of its parses.
	WriteSentence(corpusID int64, idx int, s *corpus.Sentence) error
}

// CorpusReader defines read operations for corpus storage.
type CorpusReader interface {
	// Corpora returns the metadata of all stored corpora.
	Corpora() ([]CorpusInfo, error)

	// Sentences returns the stored sentences of a corpus in input
	// order, without their parses.
	Sentences(corpusID int64) ([]SentenceRow, error)

	// Parses returns the stored parses of sentence idx in input order.
	Parses(corpusID int64, idx int) ([]ParseRow, error)
}

// CorpusRepository combines read and write operations.
type CorpusRepository interface {
	CorpusWriter
	CorpusReader
}
