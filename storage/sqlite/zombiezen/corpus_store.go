package zombiezen

import (
	"context"
	"fmt"

	"github.com/anujsrc/bllip-parser/corpus"
	"github.com/anujsrc/bllip-parser/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// CorpusStore persists scored corpora in SQLite.
type CorpusStore struct {
	pool *sqlitex.Pool
}

var _ storage.CorpusRepository = (*CorpusStore)(nil)

func NewCorpusStore(pool *sqlitex.Pool) *CorpusStore {
	return &CorpusStore{pool: pool}
}

func (h *CorpusStore) Create(name string) (int64, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return 0, err
	}
	defer h.pool.Put(conn)

	err = sqlitex.Execute(conn, "INSERT INTO corpora (name) VALUES (?)", &sqlitex.ExecOptions{
		Args: []interface{}{name},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert corpus: %w", err)
	}
	return conn.LastInsertRowID(), nil
}

// WriteSentence stores one sentence and its parses in a single
// transaction. Trees are stored in their bracketed rendering; a nil
// tree (trees-ignored import) is stored as the empty string.
func (h *CorpusStore) WriteSentence(corpusID int64, idx int, s *corpus.Sentence) error {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	gold := ""
	if s.Gold != nil {
		gold = s.Gold.String()
	}
	err = sqlitex.Execute(conn,
		"INSERT INTO sentences (corpus_id, idx, gold, gold_nedges, max_fscore) VALUES (?, ?, ?, ?, ?)",
		&sqlitex.ExecOptions{
			Args: []interface{}{corpusID, idx, gold, s.GoldEdges, s.MaxFScore},
		})
	if err != nil {
		return fmt.Errorf("failed to insert sentence %d: %w", idx, err)
	}
	sentRowID := conn.LastInsertRowID()

	for i, p := range s.Parses {
		tr := ""
		if p.Tree != nil {
			tr = p.Tree.String()
		}
		err = sqlitex.Execute(conn,
			"INSERT INTO parses (sentence_id, idx, logprob, nedges, ncorrect, fscore, tree) VALUES (?, ?, ?, ?, ?, ?, ?)",
			&sqlitex.ExecOptions{
				Args: []interface{}{sentRowID, i, p.LogProb, p.NEdges, p.NCorrect, p.FScore, tr},
			})
		if err != nil {
			return fmt.Errorf("failed to insert parse %d of sentence %d: %w", i, idx, err)
		}
	}

	return nil
}

func (h *CorpusStore) Corpora() ([]storage.CorpusInfo, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var infos []storage.CorpusInfo
	err = sqlitex.Execute(conn,
		"SELECT c.id, c.name, COUNT(s.id) FROM corpora c LEFT JOIN sentences s ON s.corpus_id = c.id GROUP BY c.id ORDER BY c.id",
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				infos = append(infos, storage.CorpusInfo{
					ID:         stmt.ColumnInt64(0),
					Name:       stmt.ColumnText(1),
					NSentences: stmt.ColumnInt(2),
				})
				return nil
			},
		})
	if err != nil {
		return nil, err
	}
	return infos, nil
}

func (h *CorpusStore) Sentences(corpusID int64) ([]storage.SentenceRow, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var rows []storage.SentenceRow
	err = sqlitex.Execute(conn,
		"SELECT s.idx, s.gold, s.gold_nedges, s.max_fscore, COUNT(p.id) "+
			"FROM sentences s LEFT JOIN parses p ON p.sentence_id = s.id "+
			"WHERE s.corpus_id = ? GROUP BY s.id ORDER BY s.idx",
		&sqlitex.ExecOptions{
			Args: []interface{}{corpusID},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				rows = append(rows, storage.SentenceRow{
					Index:     stmt.ColumnInt(0),
					Gold:      stmt.ColumnText(1),
					GoldEdges: stmt.ColumnInt(2),
					MaxFScore: stmt.ColumnFloat(3),
					NParses:   stmt.ColumnInt(4),
				})
				return nil
			},
		})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (h *CorpusStore) Parses(corpusID int64, idx int) ([]storage.ParseRow, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var rows []storage.ParseRow
	err = sqlitex.Execute(conn,
		"SELECT p.idx, p.logprob, p.nedges, p.ncorrect, p.fscore, p.tree "+
			"FROM parses p JOIN sentences s ON p.sentence_id = s.id "+
			"WHERE s.corpus_id = ? AND s.idx = ? ORDER BY p.idx",
		&sqlitex.ExecOptions{
			Args: []interface{}{corpusID, idx},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				rows = append(rows, storage.ParseRow{
					Index:    stmt.ColumnInt(0),
					LogProb:  stmt.ColumnFloat(1),
					NEdges:   stmt.ColumnInt(2),
					NCorrect: stmt.ColumnInt(3),
					FScore:   stmt.ColumnFloat(4),
					Tree:     stmt.ColumnText(5),
				})
				return nil
			},
		})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
