package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sent "github.com/revelaction/newsmunger/sentence"
	"github.com/revelaction/newsmunger/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type DocStore struct {
	pool *sqlitex.Pool
}

var _ storage.DocRepository = (*DocStore)(nil)

func NewDocStore(pool *sqlitex.Pool) *DocStore {
	return &DocStore{pool: pool}
}

func (h *DocStore) List(labelMatch string) ([]sent.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var docs []sent.Doc
	err = sqlitex.Execute(conn, "SELECT id, title, byline, timestamp, dateline, labels FROM docs ORDER BY id", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			doc := scanDoc(stmt)
			if storage.HasLabel(doc.Labels, labelMatch) {
				docs = append(docs, doc)
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (h *DocStore) Read(id int) (sent.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return sent.Doc{}, err
	}
	defer h.pool.Put(conn)

	var doc sent.Doc
	found := false

	err = sqlitex.Execute(conn, "SELECT id, title, byline, timestamp, dateline, labels FROM docs WHERE id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			doc = scanDoc(stmt)
			return nil
		},
	})
	if err != nil {
		return sent.Doc{}, err
	}
	if !found {
		return sent.Doc{}, fmt.Errorf("doc not found: %d", id)
	}

	err = sqlitex.Execute(conn, "SELECT data FROM sentences WHERE doc_id = ? ORDER BY position", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			var s sent.Sentence
			if err := json.Unmarshal([]byte(stmt.ColumnText(0)), &s); err != nil {
				return err
			}
			s.DocId = id
			s.Id = len(doc.Sentences)
			doc.Sentences = append(doc.Sentences, s)
			return nil
		},
	})
	if err != nil {
		return sent.Doc{}, err
	}

	return doc, nil
}

// RootLemmas returns the number of sentences per root lemma.
func (h *DocStore) RootLemmas() (map[string]int, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	counts := map[string]int{}
	err = sqlitex.Execute(conn, "SELECT root_lemma, COUNT(*) FROM sentences WHERE root_lemma != '' GROUP BY root_lemma", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			counts[stmt.ColumnText(0)] = stmt.ColumnInt(1)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return counts, nil
}

func (h *DocStore) Write(doc sent.Doc) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	timestamp := ""
	if !doc.Timestamp.IsZero() {
		timestamp = doc.Timestamp.Format(time.RFC3339)
	}

	labels := strings.Join(doc.Labels, ",")
	err = sqlitex.Execute(conn, "INSERT INTO docs (title, byline, timestamp, dateline, labels) VALUES (?, ?, ?, ?, ?)", &sqlitex.ExecOptions{
		Args: []interface{}{doc.Title, doc.Byline, timestamp, doc.Dateline, labels},
	})
	if err != nil {
		return fmt.Errorf("failed to insert doc: %w", err)
	}
	docID := conn.LastInsertRowID()

	for i, sentence := range doc.Sentences {
		data, marshalErr := json.Marshal(sentence)
		if marshalErr != nil {
			return marshalErr
		}

		err = sqlitex.Execute(conn, "INSERT INTO sentences (doc_id, position, root_lemma, data) VALUES (?, ?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{docID, i, sentence.RootLemma(), string(data)},
		})
		if err != nil {
			return fmt.Errorf("failed to insert sentence: %w", err)
		}
	}

	return nil
}

func scanDoc(stmt *sqlite.Stmt) sent.Doc {
	doc := sent.Doc{
		Id:       stmt.ColumnInt(0),
		Title:    stmt.ColumnText(1),
		Byline:   stmt.ColumnText(2),
		Dateline: stmt.ColumnText(4),
	}

	if ts := stmt.ColumnText(3); ts != "" {
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			doc.Timestamp = t
		}
	}

	if labelsStr := stmt.ColumnText(5); labelsStr != "" {
		doc.Labels = strings.Split(labelsStr, ",")
	}

	return doc
}
