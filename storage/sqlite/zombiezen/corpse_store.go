package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/revelaction/newsmunger/corpse"
	"github.com/revelaction/newsmunger/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type CorpseStore struct {
	pool *sqlitex.Pool
}

var _ storage.CorpseWriter = (*CorpseStore)(nil)
var _ storage.CorpseReader = (*CorpseStore)(nil)

func NewCorpseStore(pool *sqlitex.Pool) *CorpseStore {
	return &CorpseStore{pool: pool}
}

func (h *CorpseStore) Write(ctx context.Context, c corpse.Corpse) error {
	conn, err := h.pool.Take(ctx)
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	sentences, err := json.Marshal(c.Sentences)
	if err != nil {
		return err
	}

	err = sqlitex.Execute(conn, "INSERT INTO corpses (id, title, base_doc, created, sentences) VALUES (?, ?, ?, ?, ?)", &sqlitex.ExecOptions{
		Args: []interface{}{c.Id.String(), c.Title, c.BaseDoc, c.Created.UTC().Format(time.RFC3339Nano), string(sentences)},
	})
	if err != nil {
		return fmt.Errorf("failed to insert corpse: %w", err)
	}

	return nil
}

func (h *CorpseStore) Corpses(ctx context.Context) ([]corpse.Corpse, error) {
	conn, err := h.pool.Take(ctx)
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var corpses []corpse.Corpse
	err = sqlitex.Execute(conn, "SELECT id, title, base_doc, created, sentences FROM corpses ORDER BY created, rowid", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			id, err := uuid.Parse(stmt.ColumnText(0))
			if err != nil {
				return err
			}

			created, err := time.Parse(time.RFC3339Nano, stmt.ColumnText(3))
			if err != nil {
				return err
			}

			c := corpse.Corpse{
				Id:      id,
				Title:   stmt.ColumnText(1),
				BaseDoc: stmt.ColumnInt(2),
				Created: created,
			}

			if err := json.Unmarshal([]byte(stmt.ColumnText(4)), &c.Sentences); err != nil {
				return err
			}

			corpses = append(corpses, c)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return corpses, nil
}
