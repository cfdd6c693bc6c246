package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/revelaction/newsmunger/corpse"
	"github.com/revelaction/newsmunger/storage"
)

const separator = "******"

// CorpseStore appends corpses to a text file per day, exq_YYYYMMDD.txt.
type CorpseStore struct {
	dir string
}

var _ storage.CorpseWriter = (*CorpseStore)(nil)

func NewCorpseStore(dir string) *CorpseStore {
	return &CorpseStore{dir: dir}
}

// Path returns the file the corpse is appended to.
func (h *CorpseStore) Path(c corpse.Corpse) string {
	return filepath.Join(h.dir, fmt.Sprintf("exq_%s.txt", c.Created.Format("20060102")))
}

func (h *CorpseStore) Write(ctx context.Context, c corpse.Corpse) error {
	f, err := os.OpenFile(h.Path(c), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	b.WriteString(c.Title)
	b.WriteString("\n\n")
	b.WriteString(c.Text())
	b.WriteString("\n\n")
	b.WriteString(separator)
	b.WriteString("\n\n")

	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("IO error: %w", err)
	}

	return nil
}
