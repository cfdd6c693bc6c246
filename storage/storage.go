package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/revelaction/newsmunger/corpse"
	sent "github.com/revelaction/newsmunger/sentence"
)

// DocReader defines read operations for document storage
type DocReader interface {
	// List returns the metadata (Id, Title, Byline, Timestamp, Dateline,
	// Labels) of documents, ordered by Id. If labelMatch is not empty, only
	// documents with at least one label containing the string are returned.
	// Sentences are not loaded.
	List(labelMatch string) ([]sent.Doc, error)

	// Read returns a document by ID
	Read(id int) (sent.Doc, error)
}

// DocWriter defines write operations for document storage
type DocWriter interface {
	// Write persists a document and its sentences to storage
	Write(doc sent.Doc) error
}

// DocRepository combines read and write operations
type DocRepository interface {
	DocReader
	DocWriter
}

// CorpseReader defines read operations for corpse storage
type CorpseReader interface {
	// Corpses returns the stored corpses, oldest first.
	Corpses(ctx context.Context) ([]corpse.Corpse, error)
}

// CorpseWriter is a sink for munged articles
type CorpseWriter interface {
	corpse.Writer
}

// LoadLibrary reads the documents matching labelMatch into memory. The
// callback is called before each document is read.
func LoadLibrary(r DocReader, labelMatch string, cb func(current, total int, title string)) (sent.Library, error) {
	docs, err := r.List(labelMatch)
	if err != nil {
		return nil, err
	}

	lib := make(sent.Library, 0, len(docs))
	for i, meta := range docs {
		if cb != nil {
			cb(i+1, len(docs), meta.Title)
		}

		doc, err := r.Read(meta.Id)
		if err != nil {
			return nil, fmt.Errorf("could not read doc %d: %w", meta.Id, err)
		}

		lib = append(lib, doc)
	}

	return lib, nil
}

// HasLabel reports whether one of the labels contains match. An empty match
// matches everything.
func HasLabel(labels []string, match string) bool {
	if match == "" {
		return true
	}

	for _, l := range labels {
		if strings.Contains(l, match) {
			return true
		}
	}

	return false
}
