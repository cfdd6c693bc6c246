package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	sent "github.com/revelaction/newsmunger/sentence"
	"github.com/revelaction/newsmunger/storage"
)

// DocStore keeps one JSON file per document in a directory. Ids are the
// positions of the files in name order.
type DocStore struct {
	docDir string

	files []string

	// In-memory cache
	docs map[int]sent.Doc
}

var _ storage.DocRepository = (*DocStore)(nil)

// NewDocStore creates a filesystem document store.
func NewDocStore(docDir string) (*DocStore, error) {
	files, err := os.ReadDir(docDir)
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, file := range files {
		if filepath.Ext(file.Name()) == ".json" {
			names = append(names, file.Name())
		}
	}

	return &DocStore{
		docDir: docDir,
		files:  names,
		docs:   map[int]sent.Doc{},
	}, nil
}

func (h *DocStore) List(labelMatch string) ([]sent.Doc, error) {
	docs := make([]sent.Doc, 0, len(h.files))
	for id := range h.files {
		doc, err := h.Read(id)
		if err != nil {
			return nil, err
		}

		if !storage.HasLabel(doc.Labels, labelMatch) {
			continue
		}

		doc.Sentences = nil
		docs = append(docs, doc)
	}

	return docs, nil
}

func (h *DocStore) Read(id int) (sent.Doc, error) {
	if id < 0 || id >= len(h.files) {
		return sent.Doc{}, fmt.Errorf("doc id out of range: %d", id)
	}

	if doc, ok := h.docs[id]; ok {
		return doc, nil
	}

	doc, err := ReadDoc(filepath.Join(h.docDir, h.files[id]))
	if err != nil {
		return sent.Doc{}, err
	}

	doc.Id = id
	if doc.Title == "" {
		doc.Title = strings.TrimSuffix(h.files[id], ".json")
	}

	for i := range doc.Sentences {
		doc.Sentences[i].DocId = id
		doc.Sentences[i].Id = i
	}

	h.docs[id] = doc
	return doc, nil
}

// Write stores the doc in a new file named after its title.
func (h *DocStore) Write(doc sent.Doc) error {
	name := fmt.Sprintf("%s.json", slug(doc.Title))
	for _, f := range h.files {
		if f == name {
			name = fmt.Sprintf("%s_%d.json", slug(doc.Title), len(h.files))
			break
		}
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("JSON encoding error: %w", err)
	}

	if err := os.WriteFile(filepath.Join(h.docDir, name), data, 0644); err != nil {
		return fmt.Errorf("IO error: %w", err)
	}

	h.files = append(h.files, name)
	return nil
}

// ReadDoc reads a Doc JSON from the given path and unmarshals it.
func ReadDoc(path string) (sent.Doc, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("IO error: %w", err)
	}

	var doc sent.Doc
	err = json.Unmarshal(f, &doc)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("JSON decoding error: %w", err)
	}

	return doc, nil
}

var nonWord = regexp.MustCompile(`[^a-z0-9]+`)

func slug(title string) string {
	s := strings.Trim(nonWord.ReplaceAllString(strings.ToLower(title), "_"), "_")
	if s == "" {
		return "doc"
	}

	return s
}
