// Package index maps root lemmas to the sentences of a library sharing them.
package index

import (
	"sort"

	sent "github.com/revelaction/newsmunger/sentence"
)

// Location identifies a sentence of a library.
type Location struct {
	DocId  int
	SentId int
}

// Index maps a root lemma to the locations of the sentences with that root.
// Only lemmas that occur at least twice are kept.
type Index struct {
	locations map[string][]Location
}

// Build indexes the library. Locations are in doc then sentence order.
func Build(lib sent.Library) *Index {
	counts := map[string]int{}
	for _, doc := range lib {
		for _, s := range doc.Sentences {
			if lemma := s.RootLemma(); lemma != "" {
				counts[lemma]++
			}
		}
	}

	ix := &Index{locations: map[string][]Location{}}
	for docId, doc := range lib {
		for sentId, s := range doc.Sentences {
			lemma := s.RootLemma()
			if counts[lemma] < 2 {
				continue
			}

			ix.locations[lemma] = append(ix.locations[lemma], Location{DocId: docId, SentId: sentId})
		}
	}

	return ix
}

// Locations returns the locations of the sentences with root lemma. The
// returned slice must not be modified.
func (ix *Index) Locations(lemma string) []Location {
	return ix.locations[lemma]
}

// Has reports whether lemma is indexed.
func (ix *Index) Has(lemma string) bool {
	_, ok := ix.locations[lemma]
	return ok
}

// Lemmas returns the indexed lemmas, sorted.
func (ix *Index) Lemmas() []string {
	lemmas := make([]string, 0, len(ix.locations))
	for l := range ix.locations {
		lemmas = append(lemmas, l)
	}

	sort.Strings(lemmas)
	return lemmas
}

// Len returns the number of indexed lemmas.
func (ix *Index) Len() int {
	return len(ix.locations)
}
