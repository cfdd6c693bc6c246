package index

import (
	"strings"
	"sync"
	"unicode"

	sent "github.com/revelaction/newsmunger/sentence"
)

type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}

	return "right"
}

// Subtree is a dependent of a root, with everything it governs.
type Subtree struct {
	Loc Location
	Dep string

	// Head is the position of the dependent in its sentence, [Start, End)
	// the span of its subtree.
	Head  int
	Start int
	End   int

	// Text is the surface text of the span, without trailing whitespace.
	Text string

	Sentence sent.Sentence
}

// Slots groups the subtrees of one side of a root by dependency label.
type Slots map[string][]Subtree

// Entry holds the dependents observed left and right of every indexed root
// with the same lemma.
type Entry struct {
	Left  Slots
	Right Slots
}

// Side returns the slots of the side.
func (e *Entry) Side(side Side) Slots {
	if side == Left {
		return e.Left
	}

	return e.Right
}

// Bag is a per lemma cache of root dependents, filled on first use.
type Bag struct {
	lib sent.Library
	ix  *Index

	mu      sync.Mutex
	entries map[string]*Entry
}

func NewBag(lib sent.Library, ix *Index) *Bag {
	return &Bag{lib: lib, ix: ix, entries: map[string]*Entry{}}
}

// Get returns the entry for lemma, building it the first time.
func (b *Bag) Get(lemma string) *Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	if e, ok := b.entries[lemma]; ok {
		return e
	}

	e := &Entry{Left: Slots{}, Right: Slots{}}
	for _, loc := range b.ix.Locations(lemma) {
		s, ok := b.lib.Sentence(loc.DocId, loc.SentId)
		if !ok {
			continue
		}

		root, ok := s.Root()
		if !ok {
			continue
		}

		for _, c := range s.Lefts(root) {
			addSubtree(e.Left, loc, s, c)
		}

		for _, c := range s.Rights(root) {
			addSubtree(e.Right, loc, s, c)
		}
	}

	b.entries[lemma] = e
	return e
}

// Alternatives returns the subtrees with the dependency label dep found on
// the side of the lemma roots, except those of the sentence at exclude.
func (b *Bag) Alternatives(lemma string, side Side, dep string, exclude Location) []Subtree {
	alts := []Subtree{}
	for _, st := range b.Get(lemma).Side(side)[dep] {
		if st.Loc == exclude {
			continue
		}

		alts = append(alts, st)
	}

	return alts
}

func addSubtree(slots Slots, loc Location, s sent.Sentence, c int) {
	t := s.Tokens[c]
	if t.IsPunct() {
		return
	}

	start, end := s.Subtree(c)
	slots[t.Dep] = append(slots[t.Dep], Subtree{
		Loc:      loc,
		Dep:      t.Dep,
		Head:     c,
		Start:    start,
		End:      end,
		Text:     strings.TrimRightFunc(s.SpanText(start, end), unicode.IsSpace),
		Sentence: s,
	})
}
