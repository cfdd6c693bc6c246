package munge

import (
	"github.com/revelaction/newsmunger/index"
	sent "github.com/revelaction/newsmunger/sentence"
)

// Ref is a sentence and its provenance. Loc is nil for synthesized
// sentences.
type Ref struct {
	Loc      *index.Location
	Lemma    string
	Sentence sent.Sentence
}

// Synthesized reports whether the sentence has no single source.
func (r Ref) Synthesized() bool {
	return r.Loc == nil
}

func (r Ref) Text() string {
	return r.Sentence.Text()
}

func synthesized(s sent.Sentence) Ref {
	return Ref{Lemma: s.RootLemma(), Sentence: s}
}

// nowhere is the location of synthesized sentences in exclusion sets.
var nowhere = index.Location{DocId: -1, SentId: -1}

func (r Ref) location() index.Location {
	if r.Loc == nil {
		return nowhere
	}

	return *r.Loc
}
