package munge

import (
	"strings"

	"github.com/revelaction/newsmunger/index"
	sent "github.com/revelaction/newsmunger/sentence"
	"github.com/revelaction/newsmunger/verbclass"
)

// Criteria restricts the sentences Select chooses from.
type Criteria struct {
	// DocId restricts to one doc. It takes precedence over Docs and Focus.
	DocId *int
	Docs  []int

	// Focus restricts to the docs where the text appears.
	Focus string

	Exclude map[index.Location]bool

	// Lemma restricts to sentences with that root lemma, or with the root
	// lemma of a verb of the same class when none is left.
	Lemma string
}

func (c Criteria) excluded(loc index.Location) bool {
	return c.Exclude[loc]
}

// Select chooses a random sentence among those satisfying the criteria. It
// returns ErrNoCandidate when none does.
func (s *Session) Select(c Criteria) (Ref, error) {
	var candidates []index.Location
	if c.Lemma != "" {
		candidates = s.lemmaCandidates(c)
	} else {
		candidates = s.docCandidates(c)
	}

	if len(candidates) == 0 {
		return Ref{}, ErrNoCandidate
	}

	loc := candidates[s.rand.Intn(len(candidates))]
	r, _ := s.Ref(loc)
	return r, nil
}

func (s *Session) lemmaCandidates(c Criteria) []index.Location {
	candidates := s.available(c, s.ix.Locations(c.Lemma))
	if len(candidates) > 0 {
		return candidates
	}

	for _, lemma := range verbclass.Related(s.classes, c.Lemma) {
		candidates = append(candidates, s.available(c, s.ix.Locations(lemma))...)
	}

	if len(candidates) > 0 {
		s.logger.Debug().Str("lemma", c.Lemma).Int("candidates", len(candidates)).Msg("verb class fallback")
	}

	return candidates
}

func (s *Session) available(c Criteria, locs []index.Location) []index.Location {
	available := []index.Location{}
	for _, loc := range locs {
		if c.excluded(loc) {
			continue
		}

		available = append(available, loc)
	}

	return available
}

func (s *Session) docCandidates(c Criteria) []index.Location {
	var docs []int
	switch {
	case c.DocId != nil:
		docs = []int{*c.DocId}
	case len(c.Docs) > 0:
		docs = c.Docs
	case c.Focus != "":
		docs = s.FocusDocs(c.Focus)
	default:
		for i := range s.lib {
			docs = append(docs, i)
		}
	}

	candidates := []index.Location{}
	for _, docId := range docs {
		if docId < 0 || docId >= len(s.lib) {
			continue
		}

		for sentId, st := range s.lib[docId].Sentences {
			loc := index.Location{DocId: docId, SentId: sentId}
			if c.excluded(loc) {
				continue
			}

			if _, ok := st.Root(); !ok {
				continue
			}

			candidates = append(candidates, loc)
		}
	}

	return candidates
}

// FocusDocs returns the docs where the focus text appears, ignoring case.
func (s *Session) FocusDocs(focus string) []int {
	words := strings.Fields(strings.ToLower(focus))
	docs := []int{}
	if len(words) == 0 {
		return docs
	}

	for i, doc := range s.lib {
		for _, st := range doc.Sentences {
			if appears(st, words) {
				docs = append(docs, i)
				break
			}
		}
	}

	return docs
}

func appears(s sent.Sentence, words []string) bool {
	for i := 0; i+len(words) <= len(s.Tokens); i++ {
		match := true
		for j, w := range words {
			if strings.ToLower(s.Tokens[i+j].Text) != w {
				match = false
				break
			}
		}

		if match {
			return true
		}
	}

	return false
}
