package munge

import (
	"context"
	"strings"

	"github.com/revelaction/newsmunger/verbclass"
)

// Kind selects the munging strategy of a root lemma.
type Kind int

const (
	KindDefault Kind = iota
	// reporting verbs, their quoted clause is munged on its own
	KindSpeech
	// copular and auxiliary verbs, their dependents are swapped
	KindCopular
)

func (k Kind) String() string {
	switch k {
	case KindSpeech:
		return "speech"
	case KindCopular:
		return "copular"
	}

	return "default"
}

var copular = map[string]bool{
	"be":   true,
	"do":   true,
	"have": true,
}

// speechVerb heads the class of the reporting verbs.
const speechVerb = "say"

var defaultClasses = verbclass.Default()

// KindOf returns the kind of the root lemma, the speech verbs being those of
// the embedded verb classes.
func KindOf(lemma string) Kind {
	return KindIn(defaultClasses, lemma)
}

// KindIn returns the kind of the root lemma. The speech verbs are "say" and
// the verbs sharing a class with it in classes.
func KindIn(classes verbclass.Resource, lemma string) Kind {
	lemma = strings.ToLower(lemma)

	switch {
	case copular[lemma]:
		return KindCopular
	case lemma == speechVerb:
		return KindSpeech
	}

	for _, l := range verbclass.Related(classes, speechVerb) {
		if l == lemma {
			return KindSpeech
		}
	}

	return KindDefault
}

// KindOf returns the kind of the root lemma with the verb classes of the
// session.
func (s *Session) KindOf(lemma string) Kind {
	return KindIn(s.classes, lemma)
}

// Munge recombines the sentence with the strategy of its root lemma.
func (s *Session) Munge(ctx context.Context, r Ref) (Ref, error) {
	kind := s.KindOf(r.Lemma)
	s.logger.Debug().Str("lemma", r.Lemma).Str("kind", kind.String()).Msg("munge")

	switch kind {
	case KindSpeech:
		return s.mungeSayings(ctx, r, nil, 0)
	case KindCopular:
		return s.MungeChildren(ctx, r, nil, nil)
	}

	return s.mungeOnRoots(ctx, &r, nil, 0)
}
