package munge

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"github.com/revelaction/newsmunger/index"
	"github.com/revelaction/newsmunger/inflect"
	"github.com/revelaction/newsmunger/parse"
	sent "github.com/revelaction/newsmunger/sentence"
)

var subjectDeps = map[string]bool{
	"nsubj":     true,
	"nsubjpass": true,
	"csubj":     true,
	"expl":      true,
}

// the finite auxiliary carries the agreement of the subject, it is never
// swapped.
var auxDeps = map[string]bool{
	"aux":     true,
	"auxpass": true,
}

// MungeChildren replaces the dependents of the root, one slot at a time,
// with a random subtree of the same dependency label taken from another
// sentence with the same root lemma. sides defaults to both sides, an empty
// depFilter allows every label. Slots without alternatives are left as
// they are. Auxiliaries are kept. When the subject is replaced, the verb is
// conjugated to agree with the new subject once every slot is replaced.
func (s *Session) MungeChildren(ctx context.Context, r Ref, sides []index.Side, depFilter []string) (Ref, error) {
	st := r.Sentence
	root, ok := st.Root()
	if !ok {
		return r, nil
	}

	if len(sides) == 0 {
		sides = []index.Side{index.Left, index.Right}
	}

	lemma := st.Tokens[root].Lemma

	for attempt := 0; attempt < s.maxRetries; attempt++ {
		edits := s.childEdits(st, root, lemma, r.location(), sides, depFilter)
		if len(edits) == 0 {
			s.logger.Debug().Str("lemma", lemma).Msg("no alternative dependents")
			return r, nil
		}

		text := cleanup(st.Rewrite(0, len(st.Tokens), edits))
		out, err := parse.First(ctx, s.parser, text)
		if err == nil {
			if _, ok := out.Root(); ok {
				return synthesized(out), nil
			}
		}

		s.logger.Debug().Err(err).Str("text", text).Int("attempt", attempt).Msg("malformed splice")
	}

	return Ref{}, ErrCouldNotSynthesize
}

func (s *Session) childEdits(st sent.Sentence, root int, lemma string, loc index.Location, sides []index.Side, depFilter []string) map[int]sent.Edit {
	edits := map[int]sent.Edit{}
	var subject *inflect.Agreement

	for _, side := range sides {
		children := st.Lefts(root)
		if side == index.Right {
			children = st.Rights(root)
		}

		for _, c := range children {
			t := st.Tokens[c]
			if t.IsPunct() || auxDeps[t.Dep] || !allowed(t.Dep, depFilter) {
				continue
			}

			alts := s.bag.Alternatives(lemma, side, t.Dep, loc)
			if len(alts) == 0 {
				continue
			}

			alt := alts[s.rand.Intn(len(alts))]
			start, end := st.Subtree(c)

			text := fitCase(alt, start == 0)
			for j := start; j < end-1; j++ {
				edits[j] = sent.Edit{Drop: true}
			}
			edits[end-1] = sent.Edit{Replace: &text}

			if subjectDeps[t.Dep] {
				a := inflect.AgreementOf(alt.Sentence, alt.Head)
				subject = &a
			}
		}
	}

	if subject != nil {
		agree(st, root, *subject, edits)
	}

	return edits
}

// agree conjugates the root, or its finite auxiliary when the root is not
// finite, for the agreement.
func agree(st sent.Sentence, root int, a inflect.Agreement, edits map[int]sent.Edit) {
	verb := root
	if !inflect.IsFinite(st.Tokens[root].Tag) {
		verb = -1
		for _, c := range st.Lefts(root) {
			t := st.Tokens[c]
			if (t.Dep == "aux" || t.Dep == "auxpass") && inflect.IsFinite(t.Tag) {
				verb = c
				break
			}
		}
	}

	if verb < 0 {
		return
	}

	t := st.Tokens[verb]
	tense, _ := inflect.TenseOf(t.Tag)
	form := inflect.Conjugate(t.Lemma, tense, a)
	if verb == 0 {
		form = sent.UpperFirst(form)
	}

	edits[verb] = sent.Edit{Replace: &form}
}

func allowed(dep string, filter []string) bool {
	if len(filter) == 0 {
		return true
	}

	for _, f := range filter {
		if f == dep {
			return true
		}
	}

	return false
}

// fitCase capitalizes a subtree moved to the start of a sentence, and
// lowers one moved away from it unless it starts with a proper noun or "I".
func fitCase(alt index.Subtree, atStart bool) string {
	if atStart {
		return sent.UpperFirst(alt.Text)
	}

	if alt.Start != 0 {
		return alt.Text
	}

	first := alt.Sentence.Tokens[alt.Start]
	if first.Pos == "PROPN" || first.Text == "I" || strings.ToUpper(first.Text) == first.Text {
		return alt.Text
	}

	return sent.LowerFirst(alt.Text)
}

var (
	spaces      = regexp.MustCompile(`\s+`)
	spacedPunct = regexp.MustCompile(`\s([,;?!.])`)
	butBetween  = regexp.MustCompile(`(\w) but `)
)

func collapseSpace(text string) string {
	return strings.TrimFunc(spaces.ReplaceAllString(text, " "), unicode.IsSpace)
}

// cleanup normalizes the text of a sentence with swapped dependents.
func cleanup(text string) string {
	text = collapseSpace(text)
	text = spacedPunct.ReplaceAllString(text, "$1")
	return butBetween.ReplaceAllString(text, "$1 and ")
}
