package munge

import (
	"context"
	"fmt"
	"strings"

	"github.com/revelaction/newsmunger/index"
	"github.com/revelaction/newsmunger/inflect"
	"github.com/revelaction/newsmunger/parse"
	sent "github.com/revelaction/newsmunger/sentence"
)

// MungeOnRoots splices the left dependents of the root of a onto the root
// and right dependents of b. A nil a is chosen at random; a nil b is a
// random sentence sharing the root lemma of a. When a or b has quotes, both
// are munged by MungeSayings.
func (s *Session) MungeOnRoots(ctx context.Context, a, b *Ref) (Ref, error) {
	return s.mungeOnRoots(ctx, a, b, 0)
}

func (s *Session) mungeOnRoots(ctx context.Context, a, b *Ref, depth int) (Ref, error) {
	for attempt := 0; attempt < s.maxRetries; attempt++ {
		left := a
		if left == nil {
			r, err := s.Select(Criteria{})
			if err != nil {
				return Ref{}, err
			}
			left = &r
		}

		if left.Sentence.HasQuote() || (b != nil && b.Sentence.HasQuote()) {
			return s.mungeSayings(ctx, *left, b, depth)
		}

		if _, ok := left.Sentence.Root(); !ok {
			return Ref{}, fmt.Errorf("%w: sentence has no root", ErrCouldNotSynthesize)
		}

		right := b
		if right == nil || attempt > 0 {
			r, err := s.partner(*left)
			if err != nil {
				return Ref{}, err
			}
			right = &r
		}

		text, ok := Splice(left.Sentence, right.Sentence)
		if ok {
			out, err := parse.First(ctx, s.parser, text)
			if err == nil {
				if _, ok := out.Root(); ok {
					return synthesized(out), nil
				}
			}

			s.logger.Debug().Err(err).Str("text", text).Int("attempt", attempt).Msg("malformed splice")
		}
	}

	return Ref{}, ErrCouldNotSynthesize
}

// partner selects a random unquoted sentence with the root lemma of r.
func (s *Session) partner(r Ref) (Ref, error) {
	exclude := map[index.Location]bool{r.location(): true}

	lemma := r.Lemma
	if lemma == "" {
		lemma = r.Sentence.RootLemma()
	}

	for {
		p, err := s.Select(Criteria{Lemma: lemma, Exclude: exclude})
		if err != nil {
			return Ref{}, err
		}

		if !p.Sentence.HasQuote() {
			return p, nil
		}

		exclude[p.location()] = true
	}
}

// Splice joins the left dependents of the root of a, the root of b
// inflected like the root of a and for its subject, and the right
// dependents of b. Verbs coordinated to the root of b are inflected too. It
// returns false if one of the sentences has no root.
func Splice(a, b sent.Sentence) (string, bool) {
	ra, ok := a.Root()
	if !ok {
		return "", false
	}

	rb, ok := b.Root()
	if !ok {
		return "", false
	}

	tag := a.Tokens[ra].Tag
	verbal := strings.HasPrefix(tag, "VB")

	// a finite root agrees with the subject on the left
	inflectRoot := func(lemma string) string {
		return inflect.Inflect(lemma, tag)
	}
	if tense, finite := inflect.TenseOf(tag); finite {
		if subj, ok := subjectOf(a, ra); ok {
			agreement := inflect.AgreementOf(a, subj)
			inflectRoot = func(lemma string) string {
				return inflect.Conjugate(lemma, tense, agreement)
			}
		}
	}

	var str strings.Builder
	for _, l := range a.Lefts(ra) {
		start, end := a.Subtree(l)
		str.WriteString(a.SpanText(start, end))
	}

	root := b.Tokens[rb].Text
	if verbal {
		root = inflectRoot(b.Tokens[rb].Lemma)
	}

	if str.Len() == 0 {
		root = sent.UpperFirst(root)
	}

	str.WriteString(root)
	str.WriteString(b.Whitespace(rb))

	for _, r := range b.Rights(rb) {
		start, end := b.Subtree(r)

		edits := map[int]sent.Edit{}
		t := b.Tokens[r]
		if verbal && t.Dep == "conj" && t.IsVerb() {
			form := inflectRoot(t.Lemma)
			edits[r] = sent.Edit{Replace: &form}
		}

		str.WriteString(b.Rewrite(start, end, edits))
	}

	return strings.TrimSpace(str.String()), true
}

// subjectOf returns the subject among the left dependents of the root.
func subjectOf(st sent.Sentence, root int) (int, bool) {
	for _, l := range st.Lefts(root) {
		if subjectDeps[st.Tokens[l].Dep] {
			return l, true
		}
	}

	return 0, false
}
