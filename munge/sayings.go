package munge

import (
	"context"
	"fmt"
	"strings"

	"github.com/revelaction/newsmunger/parse"
	sent "github.com/revelaction/newsmunger/sentence"
)

// justKidding stands in for a replacement with nowhere to cut it.
const justKidding = "Just kidding,"

// MungeSayings munges the quoted clauses of a on their own and puts them
// back between the original quotation marks. Unbalanced quotes are repaired
// first, and stripped when repairing does not work. A sentence without
// quotes is munged on its root. The clauses are spliced with b, or with the
// quoted clauses of b when it has any; a nil b selects random partners.
// When nothing can be munged, the sentence is returned as it is.
func (s *Session) MungeSayings(ctx context.Context, a Ref, b *Ref) (Ref, error) {
	return s.mungeSayings(ctx, a, b, 0)
}

func (s *Session) mungeSayings(ctx context.Context, r Ref, b *Ref, depth int) (Ref, error) {
	st, changed, err := s.balance(ctx, r.Sentence)
	if err != nil {
		s.logger.Warn().Err(err).Str("text", r.Text()).Msg("saying left as is")
		return r, nil
	}

	if changed {
		r = synthesized(st)
	}

	partners := s.partners(ctx, b)

	pairs, _ := st.PairQuotes()
	if len(pairs) == 0 {
		out, err := s.mungeOnRoots(ctx, &r, partnerAt(partners, 0), depth)
		if err != nil {
			s.logger.Debug().Err(err).Str("text", r.Text()).Msg("saying left as is")
			return r, nil
		}

		return out, nil
	}

	quotes := s.extract(ctx, st, pairs)

	replacements := make([]string, len(quotes))
	for i, q := range quotes {
		replacements[i] = q.text
		if !q.ok || depth >= s.maxDepth {
			continue
		}

		sub := synthesized(q.sentence)
		out, err := s.mungeOnRoots(ctx, &sub, partnerAt(partners, i), depth+1)
		if err != nil {
			s.logger.Debug().Err(err).Str("quote", q.text).Msg("quote left as is")
			continue
		}

		replacements[i] = out.Text()
	}

	text := reassemble(st, pairs, quotes, replacements)

	out, err := parse.First(ctx, s.parser, text)
	if err == nil {
		if _, ok := out.Root(); ok {
			return synthesized(out), nil
		}
	}

	s.logger.Warn().Err(err).Str("text", text).Msg("reassembled saying has no root")
	return r, nil
}

// partners returns the splice partners of the quoted clauses: the parsed
// quoted clauses of b, or b itself when it has none. Partners never contain
// quotes.
func (s *Session) partners(ctx context.Context, b *Ref) []Ref {
	if b == nil {
		return nil
	}

	if !b.Sentence.HasQuote() {
		return []Ref{*b}
	}

	pairs, _ := b.Sentence.PairQuotes()
	partners := []Ref{}
	for _, q := range s.extract(ctx, b.Sentence, pairs) {
		if q.ok && !q.sentence.HasQuote() {
			partners = append(partners, synthesized(q.sentence))
		}
	}

	return partners
}

func partnerAt(partners []Ref, i int) *Ref {
	if len(partners) == 0 {
		return nil
	}

	p := partners[i%len(partners)]
	return &p
}

// balance repairs orphan quotation marks, up to maxQuoteRepairs passes,
// then strips all of them. It reports whether the sentence was re-parsed.
func (s *Session) balance(ctx context.Context, st sent.Sentence) (sent.Sentence, bool, error) {
	changed := false
	for repair := 0; ; repair++ {
		_, orphans := st.PairQuotes()
		if len(orphans) == 0 {
			return st, changed, nil
		}

		if repair >= s.maxQuoteRepairs {
			break
		}

		text := repairQuotes(st, orphans)
		out, err := parse.First(ctx, s.parser, text)
		if err != nil {
			break
		}

		s.logger.Debug().Str("text", text).Int("repair", repair).Msg("quotes repaired")
		st, changed = out, true
	}

	text := stripQuotes(st)
	s.logger.Warn().Str("text", text).Msg("unbalanced quotes stripped")

	out, err := parse.First(ctx, s.parser, text)
	if err != nil {
		return sent.Sentence{}, false, fmt.Errorf("%w: %v", ErrCouldNotSynthesize, err)
	}

	return out, true, nil
}

// repairQuotes closes or opens the quotes of the orphan delimiters at the
// clause boundary nearest to the root, and drops those it cannot place.
func repairQuotes(st sent.Sentence, orphans []int) string {
	root, _ := st.Root()
	last := len(st.Tokens) - 1
	edits := map[int]sent.Edit{}

	for _, o := range orphans {
		if opening(st, o) {
			if o > root {
				// said, “We will fight this.
				e := edits[last]
				e.After += sent.CloseQuote
				edits[last] = e
				continue
			}

			// “We will fight this, the senator said.
			if c := lastComma(st, o, root); c >= 0 {
				e := edits[c]
				e.After += sent.CloseQuote
				edits[c] = e
				continue
			}
		} else {
			if o < root {
				e := edits[0]
				e.Before = sent.OpenQuote + e.Before
				edits[0] = e
				continue
			}

			// said, We will fight this.”
			if c := firstComma(st, root, o); c >= 0 && c+1 < o {
				e := edits[c+1]
				e.Before = sent.OpenQuote + e.Before
				edits[c+1] = e
				continue
			}
		}

		edits[o] = sent.Edit{Drop: true}
	}

	return strings.TrimSpace(st.Rewrite(0, len(st.Tokens), edits))
}

// opening reports whether the orphan delimiter o opens a quote. Ambiguous
// straight quotes open unless only punctuation follows them.
func opening(st sent.Sentence, o int) bool {
	t := st.Tokens[o]
	switch {
	case t.IsOpenQuote():
		return true
	case t.IsCloseQuote():
		return false
	}

	for _, n := range st.Tokens[o+1:] {
		if !n.IsPunct() && !n.IsQuote() {
			return true
		}
	}

	return false
}

func lastComma(st sent.Sentence, from, to int) int {
	for i := to - 1; i > from; i-- {
		if st.Tokens[i].Text == "," {
			return i
		}
	}

	return -1
}

func firstComma(st sent.Sentence, from, to int) int {
	for i := from + 1; i < to; i++ {
		if st.Tokens[i].Text == "," || st.Tokens[i].Text == ":" {
			return i
		}
	}

	return -1
}

func stripQuotes(st sent.Sentence) string {
	empty := ""
	edits := map[int]sent.Edit{}
	for _, q := range st.Quotes() {
		edits[q] = sent.Edit{Replace: &empty}
	}

	return collapseSpace(st.Rewrite(0, len(st.Tokens), edits))
}

type quoted struct {
	// text is the parsed quoted clause, ended as a sentence
	text string

	// trail is the punctuation closing the clause inside the quotes
	trail string

	sentence sent.Sentence
	ok       bool
}

func (s *Session) extract(ctx context.Context, st sent.Sentence, pairs []sent.QuotePair) []quoted {
	quotes := make([]quoted, len(pairs))
	for i, p := range pairs {
		inner := strings.TrimSpace(st.SpanText(p.Open+1, p.Close))

		var q quoted
		inner, q.trail = splitTrail(inner)
		if inner == "" {
			quotes[i] = q
			continue
		}

		switch q.trail {
		case ".", "!", "?":
			q.text = inner + q.trail
		default:
			q.text = inner + "."
		}

		out, err := parse.First(ctx, s.parser, q.text)
		if err == nil {
			_, q.ok = out.Root()
			q.sentence = out
		}

		quotes[i] = q
	}

	return quotes
}

func splitTrail(text string) (string, string) {
	if text == "" {
		return text, ""
	}

	switch last := text[len(text)-1:]; last {
	case ",", ".", "!", "?", ";", ":":
		return strings.TrimSpace(text[:len(text)-1]), last
	}

	return text, ""
}

// withTrail replaces the final punctuation of text with trail.
func withTrail(text, trail string) string {
	if trail == "" {
		return text
	}

	text, _ = splitTrail(text)
	return text + trail
}

// reassemble writes the replacements between the quotation marks. Every
// pair but the last takes one replacement up to its first comma; the last
// takes all the remaining ones.
func reassemble(st sent.Sentence, pairs []sent.QuotePair, quotes []quoted, replacements []string) string {
	edits := map[int]sent.Edit{}

	next := 0
	for i, p := range pairs {
		var piece string
		if i < len(pairs)-1 {
			r := replacements[next]
			next++

			switch c := strings.Index(r, ","); {
			case r == quotes[i].text:
				piece = withTrail(r, quotes[i].trail)
			case c >= 0:
				piece = r[:c+1]
			default:
				piece = justKidding
			}
		} else {
			piece = withTrail(strings.Join(replacements[next:], " "), quotes[i].trail)
		}

		if p.Close == p.Open+1 {
			e := edits[p.Open]
			e.After += piece
			edits[p.Open] = e
			continue
		}

		for j := p.Open + 1; j < p.Close-1; j++ {
			edits[j] = sent.Edit{Drop: true}
		}

		replace := piece
		edits[p.Close-1] = sent.Edit{Replace: &replace}
	}

	return strings.TrimSpace(st.Rewrite(0, len(st.Tokens), edits))
}
