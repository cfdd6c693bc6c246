package stat

import (
	"sort"

	"github.com/revelaction/newsmunger/index"
	"github.com/revelaction/newsmunger/munge"
	sent "github.com/revelaction/newsmunger/sentence"
)

type Handler struct {
	stats Stats
}

type LemmaCount struct {
	Lemma string
	Count int
}

type Stats struct {
	NumDocs               int
	NumSentences          int
	NumTokens             int
	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int

	// sentences with a quotation mark
	NumQuoted int

	// root lemmas occurring in more than one sentence
	NumIndexed int
	TopLemmas  []LemmaCount

	// sentences per munging kind of the root
	Kinds map[string]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{TokensPerSentenceDis: map[int]int{}, Kinds: map[string]int{}}
	return &Handler{
		stats: stats,
	}
}

func (h *Handler) Aggregate(doc sent.Doc) {
	h.stats.NumDocs++
	h.stats.NumSentences += len(doc.Sentences)
	//
	for _, sentence := range doc.Sentences {
		h.stats.NumTokens += len(sentence.Tokens)
		h.stats.TokensPerSentenceDis[len(sentence.Tokens)]++

		if sentence.HasQuote() {
			h.stats.NumQuoted++
		}

		if lemma := sentence.RootLemma(); lemma != "" {
			h.stats.Kinds[munge.KindOf(lemma).String()]++
		}
	}

	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
	}
}

// AggregateIndex adds the lemma counts of the index, keeping the n most
// frequent lemmas.
func (h *Handler) AggregateIndex(ix *index.Index, n int) {
	h.stats.NumIndexed = ix.Len()

	counts := []LemmaCount{}
	for _, lemma := range ix.Lemmas() {
		counts = append(counts, LemmaCount{lemma, len(ix.Locations(lemma))})
	}

	// Lemmas() is sorted, ties keep the alphabetical order
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if n >= 0 && len(counts) > n {
		counts = counts[:n]
	}

	h.stats.TopLemmas = counts
}
