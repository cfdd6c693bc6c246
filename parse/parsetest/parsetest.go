// Package parsetest provides a table driven parse.Parser for tests.
package parsetest

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/revelaction/newsmunger/parse"
	sent "github.com/revelaction/newsmunger/sentence"
	st "github.com/revelaction/newsmunger/sentence/sentencetest"
)

var ErrFail = errors.New("parse failure")

// Fake returns the registered parse of a text. Unknown texts get a flat
// parse: one token per field, all headed by the first, which is the root.
type Fake struct {
	mu     sync.Mutex
	parses map[string]sent.Sentence
	fail   map[string]bool
	calls  []string
}

var _ parse.Parser = (*Fake)(nil)

func New(sentences ...sent.Sentence) *Fake {
	f := &Fake{parses: map[string]sent.Sentence{}, fail: map[string]bool{}}
	for _, s := range sentences {
		f.Add(s)
	}

	return f
}

// Add registers s as the parse of its own text.
func (f *Fake) Add(s sent.Sentence) *Fake {
	return f.AddText(s.Text(), s)
}

// AddText registers s as the parse of text.
func (f *Fake) AddText(text string, s sent.Sentence) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.parses[text] = s
	return f
}

// Fail makes the parse of text return ErrFail.
func (f *Fake) Fail(text string) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fail[text] = true
	return f
}

// Calls returns the parsed texts, in order.
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.calls...)
}

func (f *Fake) Parse(ctx context.Context, text string) ([]sent.Sentence, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, text)

	if f.fail[text] {
		return nil, ErrFail
	}

	if s, ok := f.parses[text]; ok {
		return []sent.Sentence{s}, nil
	}

	return []sent.Sentence{Flat(text)}, nil
}

// Flat returns a parse of text whose first token is the root of all others.
func Flat(text string) sent.Sentence {
	fields := strings.Fields(text)
	toks := make([]st.T, len(fields))
	for i, f := range fields {
		toks[i] = st.W(f, strings.ToLower(f), "NN", "dep", 0)
	}

	if len(toks) > 0 {
		toks[0].Tag = "VB"
		toks[0].Dep = "ROOT"
	}

	return st.New(0, 0, toks...)
}
