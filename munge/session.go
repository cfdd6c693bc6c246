// Package munge recombines the sentences of a library: it splices the left
// dependents of a root onto the right dependents of another root with the
// same lemma, re-munges quoted speech and swaps the dependents of copular
// roots.
package munge

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/revelaction/newsmunger/index"
	"github.com/revelaction/newsmunger/parse"
	sent "github.com/revelaction/newsmunger/sentence"
	"github.com/revelaction/newsmunger/verbclass"
)

const (
	DefaultMaxRetries      = 5
	DefaultMaxQuoteRepairs = 2
	DefaultMaxDepth        = 2
)

// Rand is the source of every random choice of a session.
type Rand interface {
	Intn(n int) int
}

// Session holds the library being munged, its index and subtree bag, and
// the collaborators. The library must not change during the session.
type Session struct {
	lib     sent.Library
	ix      *index.Index
	bag     *index.Bag
	parser  parse.Parser
	classes verbclass.Resource
	rand    Rand
	logger  zerolog.Logger

	maxRetries      int
	maxQuoteRepairs int
	maxDepth        int
}

type Option func(*Session)

func WithRand(r Rand) Option {
	return func(s *Session) {
		s.rand = r
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

func WithVerbClasses(r verbclass.Resource) Option {
	return func(s *Session) {
		s.classes = r
	}
}

func WithMaxRetries(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxRetries = n
		}
	}
}

func WithMaxQuoteRepairs(n int) Option {
	return func(s *Session) {
		if n >= 0 {
			s.maxQuoteRepairs = n
		}
	}
}

func WithMaxDepth(n int) Option {
	return func(s *Session) {
		if n >= 0 {
			s.maxDepth = n
		}
	}
}

// NewSession indexes the library and prepares an empty subtree bag.
func NewSession(lib sent.Library, p parse.Parser, opts ...Option) *Session {
	ix := index.Build(lib)

	s := &Session{
		lib:             lib,
		ix:              ix,
		bag:             index.NewBag(lib, ix),
		parser:          p,
		classes:         verbclass.Default(),
		rand:            rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:          zerolog.Nop(),
		maxRetries:      DefaultMaxRetries,
		maxQuoteRepairs: DefaultMaxQuoteRepairs,
		maxDepth:        DefaultMaxDepth,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Session) Library() sent.Library {
	return s.lib
}

func (s *Session) Index() *index.Index {
	return s.ix
}

func (s *Session) Bag() *index.Bag {
	return s.bag
}

func (s *Session) Rand() Rand {
	return s.rand
}

// Ref returns the reference of the sentence at loc.
func (s *Session) Ref(loc index.Location) (Ref, bool) {
	st, ok := s.lib.Sentence(loc.DocId, loc.SentId)
	if !ok {
		return Ref{}, false
	}

	return Ref{Loc: &loc, Lemma: st.RootLemma(), Sentence: st}, true
}
