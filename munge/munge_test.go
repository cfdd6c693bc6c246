package munge

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/newsmunger/index"
	"github.com/revelaction/newsmunger/parse/parsetest"
	sent "github.com/revelaction/newsmunger/sentence"
	st "github.com/revelaction/newsmunger/sentence/sentencetest"
	"github.com/revelaction/newsmunger/verbclass"
)

// seqRand returns its sequence, modulo n, over and over.
type seqRand struct {
	seq []int
	i   int
}

func (r *seqRand) Intn(n int) int {
	v := r.seq[r.i%len(r.seq)]
	r.i++
	return v % n
}

func zeroRand() *seqRand {
	return &seqRand{seq: []int{0}}
}

// "Workers fought the fire."
func workersFought() sent.Sentence {
	return st.New(0, 0,
		st.W("Workers", "worker", "NNS", "nsubj", 1),
		st.W("fought", "fight", "VBD", "ROOT", 1),
		st.W("the", "the", "DT", "det", 3),
		st.W("fire", "fire", "NN", "dobj", 1),
		st.W(".", ".", ".", "punct", 1),
	)
}

// "Residents fought the plan."
func residentsFought() sent.Sentence {
	return st.New(0, 0,
		st.W("Residents", "resident", "NNS", "nsubj", 1),
		st.W("fought", "fight", "VBD", "ROOT", 1),
		st.W("the", "the", "DT", "det", 3),
		st.W("plan", "plan", "NN", "dobj", 1),
		st.W(".", ".", ".", "punct", 1),
	)
}

func ref(t *testing.T, s *Session, docId, sentId int) Ref {
	t.Helper()
	r, ok := s.Ref(index.Location{DocId: docId, SentId: sentId})
	require.True(t, ok)
	return r
}

func TestSelectLemma(t *testing.T) {
	lib := sent.Library{
		st.Doc(0, "Mayor", st.MayorArrived()),
		st.Doc(1, "Storm", st.StormArrived()),
	}

	s := NewSession(lib, parsetest.New(), WithRand(&seqRand{seq: []int{1}}))

	r, err := s.Select(Criteria{Lemma: "arrive"})
	require.NoError(t, err)
	require.NotNil(t, r.Loc)
	assert.Equal(t, index.Location{DocId: 1, SentId: 0}, *r.Loc)
	assert.Equal(t, "arrive", r.Lemma)
	assert.False(t, r.Synthesized())
}

func TestSelectExclude(t *testing.T) {
	lib := sent.Library{
		st.Doc(0, "Mayor", st.MayorArrived()),
		st.Doc(1, "Storm", st.StormArrived()),
	}

	for i := 0; i < 4; i++ {
		s := NewSession(lib, parsetest.New(), WithRand(&seqRand{seq: []int{i}}))
		r, err := s.Select(Criteria{
			Lemma:   "arrive",
			Exclude: map[index.Location]bool{{DocId: 0, SentId: 0}: true},
		})
		require.NoError(t, err)
		assert.Equal(t, index.Location{DocId: 1, SentId: 0}, *r.Loc)
	}
}

func TestSelectVerbClassFallback(t *testing.T) {
	lib := sent.Library{
		st.Doc(0, "Mayor", st.MayorArrived()),
		st.Doc(1, "Storm", st.StormArrived()),
	}

	classes := verbclass.New(map[string][]string{"motion": {"come", "arrive"}})
	s := NewSession(lib, parsetest.New(), WithRand(zeroRand()), WithVerbClasses(classes))

	r, err := s.Select(Criteria{Lemma: "come"})
	require.NoError(t, err)
	assert.Equal(t, "arrive", r.Lemma)
	assert.Equal(t, index.Location{DocId: 0, SentId: 0}, *r.Loc)
}

func TestSelectNoCandidate(t *testing.T) {
	lib := sent.Library{
		st.Doc(0, "Mayor", st.MayorArrived()),
		st.Doc(1, "Storm", st.StormArrived()),
	}

	s := NewSession(lib, parsetest.New(), WithRand(zeroRand()))

	r, err := s.Select(Criteria{Lemma: "xyzzy"})
	assert.ErrorIs(t, err, ErrNoCandidate)
	assert.Equal(t, Ref{}, r)

	_, err = s.Select(Criteria{
		Lemma: "arrive",
		Exclude: map[index.Location]bool{
			{DocId: 0, SentId: 0}: true,
			{DocId: 1, SentId: 0}: true,
		},
	})
	assert.ErrorIs(t, err, ErrNoCandidate)
}

func TestSelectDocs(t *testing.T) {
	lib := sent.Library{
		st.Doc(0, "Mayor", st.MayorArrived(), st.MayorHappy()),
		st.Doc(1, "Storm", st.StormArrived()),
		st.Doc(2, "Pets", st.CatDogHungry()),
	}

	s := NewSession(lib, parsetest.New(), WithRand(&seqRand{seq: []int{1}}))

	two := 2
	r, err := s.Select(Criteria{DocId: &two})
	require.NoError(t, err)
	assert.Equal(t, index.Location{DocId: 2, SentId: 0}, *r.Loc)

	r, err = s.Select(Criteria{Docs: []int{0}})
	require.NoError(t, err)
	assert.Equal(t, index.Location{DocId: 0, SentId: 1}, *r.Loc)

	r, err = s.Select(Criteria{Focus: "THE STORM"})
	require.NoError(t, err)
	assert.Equal(t, index.Location{DocId: 1, SentId: 0}, *r.Loc)

	_, err = s.Select(Criteria{Focus: "the senator"})
	assert.ErrorIs(t, err, ErrNoCandidate)

	assert.Equal(t, []int{0, 1}, s.FocusDocs("arrived"))
}

func TestMungeOnRoots(t *testing.T) {
	lib := sent.Library{
		st.Doc(0, "Mayor", st.MayorArrived()),
		st.Doc(1, "Storm", st.StormArrived()),
	}

	p := parsetest.New(st.MayorArrivedStorm())
	s := NewSession(lib, p, WithRand(zeroRand()))

	a := ref(t, s, 0, 0)
	got, err := s.MungeOnRoots(context.Background(), &a, nil)
	require.NoError(t, err)

	assert.Equal(t, "The mayor arrived last night without warning.", got.Text())
	assert.True(t, got.Synthesized())
	assert.Equal(t, "arrive", got.Lemma)

	_, ok := got.Sentence.Root()
	assert.True(t, ok)
}

func TestMungeOnRootsRetry(t *testing.T) {
	lib := sent.Library{
		st.Doc(0, "Mayor", st.MayorArrived()),
		st.Doc(1, "Storm", st.StormArrived()),
	}

	p := parsetest.New().Fail("The mayor arrived last night without warning.")
	s := NewSession(lib, p, WithRand(zeroRand()), WithMaxRetries(3))

	a := ref(t, s, 0, 0)
	_, err := s.MungeOnRoots(context.Background(), &a, nil)
	assert.ErrorIs(t, err, ErrCouldNotSynthesize)
	assert.Len(t, p.Calls(), 3)
}

func TestMungeOnRootsNoPartner(t *testing.T) {
	lib := sent.Library{
		st.Doc(0, "Mayor", st.MayorArrived(), st.MayorHappy()),
		st.Doc(1, "Pets", st.CatDogHungry()),
	}

	s := NewSession(lib, parsetest.New(), WithRand(zeroRand()))

	a := ref(t, s, 0, 0)
	_, err := s.MungeOnRoots(context.Background(), &a, nil)
	assert.ErrorIs(t, err, ErrNoCandidate)
}

func TestSpliceConj(t *testing.T) {
	a := st.New(0, 0,
		st.W("The", "the", "DT", "det", 1),
		st.W("mayor", "mayor", "NN", "nsubj", 2),
		st.W("arrives", "arrive", "VBZ", "ROOT", 2),
		st.W("early", "early", "RB", "advmod", 2),
		st.W(".", ".", ".", "punct", 2),
	)

	b := st.New(0, 0,
		st.W("The", "the", "DT", "det", 1),
		st.W("storm", "storm", "NN", "nsubj", 2),
		st.W("arrived", "arrive", "VBD", "ROOT", 2),
		st.W("and", "and", "CC", "cc", 2),
		st.W("flooded", "flood", "VBD", "conj", 2),
		st.W("the", "the", "DT", "det", 6),
		st.W("town", "town", "NN", "dobj", 4),
		st.W(".", ".", ".", "punct", 2),
	)

	text, ok := Splice(a, b)
	require.True(t, ok)
	assert.Equal(t, "The mayor arrives and floods the town.", text)

	_, ok = Splice(a, sent.Sentence{})
	assert.False(t, ok)
}

func TestSpliceSubjectAgreement(t *testing.T) {
	// "<subject> arrive early."
	arrive := func(subject string) sent.Sentence {
		return st.New(0, 0,
			st.W(subject, strings.ToLower(subject), "PRP", "nsubj", 1),
			st.W("arrive", "arrive", "VBP", "ROOT", 1),
			st.W("early", "early", "RB", "advmod", 1),
			st.W(".", ".", ".", "punct", 1),
		)
	}

	tests := []struct {
		subject string
		want    string
	}{
		{"I", "I am hungry."},
		{"We", "We are hungry."},
		{"You", "You are hungry."},
	}

	for _, tc := range tests {
		text, ok := Splice(arrive(tc.subject), st.CatDogHungry())
		require.True(t, ok)
		assert.Equal(t, tc.want, text)
	}
}

func sayingsLibrary() sent.Library {
	return sent.Library{
		st.Doc(0, "Senate", st.SenatorSaid(), workersFought()),
		st.Doc(1, "Plan", residentsFought()),
	}
}

func TestMungeSayings(t *testing.T) {
	p := parsetest.New(st.WeWillFight())
	s := NewSession(sayingsLibrary(), p, WithRand(zeroRand()))

	got, err := s.MungeSayings(context.Background(), ref(t, s, 0, 0), nil)
	require.NoError(t, err)

	text := got.Text()
	assert.Equal(t, "The senator said, “We will fight the fire.”", text)
	assert.Equal(t, 1, strings.Count(text, sent.OpenQuote))
	assert.Equal(t, 1, strings.Count(text, sent.CloseQuote))

	// the quoted clause was parsed on its own
	assert.Contains(t, p.Calls(), "We will fight this.")
}

func TestMungeSayingsInitialQuote(t *testing.T) {
	// “We will fight this,” the senator said.
	a := st.New(0, 0,
		st.W("“", "“", "``", "punct", 9),
		st.W("We", "we", "PRP", "nsubj", 3),
		st.W("will", "will", "MD", "aux", 3),
		st.W("fight", "fight", "VB", "ccomp", 9),
		st.W("this", "this", "DT", "dobj", 3),
		st.W(",", ",", ",", "punct", 3),
		st.W("”", "”", "''", "punct", 9),
		st.W("the", "the", "DT", "det", 8),
		st.W("senator", "senator", "NN", "nsubj", 9),
		st.W("said", "say", "VBD", "ROOT", 9),
		st.W(".", ".", ".", "punct", 9),
	)
	require.Equal(t, "“We will fight this,” the senator said.", a.Text())

	p := parsetest.New(st.WeWillFight())
	s := NewSession(sayingsLibrary(), p, WithRand(zeroRand()))

	got, err := s.MungeSayings(context.Background(), synthesized(a), nil)
	require.NoError(t, err)
	assert.Equal(t, "“We will fight the fire,” the senator said.", got.Text())
}

func TestMungeSayingsRepair(t *testing.T) {
	senator := st.SenatorSaid()
	unbalanced := senator
	unbalanced.Tokens = senator.Tokens[:len(senator.Tokens)-1]
	require.Equal(t, "The senator said, “We will fight this.", unbalanced.Text())

	p := parsetest.New(st.WeWillFight(), senator)
	s := NewSession(sayingsLibrary(), p, WithRand(zeroRand()))

	got, err := s.MungeSayings(context.Background(), synthesized(unbalanced), nil)
	require.NoError(t, err)
	assert.Equal(t, "The senator said, “We will fight the fire.”", got.Text())
	assert.Equal(t, senator.Text(), p.Calls()[0])
}

func TestMungeSayingsStrip(t *testing.T) {
	senator := st.SenatorSaid()
	unbalanced := senator
	unbalanced.Tokens = senator.Tokens[:len(senator.Tokens)-1]

	p := parsetest.New()
	s := NewSession(sayingsLibrary(), p, WithRand(zeroRand()), WithMaxQuoteRepairs(0))

	// the stripped sentence has no partner, it is returned as it is
	got, err := s.MungeSayings(context.Background(), synthesized(unbalanced), nil)
	require.NoError(t, err)
	assert.Equal(t, "The senator said, We will fight this.", got.Text())
	assert.True(t, got.Synthesized())
	assert.Equal(t, []string{"The senator said, We will fight this."}, p.Calls())
}

// "The mayor said, “Residents fought the plan.”"
func mayorSaid() sent.Sentence {
	return st.New(0, 0,
		st.W("The", "the", "DT", "det", 1),
		st.W("mayor", "mayor", "NN", "nsubj", 2),
		st.W("said", "say", "VBD", "ROOT", 2),
		st.W(",", ",", ",", "punct", 2),
		st.W("“", "“", "``", "punct", 2),
		st.W("Residents", "resident", "NNS", "nsubj", 6),
		st.W("fought", "fight", "VBD", "ccomp", 2),
		st.W("the", "the", "DT", "det", 8),
		st.W("plan", "plan", "NN", "dobj", 6),
		st.W(".", ".", ".", "punct", 6),
		st.W("”", "”", "''", "punct", 2),
	)
}

func TestMungeSayingsPartner(t *testing.T) {
	b := synthesized(mayorSaid())
	require.Equal(t, "The mayor said, “Residents fought the plan.”", b.Text())

	p := parsetest.New(st.WeWillFight(), residentsFought())
	s := NewSession(sayingsLibrary(), p, WithRand(zeroRand()))
	ctx := context.Background()

	// a random partner from the library would give "the fire"
	got, err := s.MungeSayings(ctx, ref(t, s, 0, 0), &b)
	require.NoError(t, err)
	assert.Equal(t, "The senator said, “We will fight the plan.”", got.Text())
	assert.Contains(t, p.Calls(), "Residents fought the plan.")

	// a quoted partner sends both sentences to the quotation handler
	a := ref(t, s, 0, 0)
	got, err = s.MungeOnRoots(ctx, &a, &b)
	require.NoError(t, err)
	assert.Equal(t, "The senator said, “We will fight the plan.”", got.Text())

	a = synthesized(st.WeWillFight())
	got, err = s.MungeOnRoots(ctx, &a, &b)
	require.NoError(t, err)
	assert.Equal(t, "We will fight the plan.", got.Text())
}

func TestMungeSayingsDepthCap(t *testing.T) {
	p := parsetest.New(st.WeWillFight())
	s := NewSession(sayingsLibrary(), p, WithRand(zeroRand()), WithMaxDepth(0))

	got, err := s.MungeSayings(context.Background(), ref(t, s, 0, 0), nil)
	require.NoError(t, err)
	assert.Equal(t, "The senator said, “We will fight this.”", got.Text())
}

func TestReassemble(t *testing.T) {
	// “We won,” he said, “and we will win again.”
	a := st.New(0, 0,
		st.W("“", "“", "``", "punct", 6),
		st.W("We", "we", "PRP", "nsubj", 2),
		st.W("won", "win", "VBD", "ccomp", 6),
		st.W(",", ",", ",", "punct", 2),
		st.W("”", "”", "''", "punct", 6),
		st.W("he", "he", "PRP", "nsubj", 6),
		st.W("said", "say", "VBD", "ROOT", 6),
		st.W(",", ",", ",", "punct", 6),
		st.W("“", "“", "``", "punct", 6),
		st.W("and", "and", "CC", "cc", 12),
		st.W("we", "we", "PRP", "nsubj", 12),
		st.W("will", "will", "MD", "aux", 12),
		st.W("win", "win", "VB", "ccomp", 6),
		st.W("again", "again", "RB", "advmod", 12),
		st.W(".", ".", ".", "punct", 12),
		st.W("”", "”", "''", "punct", 6),
	)
	require.Equal(t, "“We won,” he said, “and we will win again.”", a.Text())

	pairs, orphans := a.PairQuotes()
	require.Empty(t, orphans)
	require.Len(t, pairs, 2)

	quotes := []quoted{
		{text: "We won.", trail: ","},
		{text: "and we will win again.", trail: "."},
	}

	tests := []struct {
		replacements []string
		want         string
	}{
		{
			[]string{"They lost the game.", "We will lose."},
			"“Just kidding,” he said, “We will lose.”",
		},
		{
			[]string{"They lost, sadly.", "We will lose!"},
			"“They lost,” he said, “We will lose.”",
		},
		{
			[]string{"We won.", "and we will win again."},
			"“We won,” he said, “and we will win again.”",
		},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, reassemble(a, pairs, quotes, tc.replacements))
	}
}

func childrenLibrary() sent.Library {
	return sent.Library{
		st.Doc(0, "Mayor", st.MayorHappy()),
		st.Doc(1, "Pets", st.CatDogHungry()),
	}
}

func TestMungeChildrenSubject(t *testing.T) {
	s := NewSession(childrenLibrary(), parsetest.New(), WithRand(zeroRand()))
	ctx := context.Background()

	got, err := s.MungeChildren(ctx, ref(t, s, 0, 0), []index.Side{index.Left}, []string{"nsubj"})
	require.NoError(t, err)
	assert.Equal(t, "The cat and the dog are happy.", got.Text())

	got, err = s.MungeChildren(ctx, ref(t, s, 1, 0), []index.Side{index.Left}, []string{"nsubj"})
	require.NoError(t, err)
	assert.Equal(t, "The mayor is hungry.", got.Text())
}

func TestMungeChildrenBothSides(t *testing.T) {
	s := NewSession(childrenLibrary(), parsetest.New(), WithRand(zeroRand()))

	got, err := s.MungeChildren(context.Background(), ref(t, s, 0, 0), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "The cat and the dog are hungry.", got.Text())
}

func TestMungeChildrenNoAlternative(t *testing.T) {
	p := parsetest.New()
	s := NewSession(childrenLibrary(), p, WithRand(zeroRand()))

	r := ref(t, s, 0, 0)
	got, err := s.MungeChildren(context.Background(), r, nil, []string{"dobj"})
	require.NoError(t, err)
	assert.Equal(t, r, got)
	assert.Empty(t, p.Calls())
}

func TestMungeChildrenAux(t *testing.T) {
	// The mayor was elected.
	mayor := st.New(0, 0,
		st.W("The", "the", "DT", "det", 1),
		st.W("mayor", "mayor", "NN", "nsubjpass", 3),
		st.W("was", "be", "VBD", "auxpass", 3),
		st.W("elected", "elect", "VBN", "ROOT", 3),
		st.W(".", ".", ".", "punct", 3),
	)

	// Officials were elected.
	officials := st.New(0, 0,
		st.W("Officials", "official", "NNS", "nsubjpass", 2),
		st.W("were", "be", "VBD", "auxpass", 2),
		st.W("elected", "elect", "VBN", "ROOT", 2),
		st.W(".", ".", ".", "punct", 2),
	)

	lib := sent.Library{st.Doc(0, "A", mayor), st.Doc(1, "B", officials)}
	s := NewSession(lib, parsetest.New(), WithRand(zeroRand()))

	got, err := s.MungeChildren(context.Background(), ref(t, s, 0, 0), nil, []string{"nsubjpass"})
	require.NoError(t, err)
	assert.Equal(t, "Officials were elected.", got.Text())

	got, err = s.MungeChildren(context.Background(), ref(t, s, 1, 0), nil, []string{"nsubjpass"})
	require.NoError(t, err)
	assert.Equal(t, "The mayor was elected.", got.Text())
}

// "<subject> has been <state>."
func hasBeen(det, subject, lemma, tag, aux, state string) sent.Sentence {
	auxTag := "VBZ"
	if aux == "have" {
		auxTag = "VBP"
	}

	return st.New(0, 0,
		st.W(det, strings.ToLower(det), "DT", "det", 1),
		st.W(subject, lemma, tag, "nsubj", 3),
		st.W(aux, "have", auxTag, "aux", 3),
		st.W("been", "be", "VBN", "ROOT", 3),
		st.W(state, state, "JJ", "acomp", 3),
		st.W(".", ".", ".", "punct", 3),
	)
}

func TestMungeChildrenAuxAgreement(t *testing.T) {
	lib := sent.Library{
		st.Doc(0, "Mayor", hasBeen("The", "mayor", "mayor", "NN", "has", "happy")),
		st.Doc(1, "Cats", hasBeen("The", "cats", "cat", "NNS", "have", "hungry")),
		st.Doc(2, "Dog", hasBeen("The", "dog", "dog", "NN", "has", "sad")),
	}
	require.Equal(t, "The cats have been hungry.", lib[1].Sentences[0].Text())

	s := NewSession(lib, parsetest.New(), WithRand(&seqRand{seq: []int{0, 1, 0}}))
	got, err := s.Munge(context.Background(), ref(t, s, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, "The cats have been sad.", got.Text())

	s = NewSession(lib, parsetest.New(), WithRand(zeroRand()))
	got, err = s.Munge(context.Background(), ref(t, s, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, "The mayor has been happy.", got.Text())
}

func TestMungeDispatch(t *testing.T) {
	assert.Equal(t, KindSpeech, KindOf("say"))
	assert.Equal(t, KindCopular, KindOf("Be"))
	assert.Equal(t, KindCopular, KindOf("have"))
	assert.Equal(t, KindDefault, KindOf("arrive"))
	assert.Equal(t, "speech", KindSpeech.String())

	// the speech verbs are the class of "say"
	assert.Equal(t, KindSpeech, KindOf("announce"))
	classes := verbclass.New(map[string][]string{"say-37.7": {"say", "whisper"}})
	assert.Equal(t, KindSpeech, KindIn(classes, "whisper"))
	assert.Equal(t, KindDefault, KindIn(classes, "announce"))
	assert.Equal(t, KindSpeech, NewSession(nil, parsetest.New(), WithVerbClasses(classes)).KindOf("Whisper"))

	s := NewSession(childrenLibrary(), parsetest.New(), WithRand(zeroRand()))
	got, err := s.Munge(context.Background(), ref(t, s, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, "The cat and the dog are hungry.", got.Text())
}

func TestCleanup(t *testing.T) {
	assert.Equal(t, "The mayor is happy and tired.", cleanup("  The mayor is  happy but tired ."))
	assert.Equal(t, "Yes, it is.", cleanup("Yes , it is ."))
}
