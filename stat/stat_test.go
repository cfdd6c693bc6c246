package stat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/revelaction/newsmunger/index"
	sent "github.com/revelaction/newsmunger/sentence"
	st "github.com/revelaction/newsmunger/sentence/sentencetest"
)

func library() sent.Library {
	return sent.Library{
		st.Doc(0, "Mayor", st.MayorArrived(), st.MayorHappy(), st.SenatorSaid()),
		st.Doc(1, "Storm", st.StormArrived(), st.CatDogHungry()),
	}
}

func TestAggregate(t *testing.T) {
	hdl := NewHandler()
	for _, doc := range library() {
		hdl.Aggregate(doc)
	}

	stats := hdl.Get()
	assert.Equal(t, 2, stats.NumDocs)
	assert.Equal(t, 5, stats.NumSentences)
	assert.Equal(t, 37, stats.NumTokens)
	assert.Equal(t, 7, stats.TokensPerSentenceMean)
	assert.Equal(t, 1, stats.NumQuoted)

	if diff := cmp.Diff(map[int]int{5: 2, 8: 2, 11: 1}, stats.TokensPerSentenceDis); diff != "" {
		t.Errorf("distribution mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(map[string]int{"default": 2, "copular": 2, "speech": 1}, stats.Kinds); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateEmpty(t *testing.T) {
	hdl := NewHandler()
	hdl.Aggregate(sent.Doc{})

	assert.Equal(t, 0, hdl.Get().TokensPerSentenceMean)
}

func TestAggregateIndex(t *testing.T) {
	ix := index.Build(library())

	hdl := NewHandler()
	hdl.AggregateIndex(ix, 10)
	stats := hdl.Get()

	assert.Equal(t, 2, stats.NumIndexed)
	assert.Equal(t, []LemmaCount{{"arrive", 2}, {"be", 2}}, stats.TopLemmas)

	hdl.AggregateIndex(ix, 1)
	assert.Equal(t, []LemmaCount{{"arrive", 2}}, hdl.Get().TopLemmas)
}
