package sentence

import "time"

// Doc is a parsed news article. The metadata is attached at ingestion time
// and never modified by the munging engine.
type Doc struct {
	Id int `json:"id"`

	Title     string    `json:"title"`
	Byline    string    `json:"byline,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
	Dateline  string    `json:"dateline,omitempty"`

	Labels    []string   `json:"labels,omitempty"`
	Sentences []Sentence `json:"sentences"`
}

// Library is a collection of Doc
type Library []Doc

// Sentence returns the sentence sentId of the doc docId, and false if any of
// them is out of range.
func (l Library) Sentence(docId, sentId int) (Sentence, bool) {
	if docId < 0 || docId >= len(l) {
		return Sentence{}, false
	}

	doc := l[docId]
	if sentId < 0 || sentId >= len(doc.Sentences) {
		return Sentence{}, false
	}

	return doc.Sentences[sentId], true
}

// NumSentences returns the total number of sentences in the library
func (l Library) NumSentences() int {
	n := 0
	for _, doc := range l {
		n += len(doc.Sentences)
	}

	return n
}

// Sentence is a parsed sentence: an ordered slice of tokens forming a
// dependency tree.
type Sentence struct {
	// Id is the index of the sentence inside of the doc.
	Id int `json:"id"`

	DocId int `json:"doc_id"`

	Tokens []Token `json:"tokens"`
}

// Token represents a word of the sentence, with POS and metadata.
type Token struct {
	Id         int    `json:"id"`
	Head       int    `json:"head"`
	SentenceId int    `json:"sent"`
	Pos        string `json:"pos"`
	Dep        string `json:"dep"`

	// The Penn Treebank tag (VBD, NNS, ``, ...)
	Tag string `json:"tag"`

	// the index of the start character of the token in the original doc (set by spacy, stanza)
	Idx int `json:"idx"`

	// The unmodified word
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// The index of the word in the sentence, starting at 0. Head refers to
	// this index.
	Index int `json:"index"`

	// Trailing whitespace. Older docs do not carry it, it is then derived
	// from the Idx offsets.
	Ws string `json:"ws,omitempty"`
}

// IsPunct reports whether the token is punctuation
func (t Token) IsPunct() bool {
	return t.Pos == "PUNCT" || t.Dep == "punct"
}

// IsVerb reports whether the token is a (finite or not) verb
func (t Token) IsVerb() bool {
	if t.Pos == "VERB" || t.Pos == "AUX" {
		return true
	}

	return len(t.Tag) >= 2 && t.Tag[:2] == "VB"
}
