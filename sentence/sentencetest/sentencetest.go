// Package sentencetest builds hand written dependency parses for tests.
package sentencetest

import (
	"strings"
	"unicode/utf8"

	sent "github.com/revelaction/newsmunger/sentence"
)

// T is a token of a hand written parse. Head is the position of the head
// token in the sentence; the root heads itself.
type T struct {
	Text  string
	Lemma string
	Tag   string
	Dep   string
	Head  int
	Pos   string
}

// W is a shorthand for a T literal.
func W(text, lemma, tag, dep string, head int) T {
	return T{Text: text, Lemma: lemma, Tag: tag, Dep: dep, Head: head}
}

// New builds a sentence, setting indexes, character offsets and the
// whitespace a tokenizer of English text would produce.
func New(docId, sentId int, toks ...T) sent.Sentence {
	s := sent.Sentence{Id: sentId, DocId: docId}

	idx := 0
	for i, tk := range toks {
		pos := tk.Pos
		if pos == "" {
			pos = posFor(tk.Tag)
		}

		ws := " "
		switch {
		case i == len(toks)-1:
			ws = ""
		case tk.Tag == "``":
			ws = ""
		case noSpaceBefore(toks[i+1]):
			ws = ""
		}

		s.Tokens = append(s.Tokens, sent.Token{
			Id:         i,
			Head:       tk.Head,
			SentenceId: sentId,
			Pos:        pos,
			Dep:        tk.Dep,
			Tag:        tk.Tag,
			Idx:        idx,
			Text:       tk.Text,
			Lemma:      tk.Lemma,
			Index:      i,
			Ws:         ws,
		})

		idx += utf8.RuneCountInString(tk.Text) + len(ws)
	}

	return s
}

// Doc builds a doc with the given sentences, fixing their doc and sentence
// ids.
func Doc(id int, title string, sentences ...sent.Sentence) sent.Doc {
	doc := sent.Doc{Id: id, Title: title}
	for i, s := range sentences {
		s.DocId = id
		s.Id = i
		for j := range s.Tokens {
			s.Tokens[j].SentenceId = i
		}
		doc.Sentences = append(doc.Sentences, s)
	}

	return doc
}

func noSpaceBefore(t T) bool {
	switch t.Text {
	case ".", ",", "!", "?", ";", ":", "”":
		return true
	}

	if t.Tag == "''" || t.Tag == "POS" {
		return true
	}

	return strings.HasPrefix(t.Text, "'") || t.Text == "n't"
}

func posFor(tag string) string {
	switch {
	case tag == "MD":
		return "AUX"
	case strings.HasPrefix(tag, "VB"):
		return "VERB"
	case tag == "NNP" || tag == "NNPS":
		return "PROPN"
	case strings.HasPrefix(tag, "NN"):
		return "NOUN"
	case strings.HasPrefix(tag, "PRP"):
		return "PRON"
	case tag == "DT":
		return "DET"
	case tag == "IN":
		return "ADP"
	case strings.HasPrefix(tag, "JJ"):
		return "ADJ"
	case strings.HasPrefix(tag, "RB"):
		return "ADV"
	case tag == "CC":
		return "CCONJ"
	case tag == "CD":
		return "NUM"
	case tag == "TO":
		return "PART"
	case tag == "." || tag == "," || tag == ":" || tag == "``" || tag == "''":
		return "PUNCT"
	}

	return "X"
}
