package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/newsmunger/corpse"
	"github.com/revelaction/newsmunger/munge"
	sent "github.com/revelaction/newsmunger/sentence"
)

// JSONRenderer writes corpses and munged sentences as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Corpses serializes the corpses as a JSON array.
func (r *JSONRenderer) Corpses(corpses []corpse.Corpse) error {
	if corpses == nil {
		corpses = []corpse.Corpse{}
	}

	return json.NewEncoder(r.W).Encode(corpses)
}

type mungedJSON struct {
	Original string       `json:"original"`
	Munged   string       `json:"munged"`
	DocId    *int         `json:"doc_id,omitempty"`
	SentId   *int         `json:"sent_id,omitempty"`
	Lemma    string       `json:"lemma"`
	Tokens   []sent.Token `json:"tokens"`
}

// Munged serializes a munged sentence with the location of the original.
func (r *JSONRenderer) Munged(orig, munged munge.Ref) error {
	m := mungedJSON{
		Original: orig.Text(),
		Munged:   munged.Text(),
		Lemma:    munged.Lemma,
		Tokens:   munged.Sentence.Tokens,
	}

	if orig.Loc != nil {
		m.DocId = &orig.Loc.DocId
		m.SentId = &orig.Loc.SentId
	}

	return json.NewEncoder(r.W).Encode(m)
}
