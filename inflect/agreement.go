package inflect

import (
	"strings"

	sent "github.com/revelaction/newsmunger/sentence"
)

var pronouns = map[string]Agreement{
	"i":    {First, Singular},
	"we":   {First, Plural},
	"you":  {Second, Plural},
	"they": {Third, Plural},
	"he":   {Third, Singular},
	"she":  {Third, Singular},
	"it":   {Third, Singular},
}

// AgreementOf infers the person and number of the subject headed by the
// token head: personal pronouns, coordinated phrases and plural noun tags.
func AgreementOf(s sent.Sentence, head int) Agreement {
	t := s.Tokens[head]

	if a, ok := pronouns[strings.ToLower(t.Text)]; ok {
		return a
	}

	// the storm and the mayor
	if s.HasChildDep(head, "conj") {
		return Agreement{Third, Plural}
	}

	switch t.Tag {
	case "NNS", "NNPS":
		return Agreement{Third, Plural}
	}

	return ThirdSingular
}
