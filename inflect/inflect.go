// Package inflect produces the surface forms of English verbs for a Penn
// Treebank tag or a tense and subject agreement.
package inflect

import (
	"regexp"
	"strings"
)

type Tense int

const (
	Present Tense = iota
	Past
)

type Number int

const (
	Singular Number = iota
	Plural
)

type Person int

const (
	First Person = iota + 1
	Second
	Third
)

// Agreement is the person and number a finite verb agrees with.
type Agreement struct {
	Person Person
	Number Number
}

var ThirdSingular = Agreement{Person: Third, Number: Singular}

// TenseOf returns the tense of a finite verb tag. Non finite tags (VB, VBG,
// VBN) return false.
func TenseOf(tag string) (Tense, bool) {
	switch tag {
	case "VBZ", "VBP":
		return Present, true
	case "VBD":
		return Past, true
	}

	return Present, false
}

// IsFinite reports whether the tag is a finite verb tag.
func IsFinite(tag string) bool {
	_, ok := TenseOf(tag)
	return ok
}

// Conjugate returns the finite form of lemma for the tense and agreement.
func Conjugate(lemma string, tense Tense, a Agreement) string {
	lemma = strings.ToLower(lemma)
	if a.Person == 0 {
		a.Person = Third
	}

	if form, ok := irregularForms[formKey{lemma, tense, a.Number, a.Person}]; ok {
		return form
	}

	if tense == Past {
		return Inflect(lemma, "VBD")
	}

	if a.Person == Third && a.Number == Singular {
		return Inflect(lemma, "VBZ")
	}

	return Inflect(lemma, "VBP")
}

// Inflect returns the form of lemma for the Penn Treebank verb tag. Unknown
// tags return the lemma.
func Inflect(lemma, tag string) string {
	if lemma == "" {
		return lemma
	}

	lower := strings.ToLower(lemma)
	p, irregular := irregularVerbs[lower]

	switch tag {
	case "VBD":
		if irregular && p.Past != "" {
			return p.Past
		}
		return pastRegular(lower)
	case "VBN":
		if irregular && p.Participle != "" {
			return p.Participle
		}
		return pastRegular(lower)
	case "VBG":
		if irregular && p.Gerund != "" {
			return p.Gerund
		}
		return gerundRegular(lower)
	case "VBZ":
		if irregular && p.Third != "" {
			return p.Third
		}
		return thirdRegular(lower)
	case "VBP":
		if lower == "be" {
			return "are"
		}
		return lower
	}

	return lemma
}

var (
	consonantY = regexp.MustCompile(`[^aeiou]y$`)
	sibilant   = regexp.MustCompile(`(s|x|z|ch|sh|o)$`)

	// one syllable ending consonant-vowel-consonant: stop, plan, ban
	shortCVC = regexp.MustCompile(`^[^aeiou]*[aeiou][^aeiouwxy]$`)
)

func thirdRegular(v string) string {
	switch {
	case consonantY.MatchString(v):
		return v[:len(v)-1] + "ies"
	case sibilant.MatchString(v):
		return v + "es"
	}

	return v + "s"
}

func pastRegular(v string) string {
	switch {
	case strings.HasSuffix(v, "e"):
		return v + "d"
	case consonantY.MatchString(v):
		return v[:len(v)-1] + "ied"
	case shortCVC.MatchString(v):
		return v + v[len(v)-1:] + "ed"
	}

	return v + "ed"
}

func gerundRegular(v string) string {
	switch {
	case strings.HasSuffix(v, "ie"):
		return v[:len(v)-2] + "ying"
	case strings.HasSuffix(v, "ee"), strings.HasSuffix(v, "ye"), strings.HasSuffix(v, "oe"):
		return v + "ing"
	case strings.HasSuffix(v, "e") && len(v) > 2:
		return v[:len(v)-1] + "ing"
	case shortCVC.MatchString(v):
		return v + v[len(v)-1:] + "ing"
	}

	return v + "ing"
}
