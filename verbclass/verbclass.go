// Package verbclass is a lexical-semantic resource grouping verbs by shared
// argument structure.
package verbclass

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed classes.yaml
var defaultClasses []byte

// Resource finds the classes of a verb and the members of a class.
type Resource interface {
	Classes(lemma string) []string
	Members(class string) []string
}

// Lexicon is a Resource held in memory.
type Lexicon struct {
	members map[string][]string
	classes map[string][]string
}

var _ Resource = (*Lexicon)(nil)

type lexiconFile struct {
	Classes map[string][]string `yaml:"classes"`
}

// New builds a lexicon from a class to members map.
func New(classes map[string][]string) *Lexicon {
	l := &Lexicon{
		members: map[string][]string{},
		classes: map[string][]string{},
	}

	for class, members := range classes {
		l.members[class] = append([]string(nil), members...)
		for _, m := range members {
			l.classes[m] = append(l.classes[m], class)
		}
	}

	for m := range l.classes {
		sort.Strings(l.classes[m])
	}

	return l
}

// Load reads a YAML lexicon.
func Load(r io.Reader) (*Lexicon, error) {
	var f lexiconFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("YAML decoding error: %w", err)
	}

	return New(f.Classes), nil
}

// LoadFile reads a YAML lexicon from path.
func LoadFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Default returns the embedded lexicon.
func Default() *Lexicon {
	l, err := Load(bytes.NewReader(defaultClasses))
	if err != nil {
		panic(err)
	}

	return l
}

// Classes returns the sorted class ids containing lemma.
func (l *Lexicon) Classes(lemma string) []string {
	return l.classes[lemma]
}

// Members returns the lemmas of the class.
func (l *Lexicon) Members(class string) []string {
	return l.members[class]
}

// Related returns the lemmas sharing a class with lemma, lemma excluded,
// each once, in class then member order.
func Related(r Resource, lemma string) []string {
	seen := map[string]bool{lemma: true}
	related := []string{}
	for _, class := range r.Classes(lemma) {
		for _, m := range r.Members(class) {
			if seen[m] {
				continue
			}
			seen[m] = true
			related = append(related, m)
		}
	}

	return related
}
