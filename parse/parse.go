// Package parse is the boundary to the dependency parser. The parser is an
// external service; the munging engine sends it the text of every sentence
// it synthesizes and gets back a fresh dependency tree.
package parse

import (
	"context"
	"errors"
	"fmt"

	sent "github.com/revelaction/newsmunger/sentence"
)

var ErrNoSentence = errors.New("parser returned no sentence")

// Parser splits text into sentences and parses them.
type Parser interface {
	Parse(ctx context.Context, text string) ([]sent.Sentence, error)
}

// First parses text and returns its first sentence.
func First(ctx context.Context, p Parser, text string) (sent.Sentence, error) {
	sentences, err := p.Parse(ctx, text)
	if err != nil {
		return sent.Sentence{}, fmt.Errorf("could not parse %q: %w", text, err)
	}

	if len(sentences) == 0 {
		return sent.Sentence{}, ErrNoSentence
	}

	return sentences[0], nil
}
