package main

import (
	"fmt"

	"github.com/revelaction/newsmunger/render"
)

func sentenceCommand(opts SentenceOptions, docId int, sentId int, ui UI) error {
	pool := &Pool{}
	defer pool.Close()

	repo, err := NewDocRepository(pool, opts.DocPath)
	if err != nil {
		return err
	}

	doc, err := repo.Read(docId)
	if err != nil {
		return err
	}

	if sentId < 0 || sentId >= len(doc.Sentences) {
		return fmt.Errorf("sentence index %d out of bounds (0-%d)", sentId, len(doc.Sentences)-1)
	}

	s := doc.Sentences[sentId]
	r := render.NewRenderer(ui.Out)
	r.HasColor = false
	prefix := fmt.Sprintf("✍  %d ", sentId)
	r.Sentence(s, prefix)
	fmt.Fprintln(ui.Out)

	r.Tokens(s)
	return nil
}
