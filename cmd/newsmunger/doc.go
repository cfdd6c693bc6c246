package main

import (
	"fmt"
	"strings"

	"github.com/revelaction/newsmunger/render"
	sent "github.com/revelaction/newsmunger/sentence"
	"github.com/revelaction/newsmunger/storage"
)

func docCommand(opts DocOptions, docId *int, ui UI) error {
	pool := &Pool{}
	defer pool.Close()

	repo, err := NewDocRepository(pool, opts.DocPath)
	if err != nil {
		return err
	}

	if docId == nil {
		return listDocs(repo, ui)
	}

	doc, err := repo.Read(*docId)
	if err != nil {
		return err
	}

	renderDoc(doc, opts, ui)
	return nil
}

func renderDoc(doc sent.Doc, opts DocOptions, ui UI) {
	fmt.Fprintf(ui.Out, "📖 %d %s\n", doc.Id, doc.Title)

	start := opts.Start
	if start < 0 {
		start = 0
	}
	if start >= len(doc.Sentences) {
		return
	}

	sentences := doc.Sentences[start:]
	if opts.Count >= 0 && opts.Count < len(sentences) {
		sentences = sentences[:opts.Count]
	}

	r := render.NewRenderer(ui.Out)
	r.HasColor = false
	for i, sentence := range sentences {
		prefix := fmt.Sprintf("✍  %d ", start+i)
		r.Sentence(sentence, prefix)
	}
}

func listDocs(repo storage.DocReader, ui UI) error {
	docs, err := repo.List("")
	if err != nil {
		return err
	}

	for _, doc := range docs {
		labels := ""
		if len(doc.Labels) > 0 {
			labels = " 🔖 " + strings.Join(doc.Labels, ",")
		}
		fmt.Fprintf(ui.Out, "📖 %d %s%s\n", doc.Id, doc.Title, labels)
	}
	return nil
}
