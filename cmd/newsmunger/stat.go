package main

import (
	"fmt"

	"github.com/revelaction/newsmunger/index"
	"github.com/revelaction/newsmunger/stat"
)

// rootLemmaCounter is a repository that counts root lemmas without loading
// the docs.
type rootLemmaCounter interface {
	RootLemmas() (map[string]int, error)
}

func statCommand(opts StatOptions, docId *int, ui UI) error {
	pool := &Pool{}
	defer pool.Close()

	repo, err := NewDocRepository(pool, opts.DocPath)
	if err != nil {
		return err
	}

	hdl := stat.NewHandler()

	if docId != nil {
		doc, err := repo.Read(*docId)
		if err != nil {
			return err
		}

		hdl.Aggregate(doc)
		stats := hdl.Get()
		fmt.Fprintf(ui.Out, "Num sentences %d, num tokens per sentence %d, quoted %d\n", stats.NumSentences, stats.TokensPerSentenceMean, stats.NumQuoted)
		return nil
	}

	lib, err := library(repo, opts.Label, ui)
	if err != nil {
		return err
	}

	for _, doc := range lib {
		hdl.Aggregate(doc)
	}
	hdl.AggregateIndex(index.Build(lib), opts.Top)

	stats := hdl.Get()
	fmt.Fprintf(ui.Out, "Num docs %d, num sentences %d, num tokens per sentence %d, quoted %d\n", stats.NumDocs, stats.NumSentences, stats.TokensPerSentenceMean, stats.NumQuoted)
	fmt.Fprintf(ui.Out, "Kinds: speech %d, copular %d, default %d\n", stats.Kinds["speech"], stats.Kinds["copular"], stats.Kinds["default"])
	fmt.Fprintf(ui.Out, "Indexed root lemmas %d\n", stats.NumIndexed)
	if c, ok := repo.(rootLemmaCounter); ok {
		counts, err := c.RootLemmas()
		if err != nil {
			return err
		}
		fmt.Fprintf(ui.Out, "Stored root lemmas %d\n", len(counts))
	}
	for _, lc := range stats.TopLemmas {
		fmt.Fprintf(ui.Out, "%15s %5d\n", lc.Lemma, lc.Count)
	}

	return nil
}
