package main

import (
	"fmt"
	"os"

	"github.com/gosuri/uiprogress"

	"github.com/revelaction/newsmunger/storage/filesystem"
	"github.com/revelaction/newsmunger/storage/sqlite/zombiezen"
)

func exportDocCommand(opts ExportDocOptions, ui UI) error {
	if _, err := os.Stat(opts.From); err != nil {
		return fmt.Errorf("repository not found: %s", opts.From)
	}

	pool := &Pool{}
	defer pool.Close()

	db, err := pool.Open(opts.From)
	if err != nil {
		return err
	}
	src := zombiezen.NewDocStore(db)

	// Ensure target directory exists
	if err := os.MkdirAll(opts.To, 0755); err != nil {
		return fmt.Errorf("failed to create target directory: %w", err)
	}

	dst, err := filesystem.NewDocStore(opts.To)
	if err != nil {
		return err
	}

	docs, err := src.List("")
	if err != nil {
		return err
	}

	var bar *uiprogress.Bar
	if ui.Progress {
		uiprogress.Start()
		defer uiprogress.Stop()
		bar = uiprogress.AddBar(len(docs))
		bar.AppendCompleted()
		bar.PrependElapsed()
	}

	count := 0
	for _, docMeta := range docs {
		doc, err := src.Read(docMeta.Id)
		if err != nil {
			return fmt.Errorf("failed to read doc %s (id %d): %w", docMeta.Title, docMeta.Id, err)
		}

		if err := dst.Write(doc); err != nil {
			return fmt.Errorf("failed to write doc %s: %w", docMeta.Title, err)
		}
		count++
		if bar != nil {
			bar.Incr()
		}
	}

	fmt.Fprintf(ui.Out, "Successfully exported %d docs from %s to %s\n", count, opts.From, opts.To)
	return nil
}
