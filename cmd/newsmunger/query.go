package main

import (
	"context"

	"github.com/revelaction/newsmunger/config"
	"github.com/revelaction/newsmunger/render"
	"github.com/revelaction/newsmunger/repl"
)

// Query command
func queryCommand(ctx context.Context, opts QueryOptions, cfg config.Config, ui UI) error {
	pool := &Pool{}
	defer pool.Close()

	repo, err := NewDocRepository(pool, opts.DocPath)
	if err != nil {
		return err
	}

	lib, err := library(repo, opts.Label, ui)
	if err != nil {
		return err
	}

	classes, err := verbClasses(cfg)
	if err != nil {
		return err
	}

	p, closeParser := newParser(cfg)
	defer closeParser()

	r := render.NewRenderer(ui.Out)
	r.HasColor = !opts.NoColor
	r.HasPrefix = !opts.NoPrefix
	r.Format = opts.Format
	for i, doc := range lib {
		r.AddDocName(i, doc.Title)
	}

	// now present the REPL
	h := repl.NewHandler(newSession(lib, p, classes, cfg), classes, r, ui.Out)
	return h.Run(ctx)
}
