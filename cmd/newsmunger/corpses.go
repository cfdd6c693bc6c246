package main

import (
	"context"

	"github.com/revelaction/newsmunger/render"
	"github.com/revelaction/newsmunger/storage/sqlite/zombiezen"
)

func corpsesCommand(ctx context.Context, opts CorpsesOptions, ui UI) error {
	pool := &Pool{}
	defer pool.Close()

	db, err := pool.Open(opts.From)
	if err != nil {
		return err
	}

	if err := zombiezen.CreateSchemas(db, zombiezen.CorpsesSchema); err != nil {
		return err
	}

	corpses, err := zombiezen.NewCorpseStore(db).Corpses(ctx)
	if err != nil {
		return err
	}

	if opts.JSON {
		return render.NewJSONRenderer(ui.Out).Corpses(corpses)
	}

	r := render.NewRenderer(ui.Out)
	r.HasPrefix = true
	for _, c := range corpses {
		r.Corpse(c)
	}

	return nil
}
