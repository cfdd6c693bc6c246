package main

import (
	"context"
	"fmt"

	"github.com/revelaction/newsmunger/config"
	"github.com/revelaction/newsmunger/corpse"
	"github.com/revelaction/newsmunger/logger"
	"github.com/revelaction/newsmunger/render"
)

func corpseCommand(ctx context.Context, opts CorpseOptions, cfg config.Config, ui UI) error {
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

	a := corpse.NewAssembler(newSession(lib, p, classes, cfg), logger.NewLogger("corpse"))

	for i := 0; i < opts.Count; i++ {
		if opts.Doc == nil {
			if _, err := a.Build(ctx); err != nil {
				return err
			}
			continue
		}

		pos, err := docPosition(lib, *opts.Doc)
		if err != nil {
			return err
		}

		if _, err := a.BuildDoc(ctx, pos); err != nil {
			return err
		}
	}

	if opts.JSON {
		if err := render.NewJSONRenderer(ui.Out).Corpses(a.Corpses()); err != nil {
			return err
		}
	} else {
		r := render.NewRenderer(ui.Out)
		r.HasColor = !opts.NoColor
		for _, c := range a.Corpses() {
			r.Corpse(c)
		}
	}

	if opts.DryRun {
		return nil
	}

	sink := cfg.Sink
	sink.Kind = opts.Sink
	w, err := NewCorpseWriter(pool, sink)
	if err != nil {
		return err
	}

	n := len(a.Corpses())
	if err := a.Save(ctx, w); err != nil {
		return fmt.Errorf("failed to save corpses: %w", err)
	}

	fmt.Fprintf(ui.Err, "Saved %d corpses (%s)\n", n, sink.Kind)
	return nil
}
